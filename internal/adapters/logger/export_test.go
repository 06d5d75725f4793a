package logger

// FormatError exposes error chain formatting to the external tests.
var FormatError = formatError
