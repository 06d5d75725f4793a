package domain

import "go.trai.ch/zerr"

// DialectName identifies a stylesheet dialect.
type DialectName string

// Supported dialects.
const (
	DialectSCSS   DialectName = "scss"
	DialectSASS   DialectName = "sass"
	DialectLESS   DialectName = "less"
	DialectStylus DialectName = "stylus"
)

// Dialect is the closed set of supported stylesheet dialects.
// Each variant carries its own options.
type Dialect interface {
	// Name returns the dialect identifier.
	Name() DialectName
	// Extension returns the source file extension, including the dot.
	Extension() string
	// ImportExtensions returns the extensions tried, in order, for an
	// import target without one.
	ImportExtensions() []string
	// SkipsPartials reports whether partial files are left out of bulk scans.
	SkipsPartials() bool

	sealed()
}

// SCSS is the brace-delimited Sass syntax.
type SCSS struct {
	// LoadPaths are auxiliary search roots, consulted in order.
	LoadPaths []string
	// Compass drops imports of the Compass framework.
	Compass bool
}

// SASS is the indentation-significant Sass syntax.
type SASS struct {
	LoadPaths []string
	Compass   bool
}

// LESS is the Less dialect.
type LESS struct{}

// Stylus is the Stylus dialect.
type Stylus struct{}

// Name implements Dialect.
func (SCSS) Name() DialectName { return DialectSCSS }

// Extension implements Dialect.
func (SCSS) Extension() string { return ".scss" }

// ImportExtensions implements Dialect.
func (SCSS) ImportExtensions() []string { return []string{"scss", "sass"} }

// SkipsPartials implements Dialect.
func (SCSS) SkipsPartials() bool { return true }

func (SCSS) sealed() {}

// Name implements Dialect.
func (SASS) Name() DialectName { return DialectSASS }

// Extension implements Dialect.
func (SASS) Extension() string { return ".sass" }

// ImportExtensions implements Dialect.
func (SASS) ImportExtensions() []string { return []string{"sass", "scss"} }

// SkipsPartials implements Dialect.
func (SASS) SkipsPartials() bool { return true }

func (SASS) sealed() {}

// Name implements Dialect.
func (LESS) Name() DialectName { return DialectLESS }

// Extension implements Dialect.
func (LESS) Extension() string { return ".less" }

// ImportExtensions implements Dialect.
func (LESS) ImportExtensions() []string { return []string{"less"} }

// SkipsPartials implements Dialect.
func (LESS) SkipsPartials() bool { return true }

func (LESS) sealed() {}

// Name implements Dialect.
func (Stylus) Name() DialectName { return DialectStylus }

// Extension implements Dialect.
func (Stylus) Extension() string { return ".styl" }

// ImportExtensions implements Dialect.
func (Stylus) ImportExtensions() []string { return []string{"styl"} }

// SkipsPartials implements Dialect.
func (Stylus) SkipsPartials() bool { return false }

func (Stylus) sealed() {}

// NewDialect builds the variant for name with the given options.
// Options that do not apply to the variant are ignored.
func NewDialect(name DialectName, loadPaths []string, compass bool) (Dialect, error) {
	switch name {
	case DialectSCSS:
		return SCSS{LoadPaths: loadPaths, Compass: compass}, nil
	case DialectSASS:
		return SASS{LoadPaths: loadPaths, Compass: compass}, nil
	case DialectLESS:
		return LESS{}, nil
	case DialectStylus:
		return Stylus{}, nil
	default:
		return nil, zerr.With(ErrUnknownDialect, "dialect", string(name))
	}
}

// DialectFor returns the dialect handling p, selected by file extension.
func DialectFor(p SourcePath, dialects []Dialect) (Dialect, error) {
	ext := p.Ext()
	for _, d := range dialects {
		if d.Extension() == ext {
			return d, nil
		}
	}
	return nil, zerr.With(ErrUnsupportedSource, "path", p.String())
}
