package imports_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/engine/imports"
)

func TestStripComments_Fixture(t *testing.T) {
	src, err := os.ReadFile(filepath.Join("testdata", "strip_comments.input"))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "strip_comments", []byte(imports.StripComments(string(src))))
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no comments",
			in:   "a { color: red; }",
			want: "a { color: red; }",
		},
		{
			name: "trailing line comment",
			in:   "@import \"a\"; // @import \"b\";",
			want: "@import \"a\";",
		},
		{
			name: "block comment hides import",
			in:   "/* @import \"hidden\"; */\n@import \"shown\";",
			want: "\n@import \"shown\";",
		},
		{
			name: "single quoted literal kept",
			in:   "content: '/* x */';",
			want: "content: '/* x */';",
		},
		{
			name: "url argument kept",
			in:   "background: url(http://example.com/a.png);",
			want: "background: url(http://example.com/a.png);",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imports.StripComments(tt.in))
		})
	}
}
