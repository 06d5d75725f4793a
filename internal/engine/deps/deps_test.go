package deps_test

import (
	"os"
	"path"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports/mocks"
	"go.trai.ch/precomp/internal/engine/deps"
	"go.trai.ch/precomp/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

// memProvider serves sources from a map.
func memProvider(ctrl *gomock.Controller, files map[string]string) *mocks.MockSourceProvider {
	dirs := map[domain.SourcePath]bool{}
	for p := range files {
		for d := path.Dir(p); d != "."; d = path.Dir(d) {
			dirs[domain.SourcePath(d)] = true
		}
	}

	m := mocks.NewMockSourceProvider(ctrl)
	m.EXPECT().Read(gomock.Any()).DoAndReturn(func(p domain.SourcePath) (string, error) {
		src, ok := files[p.String()]
		if !ok {
			return "", os.ErrNotExist
		}
		return src, nil
	}).AnyTimes()
	m.EXPECT().Exists(gomock.Any()).DoAndReturn(func(p domain.SourcePath) bool {
		_, ok := files[p.String()]
		return ok || dirs[p]
	}).AnyTimes()
	m.EXPECT().IsDir(gomock.Any()).DoAndReturn(func(p domain.SourcePath) bool {
		return dirs[p]
	}).AnyTimes()
	m.EXPECT().List(gomock.Any()).DoAndReturn(func(dir domain.SourcePath) ([]string, error) {
		var names []string
		for p := range files {
			if sp := domain.SourcePath(p); sp.Dir() == dir.String() {
				names = append(names, sp.Base())
			}
		}
		return names, nil
	}).AnyTimes()
	m.EXPECT().ExistsUnder(gomock.Any(), gomock.Any()).Return(false).AnyTimes()
	m.EXPECT().FullPath(gomock.Any()).DoAndReturn(func(p domain.SourcePath) (string, error) {
		return "/root/" + p.String(), nil
	}).AnyTimes()
	return m
}

func newBuilder(ctrl *gomock.Controller, files map[string]string) *deps.Builder {
	p := memProvider(ctrl, files)
	return deps.New(p, resolver.New(p))
}

func TestBuilder_FindDependencies_LESS(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := newBuilder(ctrl, map[string]string{
		"A.less":   "@import 'B/C.less';",
		"B/C.less": "@import '../E';",
		"E.less":   "p {color: red;}",
	})

	got, err := b.FindDependencies(domain.LESS{}, "A.less")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"B/C.less", "E.less"}, got)

	got, err = b.FindDependencies(domain.LESS{}, "B/C.less")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"E.less"}, got)

	got, err = b.FindDependencies(domain.LESS{}, "E.less")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBuilder_FindDependencies_Stylus(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := newBuilder(ctrl, map[string]string{
		"styles/A.styl":       "@import \"B/C.styl\"\n@import \"D\"\n@require \"E/*\"\n",
		"styles/B/C.styl":     "@import \"../D.styl\"\n",
		"styles/D.styl":       "a\n  color red\n",
		"styles/E/F.styl":     "@import \"../E\"\n",
		"styles/E/index.styl": "",
		"styles/broken1.styl": "@import \"missing.styl\"\n",
		"styles/broken2.styl": "@import \"nowhere/*\"\n",
		"styles/broken3.styl": "@import \"D.styl/*\"\n",
	})

	got, err := b.FindDependencies(domain.Stylus{}, "styles/A.styl")
	require.NoError(t, err)
	want := []domain.SourcePath{
		"styles/B/C.styl",
		"styles/D.styl",
		"styles/E/F.styl",
		"styles/E/index.styl",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("closure mismatch (-want +got):\n%s", diff)
	}

	for _, broken := range []domain.SourcePath{"styles/broken1.styl", "styles/broken2.styl", "styles/broken3.styl"} {
		_, err := b.FindDependencies(domain.Stylus{}, broken)
		require.Error(t, err, broken)
	}
}

func TestBuilder_FindDependencies_SCSS(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := newBuilder(ctrl, map[string]string{
		"main.scss":               "@import \"base\", \"components/button\";\n// @import \"ignored\";\n",
		"_base.scss":              "@import \"vars\";",
		"_vars.scss":              "$c: red;",
		"components/_button.scss": "@import \"../vars\";",
	})

	got, err := b.FindDependencies(domain.SCSS{}, "main.scss")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"_base.scss", "_vars.scss", "components/_button.scss"}, got)

	direct, err := b.Direct(domain.SCSS{}, "main.scss")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"_base.scss", "components/_button.scss"}, direct)
}

func TestBuilder_FindDependencies_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := newBuilder(ctrl, map[string]string{
		"a.scss":  "@import \"b\";",
		"_b.scss": "@import \"c\";",
		"c.scss":  "",
	})

	first, err := b.FindDependencies(domain.SCSS{}, "a.scss")
	require.NoError(t, err)
	second, err := b.FindDependencies(domain.SCSS{}, "a.scss")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []domain.SourcePath{"_b.scss", "c.scss"}, first)
}

func TestBuilder_FindDependencies_Cycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := newBuilder(ctrl, map[string]string{
		"a.scss": "@import \"b\";",
		"b.scss": "@import \"c\";",
		"c.scss": "@import \"a\";",
	})

	got, err := b.FindDependencies(domain.SCSS{}, "a.scss")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"a.scss", "b.scss", "c.scss"}, got)

	got, err = b.FindDependencies(domain.SCSS{}, "b.scss")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"a.scss", "b.scss", "c.scss"}, got)
}

func TestBuilder_FindDependencies_Unresolvable(t *testing.T) {
	ctrl := gomock.NewController(t)
	b := newBuilder(ctrl, map[string]string{
		"a.scss":  "@import \"b\";",
		"_b.scss": "@import \"missing\";",
	})

	_, err := b.FindDependencies(domain.SCSS{}, "a.scss")
	require.ErrorContains(t, err, domain.ErrImportNotFound.Error())
}
