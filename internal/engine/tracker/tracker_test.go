package tracker_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/adapters/store"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports/mocks"
	"go.trai.ch/precomp/internal/engine/tracker"
	"go.uber.org/mock/gomock"
)

func existing(ctrl *gomock.Controller, paths ...domain.SourcePath) *mocks.MockSourceProvider {
	set := make(map[domain.SourcePath]bool, len(paths))
	for _, p := range paths {
		set[p] = true
	}
	m := mocks.NewMockSourceProvider(ctrl)
	m.EXPECT().Exists(gomock.Any()).DoAndReturn(func(p domain.SourcePath) bool {
		return set[p]
	}).AnyTimes()
	return m
}

func TestTracker_UpdateDependencies_ReplaceSemantics(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	tr := tracker.New(store.NewMemory(), existing(ctrl, "A", "B", "C", "D"))

	require.NoError(t, tr.UpdateDependencies(ctx, "A", []domain.SourcePath{"B", "C"}))
	got, err := tr.GetDependencies(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"B", "C"}, got)

	require.NoError(t, tr.UpdateDependencies(ctx, "A", []domain.SourcePath{"D", "C", "B"}))
	got, err = tr.GetDependencies(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"B", "C", "D"}, got)

	require.NoError(t, tr.UpdateDependencies(ctx, "A", nil))
	got, err = tr.GetDependencies(ctx, "A")
	require.NoError(t, err)
	assert.Empty(t, got)

	dependents, err := tr.GetDependents(ctx, "B")
	require.NoError(t, err)
	assert.Empty(t, dependents)
}

func TestTracker_GetDependencies_PrunesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := store.NewMemory()
	tr := tracker.New(s, existing(ctrl, "spam", "ham"))

	require.NoError(t, tr.UpdateDependencies(ctx, "spam", []domain.SourcePath{"eggs", "ham"}))

	got, err := tr.GetDependencies(ctx, "spam")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"ham"}, got)

	raw, err := s.DependenciesOf(ctx, "spam")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"ham"}, raw)
}

func TestTracker_GetDependents_PrunesMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	s := store.NewMemory()
	tr := tracker.New(s, existing(ctrl, "b.scss", "c.scss", "_base.scss"))

	require.NoError(t, tr.UpdateDependencies(ctx, "a.scss", []domain.SourcePath{"_base.scss"}))
	require.NoError(t, tr.UpdateDependencies(ctx, "c.scss", []domain.SourcePath{"_base.scss"}))
	require.NoError(t, tr.UpdateDependencies(ctx, "b.scss", []domain.SourcePath{"_base.scss"}))

	got, err := tr.GetDependents(ctx, "_base.scss")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"b.scss", "c.scss"}, got)

	raw, err := s.DependentsOf(ctx, "_base.scss")
	require.NoError(t, err)
	assert.Equal(t, []domain.SourcePath{"b.scss", "c.scss"}, raw)
}

func TestTracker_UpdateDependencies_PathTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	tr := tracker.New(store.NewMemory(), existing(ctrl))

	long := domain.SourcePath(strings.Repeat("a", domain.MaxStoredPathLength+1))
	err := tr.UpdateDependencies(context.Background(), "a.scss", []domain.SourcePath{long})
	require.ErrorContains(t, err, domain.ErrPathTooLong.Error())
}

func TestTracker_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	errRead := errors.New("disk gone")
	errWrite := errors.New("locked")

	s := mocks.NewMockDependencyStore(ctrl)
	s.EXPECT().DependenciesOf(ctx, domain.SourcePath("a.scss")).Return(nil, errRead)
	s.EXPECT().Replace(ctx, domain.SourcePath("a.scss"), []domain.SourcePath{"b.scss"}).Return(errWrite)

	tr := tracker.New(s, existing(ctrl))

	_, err := tr.GetDependencies(ctx, "a.scss")
	require.ErrorIs(t, err, errRead)

	err = tr.UpdateDependencies(ctx, "a.scss", []domain.SourcePath{"b.scss", "b.scss"})
	require.ErrorIs(t, err, errWrite)
}
