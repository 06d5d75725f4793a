package fingerprint_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/precomp/internal/adapters/fingerprint"
	"go.trai.ch/precomp/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "fingerprints.json")

	s, err := fingerprint.NewStore(path)
	require.NoError(t, err)

	fp := domain.Fingerprint{
		Source:    "styles/main.scss",
		Output:    "COMPILED/styles/main.css",
		InputHash: "abc",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, s.Put(fp))

	got, err := s.Get("styles/main.scss")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, fp, *got)
	assert.FileExists(t, path)
}

func TestStore_GetMissing(t *testing.T) {
	s, err := fingerprint.NewStore(filepath.Join(t.TempDir(), "fingerprints.json"))
	require.NoError(t, err)

	got, err := s.Get("nope.scss")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.json")

	s1, err := fingerprint.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s1.Put(domain.Fingerprint{Source: "a.less", InputHash: "1"}))
	require.NoError(t, s1.Put(domain.Fingerprint{Source: "a.less", InputHash: "2"}))

	s2, err := fingerprint.NewStore(path)
	require.NoError(t, err)

	got, err := s2.Get("a.less")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2", got.InputHash)
}

func TestStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := fingerprint.NewStore(path)
	require.NoError(t, err)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingerprints.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := fingerprint.NewStore(path)
	require.Error(t, err)
}
