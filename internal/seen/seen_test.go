package seen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"boardscout/internal/domain"
)

func TestDiff(t *testing.T) {
	in := []domain.Job{
		{JobID: "2", Title: "Old"},
		{JobID: "3", Title: "New"},
		{JobID: "3", Title: "New again"},
	}

	fresh, updated := Diff(in, []string{"1", "2"})

	require.Len(t, fresh, 1)
	require.Equal(t, "3", fresh[0].JobID)
	require.Equal(t, []string{"1", "2", "3"}, updated)
}

func TestDiffEmptyPrevious(t *testing.T) {
	fresh, updated := Diff([]domain.Job{{JobID: "a"}, {JobID: "b"}}, nil)
	require.Len(t, fresh, 2)
	require.Equal(t, []string{"a", "b"}, updated)
}

func TestDiffFallsBackToURL(t *testing.T) {
	fresh, updated := Diff([]domain.Job{{URL: "https://x.com/jobs/1"}}, nil)
	require.Len(t, fresh, 1)
	require.Equal(t, []string{"https://x.com/jobs/1"}, updated)
}

func TestDiffSkipsJobsWithoutIdentity(t *testing.T) {
	fresh, updated := Diff([]domain.Job{{Title: "No identity"}}, []string{"1"})
	require.Empty(t, fresh)
	require.Equal(t, []string{"1"}, updated)
}

func TestLoadMissingFileIsEmptyState(t *testing.T) {
	st, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	require.Empty(t, st)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	want := State{
		"Acme": {"1", "2"},
		"Beta": {"x"},
	}

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)

	// trailing newline keeps file diffs clean
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, len(b) > 0 && b[len(b)-1] == '\n')
}

func TestLoadDropsMalformedEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seen.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Acme":["1",2],"Bad":"oops"}`), 0o644))

	st, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, State{"Acme": {"1"}}, st)
}
