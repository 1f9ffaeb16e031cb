package registry

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"boardscout/internal/domain"
)

func TestParseSlug(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://jobs.ashbyhq.com/rogo", "rogo"},
		{"https://jobs.ashbyhq.com/Rogo/", "rogo"},
		{"https://example.com/careers/acme", "acme"},
		{"https://example.com", ""},
		{"not a url", ""},
	}
	for _, tt := range tests {
		if got := ParseSlug(tt.url); got != tt.want {
			t.Errorf("ParseSlug(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	boards, err := Load(filepath.Join(t.TempDir(), "companies.csv"))
	require.NoError(t, err)
	require.Empty(t, boards)
}

func TestSaveLoadRoundTripSorted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.csv")
	in := []domain.Board{
		{Company: "zeta", URL: "https://jobs.ashbyhq.com/zeta"},
		{Company: "Acme", URL: "https://jobs.ashbyhq.com/acme"},
	}

	require.NoError(t, Save(path, in))
	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []domain.Board{
		{Company: "Acme", URL: "https://jobs.ashbyhq.com/acme"},
		{Company: "zeta", URL: "https://jobs.ashbyhq.com/zeta"},
	}, got)
}

func TestAdd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.csv")

	added, err := Add(path, "", "https://jobs.ashbyhq.com/rogo")
	require.NoError(t, err)
	require.Equal(t, domain.Board{Company: "rogo", URL: "https://jobs.ashbyhq.com/rogo"}, added)

	// duplicate slug rejected even with a different name
	_, err = Add(path, "Rogo Inc", "https://jobs.ashbyhq.com/Rogo")
	require.Error(t, err)

	boards, err := Load(path)
	require.NoError(t, err)
	require.Len(t, boards, 1)
}

func TestRemoveBySlugOrName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.csv")
	require.NoError(t, Save(path, []domain.Board{
		{Company: "Acme Corp", URL: "https://jobs.ashbyhq.com/acme"},
		{Company: "Beta", URL: "https://jobs.ashbyhq.com/beta"},
	}))

	removed, err := Remove(path, "ACME")
	require.NoError(t, err)
	require.Len(t, removed, 1)
	require.Equal(t, "Acme Corp", removed[0].Company)

	_, err = Remove(path, "nope")
	require.True(t, errors.Is(err, ErrNotFound))

	boards, err := Load(path)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	require.Equal(t, "Beta", boards[0].Company)
}

func TestLoadSkipsHeaderAndJunkRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companies.csv")
	raw := "company,board_url\nAcme,https://jobs.ashbyhq.com/acme\n,,\nonlyone\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	boards, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, []domain.Board{{Company: "Acme", URL: "https://jobs.ashbyhq.com/acme"}}, boards)
}
