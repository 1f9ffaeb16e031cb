package bot

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"boardscout/internal/domain"
	"boardscout/internal/registry"
)

func newProcessor(t *testing.T, runNow func()) *Processor {
	t.Helper()
	dir := t.TempDir()
	return New(nil, nil, 42,
		filepath.Join(dir, "companies.csv"),
		filepath.Join(dir, "telegram_offset.json"),
		runNow)
}

func TestHandleHelpAndUnknown(t *testing.T) {
	p := newProcessor(t, nil)

	require.Contains(t, p.Handle("/help"), "/add <board_url>")
	require.Contains(t, p.Handle("/frobnicate"), "Unknown command")
	require.Contains(t, p.Handle("   "), "Empty command")
}

func TestHandleAddListRemove(t *testing.T) {
	p := newProcessor(t, nil)

	reply := p.Handle("/add https://jobs.ashbyhq.com/rogo")
	require.Contains(t, reply, "✅ Added board")
	require.Contains(t, reply, "Slug: rogo")

	reply = p.Handle("/add Rogo Capital https://jobs.ashbyhq.com/Rogo")
	require.Contains(t, reply, "already tracked")

	reply = p.Handle("/list")
	require.Contains(t, reply, "Tracked boards (1)")
	require.Contains(t, reply, "rogo")

	reply = p.Handle("/remove rogo")
	require.Contains(t, reply, "✅ Removed board: rogo")

	require.Contains(t, p.Handle("/list"), "Tracked boards (0)")
}

func TestHandleAddWithCustomName(t *testing.T) {
	p := newProcessor(t, nil)

	reply := p.Handle("/add Rogo Capital https://jobs.ashbyhq.com/rogo")
	require.Contains(t, reply, "Name: Rogo Capital")

	boards, err := registry.Load(p.registryPath)
	require.NoError(t, err)
	require.Equal(t, []domain.Board{{Company: "Rogo Capital", URL: "https://jobs.ashbyhq.com/rogo"}}, boards)
}

func TestHandleAddRejectsBadURL(t *testing.T) {
	p := newProcessor(t, nil)

	for _, cmd := range []string{"/add", "/add not-a-url", "/add https://example.com"} {
		if reply := p.Handle(cmd); !strings.Contains(reply, "❌") {
			t.Errorf("Handle(%q) = %q, want rejection", cmd, reply)
		}
	}
}

func TestHandleRemoveNotFound(t *testing.T) {
	p := newProcessor(t, nil)
	require.Contains(t, p.Handle("/remove ghost"), "No tracked board matched")
	require.Contains(t, p.Handle("/remove"), "Usage")
}

func TestHandleRunAll(t *testing.T) {
	ran := false
	p := newProcessor(t, func() { ran = true })

	require.Contains(t, p.Handle("/runall"), "Run requested")
	require.True(t, ran)

	p = newProcessor(t, nil)
	require.Contains(t, p.Handle("/runall"), "not configured")
}

func TestOffsetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "telegram_offset.json")

	require.Equal(t, 0, loadOffset(path))
	require.NoError(t, saveOffset(path, 1234))
	require.Equal(t, 1234, loadOffset(path))
}
