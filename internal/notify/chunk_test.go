package notify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"boardscout/internal/domain"
)

func TestChunkEmpty(t *testing.T) {
	got := Chunk("", 10)
	if len(got) != 1 || got[0] != "" {
		t.Fatalf("got %#v, want one empty fragment", got)
	}
}

func TestChunkFitsInOne(t *testing.T) {
	got := Chunk("hello\nworld", 100)
	if len(got) != 1 || got[0] != "hello\nworld" {
		t.Fatalf("got %#v", got)
	}
}

func TestChunkPrefersLineBoundaries(t *testing.T) {
	text := "aaa\nbbb\nccc\n"
	got := Chunk(text, 8)

	if len(got) != 2 {
		t.Fatalf("got %d fragments: %#v", len(got), got)
	}
	if got[0] != "aaa\nbbb\n" || got[1] != "ccc\n" {
		t.Fatalf("got %#v", got)
	}
}

func TestChunkHardSplitsOversizedLine(t *testing.T) {
	text := "short\n" + strings.Repeat("x", 25) + "\nend"
	got := Chunk(text, 10)

	for i, frag := range got {
		if len(frag) > 10 {
			t.Fatalf("fragment %d exceeds limit: %q", i, frag)
		}
	}
	if strings.Join(got, "") != text {
		t.Fatalf("round trip broken: %#v", got)
	}
}

func TestChunkHardSplitKeepsRunesIntact(t *testing.T) {
	// 🆕 is 4 bytes and · is 2; a 10-byte limit lands mid-rune unless the
	// split backs off to a boundary
	text := strings.Repeat("🆕·", 20)
	got := Chunk(text, 10)

	if strings.Join(got, "") != text {
		t.Fatalf("round trip broken: %#v", got)
	}
	for i, frag := range got {
		if len(frag) > 10 {
			t.Errorf("fragment %d exceeds limit: %q", i, frag)
		}
		if !utf8.ValidString(frag) {
			t.Errorf("fragment %d is not valid UTF-8: %q", i, frag)
		}
	}
}

func TestChunkRoundTrip(t *testing.T) {
	texts := []string{
		"plain",
		"a\nb\nc",
		"trailing newline\n",
		strings.Repeat("line of medium length\n", 40),
		strings.Repeat("z", 100),
		"\n\n\n",
	}
	for _, text := range texts {
		for _, limit := range []int{1, 2, 7, 64, 4096} {
			got := Chunk(text, limit)
			if strings.Join(got, "") != text {
				t.Fatalf("round trip broken for limit=%d text=%q", limit, text)
			}
			for _, frag := range got {
				if len(frag) > limit {
					t.Fatalf("fragment %q exceeds limit %d", frag, limit)
				}
			}
		}
	}
}

func TestFormatBoard(t *testing.T) {
	text := FormatBoard("Acme", []domain.Job{
		{Title: "Engineer", Team: "Platform", Location: "Remote", URL: "https://x.com/jobs/1"},
		{Title: "Designer", URL: "https://x.com/jobs/2"},
	})

	for _, want := range []string{
		"Acme — 2 new job(s)",
		"• Engineer",
		"Platform · Remote",
		"https://x.com/jobs/1",
		"• Designer",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("digest missing %q:\n%s", want, text)
		}
	}
}
