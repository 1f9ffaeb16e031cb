package notify

import (
	"strings"
	"unicode/utf8"
)

// Chunk splits text into transport-safe fragments of at most limit bytes,
// preferring line boundaries. A single line longer than the limit is
// hard-split. Concatenating the fragments reproduces text exactly; empty
// input yields one empty fragment so callers always have something to
// send.
func Chunk(text string, limit int) []string {
	if text == "" {
		return []string{""}
	}
	if limit <= 0 || len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	current := ""

	for _, line := range strings.SplitAfter(text, "\n") {
		if len(line) > limit {
			if current != "" {
				chunks = append(chunks, current)
				current = ""
			}
			for i := 0; i < len(line); {
				end := i + limit
				if end >= len(line) {
					chunks = append(chunks, line[i:])
					break
				}
				// back off to a rune boundary so fragments stay valid
				// UTF-8; a limit smaller than one rune cuts anyway
				cut := end
				for cut > i && !utf8.RuneStart(line[cut]) {
					cut--
				}
				if cut == i {
					cut = end
				}
				chunks = append(chunks, line[i:cut])
				i = cut
			}
			continue
		}

		if len(current)+len(line) > limit {
			chunks = append(chunks, current)
			current = line
		} else {
			current += line
		}
	}

	if current != "" {
		chunks = append(chunks, current)
	}
	return chunks
}
