package notify

import (
	"fmt"
	"strings"

	"boardscout/internal/domain"
)

// FormatBoard renders one board's newly discovered jobs as a digest block.
func FormatBoard(company string, jobs []domain.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🆕 %s — %d new job(s)\n", company, len(jobs))

	for _, j := range jobs {
		b.WriteString("\n")
		fmt.Fprintf(&b, "• %s\n", j.Title)
		if meta := joinMeta(j.Team, j.Location); meta != "" {
			fmt.Fprintf(&b, "  %s\n", meta)
		}
		fmt.Fprintf(&b, "  %s\n", j.URL)
	}
	return b.String()
}

// JoinDigests glues per-board blocks with a blank line between them.
func JoinDigests(blocks []string) string {
	return strings.Join(blocks, "\n")
}

func joinMeta(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}
