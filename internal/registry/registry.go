package registry

import (
	"encoding/csv"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"boardscout/internal/domain"
)

// The registry is a two-column CSV (company,board_url) owned by the
// operator via chat commands. Kept as a flat file on purpose: it is tiny,
// human-editable, and survives without any runtime.

var ErrNotFound = errors.New("no tracked board matched")

func Load(path string) ([]domain.Board, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("registry parse: %w", err)
	}

	var boards []domain.Board
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(strings.TrimSpace(rec[0]), "company") {
			continue
		}
		if len(rec) < 2 {
			continue
		}
		company := strings.TrimSpace(rec[0])
		boardURL := strings.TrimSpace(rec[1])
		if company == "" || boardURL == "" {
			continue
		}
		boards = append(boards, domain.Board{Company: company, URL: boardURL})
	}
	return boards, nil
}

// Save writes the registry atomically, sorted by company name so the file
// stays diff-friendly.
func Save(path string, boards []domain.Board) error {
	sorted := make([]domain.Board, len(boards))
	copy(sorted, boards)
	sort.Slice(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Company) < strings.ToLower(sorted[j].Company)
	})

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	rows := [][]string{{"company", "board_url"}}
	for _, b := range sorted {
		rows = append(rows, []string{b.Company, b.URL})
	}
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Add registers a board, deduplicating on slug. An empty name defaults to
// the slug. Returns the stored board.
func Add(path string, name, boardURL string) (domain.Board, error) {
	slug := ParseSlug(boardURL)
	if slug == "" {
		return domain.Board{}, fmt.Errorf("could not derive a board slug from %q", boardURL)
	}
	if strings.TrimSpace(name) == "" {
		name = slug
	}

	boards, err := Load(path)
	if err != nil {
		return domain.Board{}, err
	}
	for _, b := range boards {
		if ParseSlug(b.URL) == slug {
			return b, fmt.Errorf("board already tracked: %s — %s", b.Company, b.URL)
		}
	}

	added := domain.Board{Company: strings.TrimSpace(name), URL: strings.TrimSpace(boardURL)}
	boards = append(boards, added)
	return added, Save(path, boards)
}

// Remove drops boards whose slug or company name matches needle
// (case-insensitive) and returns the removed entries.
func Remove(path string, needle string) ([]domain.Board, error) {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return nil, ErrNotFound
	}

	boards, err := Load(path)
	if err != nil {
		return nil, err
	}

	var kept, removed []domain.Board
	for _, b := range boards {
		if strings.ToLower(b.Company) == needle || ParseSlug(b.URL) == needle {
			removed = append(removed, b)
		} else {
			kept = append(kept, b)
		}
	}
	if len(removed) == 0 {
		return nil, ErrNotFound
	}
	return removed, Save(path, kept)
}

// ParseSlug extracts the board identifier from a board URL: the last
// non-empty path segment, lowercased ("https://jobs.ashbyhq.com/Rogo" ->
// "rogo"). Empty when the URL has no path to key on.
func ParseSlug(boardURL string) string {
	u, err := url.Parse(strings.TrimSpace(boardURL))
	if err != nil || u.Host == "" {
		return ""
	}
	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	last := segs[len(segs)-1]
	return strings.ToLower(strings.TrimSpace(last))
}
