package seen

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"boardscout/internal/domain"
)

// State maps company name to the sorted identifiers already reported.
// Identifiers are never pruned; resurfacing an old posting as "new" would
// be worse than a file that slowly grows.
type State map[string][]string

// Load reads the state file. A missing file is an empty state, and entries
// that don't have the expected shape are dropped rather than failing the
// run.
func Load(path string) (State, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return State{}, nil
	}
	if err != nil {
		return nil, err
	}

	var decoded any
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil, fmt.Errorf("seen state decode: %w", err)
	}
	raw, ok := decoded.(map[string]any)
	if !ok {
		// whatever this file was, it isn't our state; start over rather
		// than refuse to run
		return State{}, nil
	}

	st := State{}
	for company, v := range raw {
		list, ok := v.([]any)
		if !ok {
			continue
		}
		ids := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				ids = append(ids, s)
			}
		}
		st[company] = ids
	}
	return st, nil
}

// Save writes the state atomically (tmp + rename) with sorted keys and a
// trailing newline so successive files diff cleanly.
func Save(path string, st State) error {
	b, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Diff splits jobs into the ones not yet reported and returns the updated
// identifier set. Every identifier is added to the working set as it is
// examined, so an id duplicated within the batch is reported once. The
// returned set is sorted.
func Diff(jobs []domain.Job, previous []string) (fresh []domain.Job, updated []string) {
	working := make(map[string]bool, len(previous)+len(jobs))
	for _, id := range previous {
		working[id] = true
	}

	for _, job := range jobs {
		id := job.JobID
		if id == "" {
			id = job.URL
		}
		if id == "" {
			continue
		}
		if !working[id] {
			fresh = append(fresh, job)
		}
		working[id] = true
	}

	updated = make([]string, 0, len(working))
	for id := range working {
		updated = append(updated, id)
	}
	sort.Strings(updated)
	return fresh, updated
}
