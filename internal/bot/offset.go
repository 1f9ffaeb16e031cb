package bot

import (
	"encoding/json"
	"errors"
	"os"
)

// The update offset survives restarts in a tiny JSON file so commands are
// neither replayed nor dropped across daemon runs.

type offsetFile struct {
	Offset int `json:"offset"`
}

func loadOffset(path string) int {
	b, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	var f offsetFile
	if err := json.Unmarshal(b, &f); err != nil {
		return 0
	}
	return f.Offset
}

func saveOffset(path string, offset int) error {
	b, err := json.MarshalIndent(offsetFile{Offset: offset}, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Join(err, os.Remove(tmp))
	}
	return nil
}
