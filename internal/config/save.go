package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

func Validate(cfg Config) error {
	var errs []string

	if cfg.Polling.ScanSeconds <= 0 {
		errs = append(errs, "polling.scan_seconds must be > 0")
	} else if cfg.Polling.ScanSeconds < 60 {
		errs = append(errs, "polling.scan_seconds under 60 will hammer the boards")
	}
	if cfg.Polling.CommandSeconds <= 0 {
		errs = append(errs, "polling.command_seconds must be > 0")
	}
	if cfg.Telegram.ChunkLimit <= 0 {
		errs = append(errs, "telegram.chunk_limit must be > 0")
	}
	if cfg.Telegram.ChunkLimit > 4096 {
		errs = append(errs, fmt.Sprintf("telegram.chunk_limit %d exceeds Telegram's 4096-char message cap", cfg.Telegram.ChunkLimit))
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func SaveAtomic(path string, cfg Config) error {
	if err := Validate(cfg); err != nil {
		return err
	}

	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	bak := path + ".bak"

	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}

	_ = os.Remove(bak)
	_ = os.Rename(path, bak)

	return os.Rename(tmp, path)
}
