// Package jsonstore provides JSON document persistence with atomic
// replacement: readers of a target file observe either the old complete
// content or the new complete content, never a partial write.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ReadOrDefault reads the JSON document at path into a value of type T.
//
// A missing file is created holding def, and def is returned. An unreadable
// file (I/O failure) is logged at warn level and def is returned; callers
// always receive a usable value. A file whose content is empty or the JSON
// literal null also yields def. Malformed JSON is the one fatal condition:
// it returns an error instead of silently replacing user data.
func ReadOrDefault[T any](log zerolog.Logger, path string, def T) (T, error) {
	if err := ensureParent(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to prepare data directory")
		return def, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("failed to read data file")
			return def, nil
		}
		// First run: seed the file with the default value.
		if werr := WriteAtomic(path, def); werr != nil {
			log.Warn().Err(werr).Str("path", path).Msg("failed to create data file")
		}
		return def, nil
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def, nil
	}

	var out T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return def, fmt.Errorf("parsing %s: %w", path, err)
	}
	return out, nil
}

// WriteAtomic serializes v and replaces the file at path in one step. The
// document is written to a hidden sibling temp file (".name.tmp"), synced,
// and renamed onto the target; the temp file never survives a successful
// call. The parent directory is created if missing; a target with an
// impossible parent is a hard error.
func WriteAtomic(path string, v any) error {
	if err := ensureParent(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}

	tmp := TempPath(path)
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// TempPath returns the hidden sibling temp file name used by WriteAtomic for
// the given target. Exposed so tests can assert the temp file is gone.
func TempPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+".tmp")
}

func ensureParent(path string) error {
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("creating parent directory %s: %w", parent, err)
	}
	return nil
}
