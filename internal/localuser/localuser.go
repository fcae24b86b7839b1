// Package localuser persists the "current user" UUID for the local machine
// in a plain-text file inside the data directory.
package localuser

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// EnsureCurrentUUID returns a stable current-user UUID. An existing
// non-blank file wins; otherwise a fresh UUID is generated and written. When
// the file cannot be persisted, an ephemeral UUID is returned for this
// process only and a warning is logged — identity failures must never block
// a session.
func EnsureCurrentUUID(log zerolog.Logger, path string) string {
	if data, err := os.ReadFile(path); err == nil {
		if s := firstLine(data); s != "" {
			return s
		}
	}

	generated := uuid.NewString()
	if err := write(path, generated); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("cannot persist user UUID, using ephemeral identity")
	}
	return generated
}

// SetCurrentUUID persists the provided UUID as the current user identifier,
// replacing any existing value. Blank input is rejected; the format is not
// validated here.
func SetCurrentUUID(log zerolog.Logger, path, id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	if err := write(path, id); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to write user UUID")
		return false
	}
	return true
}

func write(path, id string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(id+"\n"), 0o644)
}

func firstLine(data []byte) string {
	s := string(data)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
