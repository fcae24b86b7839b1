// Package sqlexport writes link snapshots to standalone SQLite database
// files for use by external tooling.
package sqlexport

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

const schema = `
CREATE TABLE IF NOT EXISTS links (
	id             TEXT PRIMARY KEY,
	owner_uuid     TEXT NOT NULL,
	long_url       TEXT NOT NULL,
	short_code     TEXT NOT NULL UNIQUE,
	created_at     TEXT NOT NULL,
	expires_at     TEXT NOT NULL,
	click_limit    INTEGER,
	click_count    INTEGER NOT NULL,
	last_access_at TEXT,
	status         TEXT NOT NULL
);`

// Write creates (or replaces the rows of) a SQLite database at path holding
// the given links. The whole export runs in one transaction.
func Write(path string, links []*types.Link) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("sqlexport: open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("sqlexport: create schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("sqlexport: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM links`); err != nil {
		return fmt.Errorf("sqlexport: clear: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO links
		(id, owner_uuid, long_url, short_code, created_at, expires_at,
		 click_limit, click_count, last_access_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("sqlexport: prepare: %w", err)
	}
	defer stmt.Close()

	for _, link := range links {
		var clickLimit any
		if link.ClickLimit != nil {
			clickLimit = *link.ClickLimit
		}
		var lastAccess any
		if link.LastAccessAt != nil {
			lastAccess = link.LastAccessAt.String()
		}
		_, err := stmt.Exec(
			link.ID, link.OwnerUUID, link.LongURL, link.ShortCode,
			link.CreatedAt.String(), link.ExpiresAt.String(),
			clickLimit, link.ClickCount, lastAccess, link.Status,
		)
		if err != nil {
			return fmt.Errorf("sqlexport: insert %s: %w", link.ShortCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sqlexport: commit: %w", err)
	}
	return nil
}
