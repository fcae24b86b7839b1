package sqlexport

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

func TestWriteCreatesQueryableDatabase(t *testing.T) {
	limit := 5
	at := types.NewLocalTime(time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local))
	links := []*types.Link{
		{
			ID:           "L-000001",
			OwnerUUID:    "owner-a",
			LongURL:      "https://example.com/a",
			ShortCode:    "aaaaaaa",
			CreatedAt:    at,
			ExpiresAt:    at,
			ClickLimit:   &limit,
			ClickCount:   2,
			LastAccessAt: &at,
			Status:       types.StatusActive,
		},
		{
			ID:        "L-000002",
			OwnerUUID: "owner-a",
			LongURL:   "https://example.com/b",
			ShortCode: "bbbbbbb",
			CreatedAt: at,
			ExpiresAt: at,
			Status:    types.StatusExpired,
		},
	}

	path := filepath.Join(t.TempDir(), "export.db")
	require.NoError(t, Write(path, links))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&count))
	assert.Equal(t, 2, count)

	var longURL, status string
	var clickLimit sql.NullInt64
	var lastAccess sql.NullString
	row := db.QueryRow(`SELECT long_url, status, click_limit, last_access_at FROM links WHERE short_code = ?`, "aaaaaaa")
	require.NoError(t, row.Scan(&longURL, &status, &clickLimit, &lastAccess))
	assert.Equal(t, "https://example.com/a", longURL)
	assert.Equal(t, types.StatusActive, status)
	require.True(t, clickLimit.Valid)
	assert.EqualValues(t, 5, clickLimit.Int64)
	assert.Equal(t, "2026-03-01T12:00:00", lastAccess.String)

	// Unlimited links store NULLs.
	row = db.QueryRow(`SELECT click_limit, last_access_at FROM links WHERE short_code = ?`, "bbbbbbb")
	require.NoError(t, row.Scan(&clickLimit, &lastAccess))
	assert.False(t, clickLimit.Valid)
	assert.False(t, lastAccess.Valid)
}

func TestWriteReplacesExistingRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.db")
	at := types.Now()
	first := []*types.Link{{ID: "L-000001", OwnerUUID: "o", LongURL: "https://a", ShortCode: "one1111", CreatedAt: at, ExpiresAt: at, Status: types.StatusActive}}
	second := []*types.Link{{ID: "L-000002", OwnerUUID: "o", LongURL: "https://b", ShortCode: "two2222", CreatedAt: at, ExpiresAt: at, Status: types.StatusActive}}

	require.NoError(t, Write(path, first))
	require.NoError(t, Write(path, second))

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM links`).Scan(&count))
	assert.Equal(t, 1, count)

	var code string
	require.NoError(t, db.QueryRow(`SELECT short_code FROM links`).Scan(&code))
	assert.Equal(t, "two2222", code)
}
