package repository

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUsers(t *testing.T, path string) *Users {
	t.Helper()
	r, err := NewUsers(zerolog.Nop(), path)
	require.NoError(t, err)
	return r
}

func TestUpsertCurrentCreatesAndTouches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	r := newTestUsers(t, path)

	created := r.UpsertCurrent("uuid-1")
	assert.Equal(t, "uuid-1", created.UUID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.LastSeenAt.IsZero())

	// A second upsert must not create a duplicate.
	again := r.UpsertCurrent("uuid-1")
	assert.Equal(t, created.CreatedAt, again.CreatedAt, "createdAt is fixed at first sight")
	assert.Len(t, r.List(), 1)
}

func TestUsersPersistAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	first := newTestUsers(t, path)
	first.UpsertCurrent("uuid-1")
	first.UpsertCurrent("uuid-2")

	reopened := newTestUsers(t, path)
	assert.Len(t, reopened.List(), 2)

	u, ok := reopened.FindByUUID("uuid-2")
	require.True(t, ok)
	assert.Equal(t, "uuid-2", u.UUID)

	_, ok = reopened.FindByUUID("uuid-3")
	assert.False(t, ok)
}
