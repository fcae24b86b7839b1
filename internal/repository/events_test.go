package repository

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

func newTestEvents(t *testing.T, path string) *Events {
	t.Helper()
	r, err := NewEvents(zerolog.Nop(), path)
	require.NoError(t, err)
	return r
}

func TestEventsAppendAndListByOwner(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	r := newTestEvents(t, path)

	r.Add(&types.Event{TS: types.Now(), Type: types.EventInfo, OwnerUUID: "owner-a", ShortCode: "abc", Message: "CREATE"})
	r.Add(&types.Event{TS: types.Now(), Type: types.EventExpired, OwnerUUID: "owner-b", ShortCode: "def", Message: "expired"})
	r.Add(&types.Event{TS: types.Now(), Type: types.EventInfo, OwnerUUID: "owner-a", ShortCode: "-", Message: "EXPORT 3"})

	assert.Len(t, r.List(), 3)

	mine := r.ListByOwner("owner-a")
	require.Len(t, mine, 2)
	for _, e := range mine {
		assert.Equal(t, "owner-a", e.OwnerUUID)
	}
}

func TestEventsPersistAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")

	first := newTestEvents(t, path)
	first.Add(&types.Event{TS: types.Now(), Type: types.EventLimitReached, OwnerUUID: "o1", ShortCode: "abc", Message: "limit"})

	reopened := newTestEvents(t, path)
	got := reopened.List()
	require.Len(t, got, 1)
	assert.Equal(t, types.EventLimitReached, got[0].Type)
	assert.Equal(t, "abc", got[0].ShortCode)
}
