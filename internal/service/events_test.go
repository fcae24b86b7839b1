package service

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

func TestEventsDisabledIsInert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	svc, err := NewEvents(zerolog.Nop(), path, false)
	require.NoError(t, err)

	svc.Info("owner", "abc", "hello")
	svc.Expired("owner", "abc", "bye")

	assert.Empty(t, svc.ListByOwner("owner"))
	assert.NoFileExists(t, path, "disabled log must not touch the file")
}

func TestEventsRecordAndQuery(t *testing.T) {
	svc, err := NewEvents(zerolog.Nop(), filepath.Join(t.TempDir(), "events.json"), true)
	require.NoError(t, err)

	svc.Info("owner-a", "abc1234", "CREATE")
	svc.LimitReached("owner-a", "abc1234", "Click limit reached (1/1)")
	svc.Error("owner-b", "-", "boom")

	mine := svc.ListByOwner("owner-a")
	require.Len(t, mine, 2)
	assert.Equal(t, types.EventInfo, mine[0].Type)
	assert.Equal(t, types.EventLimitReached, mine[1].Type)

	assert.Len(t, svc.ListByOwner("owner-b"), 1)
	assert.Empty(t, svc.ListByOwner("owner-c"))
}

func TestEventsRecentByOwnerLimitsAndOrders(t *testing.T) {
	svc, err := NewEvents(zerolog.Nop(), filepath.Join(t.TempDir(), "events.json"), true)
	require.NoError(t, err)

	svc.Info("owner", "a", "first")
	svc.Info("owner", "b", "second")
	svc.Info("owner", "c", "third")

	recent := svc.RecentByOwner("owner", 2)
	require.Len(t, recent, 2)
	// Same-second timestamps keep append order within the stable sort,
	// so the slice is still capped correctly.
	for _, ev := range recent {
		assert.Equal(t, "owner", ev.OwnerUUID)
	}

	assert.Len(t, svc.RecentByOwner("owner", 50), 3)
}
