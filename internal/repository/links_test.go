package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vkuryndin/shortlinkapp/internal/jsonstore"
	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

func testLinksPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "links.json")
}

func newTestLinks(t *testing.T, path string) *Links {
	t.Helper()
	r, err := NewLinks(zerolog.Nop(), path)
	require.NoError(t, err)
	return r
}

func intPtr(v int) *int { return &v }

func mkLink(id, owner, code string, expiresAt time.Time) *types.Link {
	return &types.Link{
		ID:        id,
		OwnerUUID: owner,
		LongURL:   "https://example.com/" + code,
		ShortCode: code,
		CreatedAt: types.Now(),
		ExpiresAt: types.NewLocalTime(expiresAt),
		Status:    types.StatusActive,
	}
}

func TestSequenceRestoredFromMaxSuffix(t *testing.T) {
	path := testLinksPath(t)
	future := time.Now().Add(time.Hour)

	seed := newTestLinks(t, path)
	seed.Add(mkLink("L-000003", "o1", "aaa", future))
	seed.Add(mkLink("L-000007", "o1", "bbb", future))
	seed.Add(mkLink("L-000002", "o2", "ccc", future))

	r := newTestLinks(t, path)
	assert.Equal(t, "L-000008", r.NextID())
	assert.Equal(t, "L-000009", r.NextID())
}

func TestSequenceSkipsMalformedIDs(t *testing.T) {
	path := testLinksPath(t)
	future := time.Now().Add(time.Hour)

	links := []*types.Link{
		mkLink("L-000005", "o1", "aaa", future),
		mkLink("garbage", "o1", "bbb", future),
		mkLink("L-notanumber", "o1", "ccc", future),
		mkLink("", "o1", "ddd", future),
	}
	require.NoError(t, jsonstore.WriteAtomic(path, links))

	r := newTestLinks(t, path)
	assert.Equal(t, "L-000006", r.NextID())
}

func TestSequenceStartsAtOneOnEmptyStore(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	assert.Equal(t, "L-000001", r.NextID())
}

func TestAddPersistsAcrossInstances(t *testing.T) {
	path := testLinksPath(t)
	future := time.Now().Add(time.Hour)

	r := newTestLinks(t, path)
	r.Add(mkLink("L-000001", "owner-a", "abc1234", future))

	reopened := newTestLinks(t, path)
	got, ok := reopened.FindByShortCode("abc1234")
	require.True(t, ok)
	assert.Equal(t, "L-000001", got.ID)
	assert.Equal(t, "owner-a", got.OwnerUUID)
}

func TestUpdateReplacesStoredCopy(t *testing.T) {
	path := testLinksPath(t)
	future := time.Now().Add(time.Hour)

	r := newTestLinks(t, path)
	r.Add(mkLink("L-000001", "o1", "abc", future))

	l, ok := r.FindByShortCode("abc")
	require.True(t, ok)
	l.ClickCount = 5
	l.Status = types.StatusLimitReached
	r.Update(l)

	got, ok := r.FindByShortCode("abc")
	require.True(t, ok)
	assert.Equal(t, 5, got.ClickCount)
	assert.Equal(t, types.StatusLimitReached, got.Status)
}

func TestListReturnsDefensiveCopies(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	l := mkLink("L-000001", "o1", "abc", time.Now().Add(time.Hour))
	l.ClickLimit = intPtr(3)
	r.Add(l)

	snapshot := r.ListAll()
	require.Len(t, snapshot, 1)
	snapshot[0].ClickCount = 999
	*snapshot[0].ClickLimit = 999
	snapshot[0].Status = types.StatusDeleted

	got, ok := r.FindByShortCode("abc")
	require.True(t, ok)
	assert.Equal(t, 0, got.ClickCount, "mutating a snapshot must not corrupt the cache")
	assert.Equal(t, 3, *got.ClickLimit)
	assert.Equal(t, types.StatusActive, got.Status)
}

func TestListByOwner(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	future := time.Now().Add(time.Hour)
	r.Add(mkLink("L-000001", "owner-a", "a1", future))
	r.Add(mkLink("L-000002", "owner-b", "b1", future))
	r.Add(mkLink("L-000003", "owner-a", "a2", future))

	mine := r.ListByOwner("owner-a")
	require.Len(t, mine, 2)
	for _, l := range mine {
		assert.Equal(t, "owner-a", l.OwnerUUID)
	}
	assert.Len(t, r.ListByOwner("owner-c"), 0)
}

func TestDeleteByShortCodeForOwner(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	future := time.Now().Add(time.Hour)
	r.Add(mkLink("L-000001", "owner-a", "abc", future))

	assert.False(t, r.DeleteByShortCodeForOwner("abc", "owner-b"), "wrong owner must not delete")
	assert.False(t, r.DeleteByShortCodeForOwner("zzz", "owner-a"), "unknown code must not delete")
	assert.True(t, r.DeleteByShortCodeForOwner("abc", "owner-a"))

	_, ok := r.FindByShortCode("abc")
	assert.False(t, ok)
}

func TestSoftExpirySweepIsIdempotent(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	now := time.Now()
	r.Add(mkLink("L-000001", "o1", "old", now.Add(-time.Hour)))
	r.Add(mkLink("L-000002", "o1", "fresh", now.Add(time.Hour)))

	assert.Equal(t, 1, r.CleanupExpired(now, false))
	assert.Equal(t, 0, r.CleanupExpired(now, false), "second sweep must report zero")

	got, ok := r.FindByShortCode("old")
	require.True(t, ok)
	assert.Equal(t, types.StatusExpired, got.Status)

	fresh, ok := r.FindByShortCode("fresh")
	require.True(t, ok)
	assert.Equal(t, types.StatusActive, fresh.Status)
}

func TestExpiryBoundaryIsInclusive(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	now := time.Now().Truncate(time.Second)
	r.Add(mkLink("L-000001", "o1", "edge", now))

	assert.Equal(t, 1, r.CleanupExpired(now, false))
}

func TestHardExpirySweepRemovesRecords(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	now := time.Now()
	r.Add(mkLink("L-000001", "o1", "old", now.Add(-time.Hour)))
	r.Add(mkLink("L-000002", "o1", "fresh", now.Add(time.Hour)))

	assert.Equal(t, 1, r.CleanupExpired(now, true))

	_, ok := r.FindByShortCode("old")
	assert.False(t, ok)
	assert.Len(t, r.ListAll(), 1)
}

func TestQuotaSweepBoundary(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	future := time.Now().Add(time.Hour)

	at := mkLink("L-000001", "o1", "at", future)
	at.ClickLimit = intPtr(3)
	at.ClickCount = 3
	r.Add(at)

	below := mkLink("L-000002", "o1", "below", future)
	below.ClickLimit = intPtr(3)
	below.ClickCount = 2
	r.Add(below)

	unlimited := mkLink("L-000003", "o1", "unlim", future)
	unlimited.ClickCount = 1000
	r.Add(unlimited)

	assert.Equal(t, 1, r.CleanupLimitReached(false))
	assert.Equal(t, 0, r.CleanupLimitReached(false))

	got, ok := r.FindByShortCode("at")
	require.True(t, ok)
	assert.Equal(t, types.StatusLimitReached, got.Status)

	got, ok = r.FindByShortCode("below")
	require.True(t, ok)
	assert.Equal(t, types.StatusActive, got.Status)
}

func TestOwnerScopedHardExpiryCleanup(t *testing.T) {
	r := newTestLinks(t, testLinksPath(t))
	now := time.Now()
	r.Add(mkLink("L-000001", "owner-a", "a-old", now.Add(-time.Hour)))
	r.Add(mkLink("L-000002", "owner-b", "b-old", now.Add(-time.Hour)))

	assert.Equal(t, 1, r.CleanupExpiredForOwner(now, "owner-a", true))

	_, ok := r.FindByShortCode("a-old")
	assert.False(t, ok, "requested owner's expired link must be removed")

	other, ok := r.FindByShortCode("b-old")
	require.True(t, ok, "other owner's expired link must remain")
	assert.Equal(t, types.StatusActive, other.Status, "and stay unmarked")
}

func TestZeroCountSweepDoesNotRewriteFile(t *testing.T) {
	path := testLinksPath(t)
	r := newTestLinks(t, path)
	r.Add(mkLink("L-000001", "o1", "fresh", time.Now().Add(time.Hour)))

	before, err := os.Stat(path)
	require.NoError(t, err)
	beforeTime := before.ModTime()

	time.Sleep(10 * time.Millisecond)
	assert.Equal(t, 0, r.CleanupExpired(time.Now(), false))

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, beforeTime, after.ModTime(), "a zero-count sweep must not flush")
}

func TestFlushFailureDoesNotPanic(t *testing.T) {
	// Point the repository at a path whose parent is a file, so every
	// flush fails. Operations must still succeed in memory.
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	r := &Links{log: zerolog.Nop(), path: filepath.Join(blocker, "links.json")}
	r.Add(mkLink("L-000001", "o1", "abc", time.Now().Add(time.Hour)))

	got, ok := r.FindByShortCode("abc")
	require.True(t, ok, "the in-memory cache stays authoritative")
	assert.Equal(t, "L-000001", got.ID)
}
