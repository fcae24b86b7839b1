// Package repository owns the canonical in-memory collections backed by
// JSON files on disk. Every mutation rewrites the whole backing file through
// the atomic store; there is no partial or incremental persistence.
package repository

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/vkuryndin/shortlinkapp/internal/jsonstore"
	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

// Link identifier shape: L-000042. The numeric suffix is a monotonically
// increasing sequence restored from disk at startup and never reused.
const (
	linkIDPrefix = "L-"
	linkIDFormat = linkIDPrefix + "%06d"
)

// Links is the single in-process source of truth for link entities. All
// reads and writes to the collection go through it. A single mutex guards
// every cache-mutation-plus-flush sequence; there is no cross-process
// locking over the backing file.
type Links struct {
	mu    sync.Mutex
	log   zerolog.Logger
	path  string
	cache []*types.Link
	seq   atomic.Int64
}

// NewLinks loads the link collection from path (creating it empty when
// absent) and restores the identifier sequence from the maximum numeric
// suffix of ids shaped L-######. Malformed ids are skipped so a damaged id
// never blocks startup; a malformed file does.
func NewLinks(log zerolog.Logger, path string) (*Links, error) {
	cache, err := jsonstore.ReadOrDefault(log, path, []*types.Link{})
	if err != nil {
		return nil, err
	}

	r := &Links{log: log, path: path, cache: cache}
	r.seq.Store(maxIDSuffix(cache))
	return r, nil
}

func maxIDSuffix(links []*types.Link) int64 {
	var max int64
	for _, l := range links {
		if l == nil || !strings.HasPrefix(l.ID, linkIDPrefix) {
			continue
		}
		n, err := strconv.ParseInt(l.ID[len(linkIDPrefix):], 10, 64)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}

// NextID atomically advances the sequence and formats the next identifier.
func (r *Links) NextID() string {
	return fmt.Sprintf(linkIDFormat, r.seq.Add(1))
}

// Add stores a copy of the link and immediately flushes the collection.
func (r *Links) Add(l *types.Link) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = append(r.cache, l.Clone())
	r.flushLocked()
}

// Update replaces the stored copy matching l.ID and flushes. A link that is
// no longer in the cache (e.g. removed by a concurrent hard cleanup) is
// silently ignored.
func (r *Links) Update(l *types.Link) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.cache {
		if cur.ID == l.ID {
			r.cache[i] = l.Clone()
			r.flushLocked()
			return
		}
	}
}

// FindByShortCode scans for the first link with the given short code.
// Uniqueness of codes is a generation-time best effort, not a stored
// invariant, so at most the first match is returned.
func (r *Links) FindByShortCode(code string) (*types.Link, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.cache {
		if l.ShortCode == code {
			return l.Clone(), true
		}
	}
	return nil, false
}

// ListAll returns a defensive copy of the whole collection.
func (r *Links) ListAll() []*types.Link {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.cache)
}

// ListByOwner returns a defensive copy of the owner's links.
func (r *Links) ListByOwner(ownerUUID string) []*types.Link {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*types.Link, 0)
	for _, l := range r.cache {
		if l.OwnerUUID == ownerUUID {
			out = append(out, l.Clone())
		}
	}
	return out
}

// DeleteByShortCodeForOwner removes the first link matching both the short
// code and the owner. It reports whether a removal occurred and flushes only
// on success.
func (r *Links) DeleteByShortCodeForOwner(code, ownerUUID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, l := range r.cache {
		if l.ShortCode == code && l.OwnerUUID == ownerUUID {
			r.cache = append(r.cache[:i], r.cache[i+1:]...)
			r.flushLocked()
			return true
		}
	}
	return false
}

// CleanupExpired sweeps the whole collection for links whose TTL has passed.
// Hard mode removes them; soft mode marks them EXPIRED. Returns the number
// of affected links. A zero count does not flush.
func (r *Links) CleanupExpired(now time.Time, hardDelete bool) int {
	return r.sweep(func(l *types.Link) bool { return l.Expired(now) }, types.StatusExpired, "", hardDelete)
}

// CleanupExpiredForOwner is CleanupExpired restricted to one owner's links.
func (r *Links) CleanupExpiredForOwner(now time.Time, ownerUUID string, hardDelete bool) int {
	return r.sweep(func(l *types.Link) bool { return l.Expired(now) }, types.StatusExpired, ownerUUID, hardDelete)
}

// CleanupLimitReached sweeps the whole collection for links at or over their
// click quota. Hard mode removes them; soft mode marks them LIMIT_REACHED.
func (r *Links) CleanupLimitReached(hardDelete bool) int {
	return r.sweep((*types.Link).QuotaReached, types.StatusLimitReached, "", hardDelete)
}

// CleanupLimitReachedForOwner is CleanupLimitReached restricted to one owner.
func (r *Links) CleanupLimitReachedForOwner(ownerUUID string, hardDelete bool) int {
	return r.sweep((*types.Link).QuotaReached, types.StatusLimitReached, ownerUUID, hardDelete)
}

// sweep applies one cleanup pass. Soft mode skips deleted links and links
// already carrying the target status, which makes repeated sweeps idempotent
// (the second run reports zero). Hard mode removes every match in scope.
func (r *Links) sweep(match func(*types.Link) bool, status, ownerUUID string, hardDelete bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	if hardDelete {
		kept := r.cache[:0]
		for _, l := range r.cache {
			if (ownerUUID == "" || l.OwnerUUID == ownerUUID) && match(l) {
				count++
				continue
			}
			kept = append(kept, l)
		}
		r.cache = kept
	} else {
		for _, l := range r.cache {
			if ownerUUID != "" && l.OwnerUUID != ownerUUID {
				continue
			}
			if !match(l) {
				continue
			}
			if l.Status == types.StatusDeleted || l.Status == status {
				continue
			}
			l.Status = status
			count++
		}
	}

	if count > 0 {
		r.flushLocked()
	}
	return count
}

// Flush writes the full cache to disk through the atomic store.
func (r *Links) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flushLocked()
}

// flushLocked persists the cache. Write failures are logged and swallowed:
// the in-memory cache stays authoritative and the on-disk copy goes stale
// until the next successful flush. An interactive session must never crash
// on a transient write error.
func (r *Links) flushLocked() {
	if err := jsonstore.WriteAtomic(r.path, r.cache); err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("failed to write links file")
	}
}

func cloneAll(links []*types.Link) []*types.Link {
	out := make([]*types.Link, len(links))
	for i, l := range links {
		out[i] = l.Clone()
	}
	return out
}
