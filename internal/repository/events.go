package repository

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/vkuryndin/shortlinkapp/internal/jsonstore"
	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

// Events persists the append-only event log. Entries are never rewritten or
// removed; the whole list is flushed after each append.
type Events struct {
	mu    sync.Mutex
	log   zerolog.Logger
	path  string
	cache []*types.Event
}

// NewEvents loads the event log from path, creating it empty when absent.
func NewEvents(log zerolog.Logger, path string) (*Events, error) {
	cache, err := jsonstore.ReadOrDefault(log, path, []*types.Event{})
	if err != nil {
		return nil, err
	}
	return &Events{log: log, path: path, cache: cache}, nil
}

// Add appends an event and persists the change immediately.
func (r *Events) Add(e *types.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.cache = append(r.cache, &cp)
	r.flushLocked()
}

// List returns a defensive copy of all events.
func (r *Events) List() []*types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*types.Event, len(r.cache))
	for i, e := range r.cache {
		cp := *e
		out[i] = &cp
	}
	return out
}

// ListByOwner returns a defensive copy of the owner's events.
func (r *Events) ListByOwner(ownerUUID string) []*types.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*types.Event, 0)
	for _, e := range r.cache {
		if e.OwnerUUID == ownerUUID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}

func (r *Events) flushLocked() {
	if err := jsonstore.WriteAtomic(r.path, r.cache); err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("failed to write events file")
	}
}
