package repository

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/vkuryndin/shortlinkapp/internal/jsonstore"
	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

// Users persists and queries local user records. The cache is loaded on
// construction and written back through the atomic store after every
// mutation.
type Users struct {
	mu    sync.Mutex
	log   zerolog.Logger
	path  string
	cache []*types.User
}

// NewUsers loads the user collection from path, creating it empty when absent.
func NewUsers(log zerolog.Logger, path string) (*Users, error) {
	cache, err := jsonstore.ReadOrDefault(log, path, []*types.User{})
	if err != nil {
		return nil, err
	}
	return &Users{log: log, path: path, cache: cache}, nil
}

// List returns a defensive copy of all users.
func (r *Users) List() []*types.User {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*types.User, len(r.cache))
	for i, u := range r.cache {
		cp := *u
		out[i] = &cp
	}
	return out
}

// FindByUUID returns a copy of the user with the given UUID.
func (r *Users) FindByUUID(uuid string) (*types.User, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.cache {
		if u.UUID == uuid {
			cp := *u
			return &cp, true
		}
	}
	return nil, false
}

// UpsertCurrent ensures a user with the given UUID exists and refreshes its
// lastSeenAt, creating the record with createdAt when absent. The change is
// flushed immediately.
func (r *Users) UpsertCurrent(uuid string) *types.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := types.Now()
	for _, u := range r.cache {
		if u.UUID == uuid {
			u.LastSeenAt = now
			r.flushLocked()
			cp := *u
			return &cp
		}
	}

	u := &types.User{UUID: uuid, CreatedAt: now, LastSeenAt: now}
	r.cache = append(r.cache, u)
	r.flushLocked()
	cp := *u
	return &cp
}

func (r *Users) flushLocked() {
	if err := jsonstore.WriteAtomic(r.path, r.cache); err != nil {
		r.log.Warn().Err(err).Str("path", r.path).Msg("failed to write users file")
	}
}
