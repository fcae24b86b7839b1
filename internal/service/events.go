package service

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/vkuryndin/shortlinkapp/internal/repository"
	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

// Events records and queries domain events. When disabled, every method is a
// no-op (queries return nothing) so callers never need to guard their calls.
// Events implements Notifier.
type Events struct {
	enabled bool
	repo    *repository.Events
}

// NewEvents opens the event log at path. When enabled is false the backing
// file is not touched at all.
func NewEvents(log zerolog.Logger, path string, enabled bool) (*Events, error) {
	if !enabled {
		return &Events{}, nil
	}
	repo, err := repository.NewEvents(log, path)
	if err != nil {
		return nil, err
	}
	return &Events{enabled: true, repo: repo}, nil
}

// Info records an informational event.
func (s *Events) Info(ownerUUID, shortCode, message string) {
	s.record(types.EventInfo, ownerUUID, shortCode, message)
}

// Expired records a TTL-expiry event.
func (s *Events) Expired(ownerUUID, shortCode, message string) {
	s.record(types.EventExpired, ownerUUID, shortCode, message)
}

// LimitReached records a click-quota event.
func (s *Events) LimitReached(ownerUUID, shortCode, message string) {
	s.record(types.EventLimitReached, ownerUUID, shortCode, message)
}

// Error records an error event.
func (s *Events) Error(ownerUUID, shortCode, message string) {
	s.record(types.EventError, ownerUUID, shortCode, message)
}

func (s *Events) record(kind, ownerUUID, shortCode, message string) {
	if !s.enabled {
		return
	}
	s.repo.Add(&types.Event{
		TS:        types.Now(),
		Type:      kind,
		OwnerUUID: ownerUUID,
		ShortCode: shortCode,
		Message:   message,
	})
}

// ListByOwner returns all events for the owner, in append order.
func (s *Events) ListByOwner(ownerUUID string) []*types.Event {
	if !s.enabled {
		return nil
	}
	return s.repo.ListByOwner(ownerUUID)
}

// RecentByOwner returns up to limit events for the owner, newest first.
func (s *Events) RecentByOwner(ownerUUID string, limit int) []*types.Event {
	if !s.enabled {
		return nil
	}
	events := s.repo.ListByOwner(ownerUUID)
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].TS.After(events[j].TS.Time)
	})
	if limit >= 0 && len(events) > limit {
		events = events[:limit]
	}
	return events
}
