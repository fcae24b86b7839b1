package service

import (
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vkuryndin/shortlinkapp/internal/repository"
	"github.com/vkuryndin/shortlinkapp/pkg/types"
)

// Users tracks the current user of the session and the registry of all
// users seen on this machine.
type Users struct {
	current string
	repo    *repository.Users
}

// NewUsers opens the user registry at path and records the current user,
// refreshing its lastSeenAt.
func NewUsers(log zerolog.Logger, path, currentUUID string) (*Users, error) {
	repo, err := repository.NewUsers(log, path)
	if err != nil {
		return nil, err
	}
	s := &Users{current: currentUUID, repo: repo}
	repo.UpsertCurrent(currentUUID)
	return s, nil
}

// Current returns the current user's UUID.
func (s *Users) Current() string {
	return s.current
}

// TouchLastSeen refreshes the current user's lastSeenAt.
func (s *Users) TouchLastSeen() {
	s.repo.UpsertCurrent(s.current)
}

// ListAll returns every known user.
func (s *Users) ListAll() []*types.User {
	return s.repo.List()
}

// SwitchCurrent changes the session to another user, creating the record if
// it is unknown. Blank input is ignored.
func (s *Users) SwitchCurrent(newUUID string) {
	newUUID = strings.TrimSpace(newUUID)
	if newUUID == "" {
		return
	}
	s.current = newUUID
	s.repo.UpsertCurrent(newUUID)
}

// CreateNewAndSwitch registers a brand-new user and makes it current.
func (s *Users) CreateNewAndSwitch() string {
	id := uuid.NewString()
	s.current = id
	s.repo.UpsertCurrent(id)
	return id
}
