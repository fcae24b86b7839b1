package types

import "errors"

// Business refusals are sentinel errors so callers and tests can tell the
// reasons apart with errors.Is. They are expected conditions, not faults.
var (
	ErrLinkNotFound       = errors.New("link not found")
	ErrLinkDeleted        = errors.New("link was deleted by owner")
	ErrNotOwner           = errors.New("operation allowed for the owner only")
	ErrLinkExpired        = errors.New("link expired")
	ErrLimitReached       = errors.New("click limit reached")
	ErrEditLimitDisabled  = errors.New("editing click limit is disabled by configuration")
	ErrLimitNotPositive   = errors.New("new limit must be positive")
	ErrLimitBelowClicks   = errors.New("new limit must be >= current clicks")
	ErrInvalidURL         = errors.New("invalid URL: only http/https with a host are allowed")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique short code")
)
