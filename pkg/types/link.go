package types

import "time"

// Link statuses. A link progresses through these statuses during its
// lifecycle. The status is stored, not derived on read: it is refreshed at
// specific transition points (open, edit-limit, cleanup sweeps), so it may be
// briefly stale between sweeps.
const (
	StatusActive       = "ACTIVE"
	StatusExpired      = "EXPIRED"
	StatusLimitReached = "LIMIT_REACHED"
	StatusDeleted      = "DELETED"
)

// validStatuses is the set of recognized link status values.
var validStatuses = map[string]bool{
	StatusActive:       true,
	StatusExpired:      true,
	StatusLimitReached: true,
	StatusDeleted:      true,
}

// KnownStatus reports whether s is a recognized link status value.
func KnownStatus(s string) bool {
	return validStatuses[s]
}

// Link binds an original long URL to a generated short code and tracks its
// lifecycle: creation, expiry (TTL), click quota, and deletion.
type Link struct {
	ID           string     `json:"id"`           // stable identifier, e.g. L-000042; never reused
	OwnerUUID    string     `json:"ownerUuid"`    // owning user; immutable after creation
	LongURL      string     `json:"longUrl"`      // redirect target
	ShortCode    string     `json:"shortCode"`    // generated alias appended to the base URL
	CreatedAt    LocalTime  `json:"createdAt"`    // creation timestamp
	ExpiresAt    LocalTime  `json:"expiresAt"`    // absolute expiry; fixed at creation
	ClickLimit   *int       `json:"clickLimit"`   // nil means unlimited
	ClickCount   int        `json:"clickCount"`   // successful opens so far
	LastAccessAt *LocalTime `json:"lastAccessAt"` // set on each successful open
	Status       string     `json:"status"`       // one of the Status constants
}

// Expired reports whether the link's TTL has passed. The boundary is
// inclusive: equality counts as expired. A zero ExpiresAt never expires,
// guarding against malformed records.
func (l *Link) Expired(now time.Time) bool {
	if l.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(l.ExpiresAt.Time)
}

// QuotaReached reports whether the click limit is present and the click count
// has reached it. The boundary is inclusive.
func (l *Link) QuotaReached() bool {
	return l.ClickLimit != nil && l.ClickCount >= *l.ClickLimit
}

// Recompute refreshes the stored status from the lifecycle predicates.
// Expiry wins over quota; a link that is neither expired nor at quota is
// active again, which is how raising the limit revives a blocked link.
func (l *Link) Recompute(now time.Time) {
	switch {
	case l.Expired(now):
		l.Status = StatusExpired
	case l.QuotaReached():
		l.Status = StatusLimitReached
	default:
		l.Status = StatusActive
	}
}

// Clone returns a deep copy. Pointer fields are duplicated so a caller
// mutating the copy cannot reach the original.
func (l *Link) Clone() *Link {
	cp := *l
	if l.ClickLimit != nil {
		v := *l.ClickLimit
		cp.ClickLimit = &v
	}
	if l.LastAccessAt != nil {
		v := *l.LastAccessAt
		cp.LastAccessAt = &v
	}
	return &cp
}
