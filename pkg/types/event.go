package types

// Event kinds emitted by lifecycle operations and cleanups.
const (
	EventInfo         = "INFO"
	EventExpired      = "EXPIRED"
	EventLimitReached = "LIMIT_REACHED"
	EventError        = "ERROR"
)

// Event is a single notification appended to the persistent event log.
// Producers include link lifecycle operations (create, open, delete,
// edit-limit), automatic cleanups, and exports.
type Event struct {
	TS        LocalTime `json:"ts"`
	Type      string    `json:"type"`
	OwnerUUID string    `json:"ownerUuid"`
	ShortCode string    `json:"shortCode"` // "-" for owner-only or system events
	Message   string    `json:"message"`
}
