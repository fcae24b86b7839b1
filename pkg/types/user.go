package types

// User is a local application user identified by a UUID. Users are tracked
// so links, events, and exports can be scoped to an owner.
type User struct {
	UUID       string    `json:"uuid"`
	CreatedAt  LocalTime `json:"createdAt"`
	LastSeenAt LocalTime `json:"lastSeenAt"`
}
