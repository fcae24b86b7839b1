package types

import "errors"

// Config validation errors.
var (
	ErrCodeLengthInvalid   = errors.New("short code length must be positive")
	ErrMaxURLLengthInvalid = errors.New("max URL length must be positive")
	ErrDefaultLimitInvalid = errors.New("default click limit must be positive")
)

// Config is the runtime configuration snapshot consumed by the link service
// and repositories. It is loaded once per invocation; there is no watching
// or hot reload.
type Config struct {
	// BaseURL is the prefix used when rendering short links (e.g. "cli://").
	BaseURL string `json:"baseUrl" mapstructure:"base_url"`

	// ShortCodeLength is the length of generated Base62 short codes.
	ShortCodeLength int `json:"shortCodeLength" mapstructure:"short_code_length"`

	// DefaultTTLHours is the time-to-live added to new links at creation.
	// Negative values produce links that are already expired, which is
	// occasionally useful for testing cleanup behavior.
	DefaultTTLHours int `json:"defaultTtlHours" mapstructure:"default_ttl_hours"`

	// DefaultClickLimit applies to new links without an explicit limit.
	// Nil means unlimited.
	DefaultClickLimit *int `json:"defaultClickLimit" mapstructure:"default_click_limit"`

	// MaxURLLength caps the accepted long URL length.
	MaxURLLength int `json:"maxUrlLength" mapstructure:"max_url_length"`

	// CleanupOnEachOp runs both global cleanup sweeps before every
	// read/write-facing operation when true.
	CleanupOnEachOp bool `json:"cleanupOnEachOp" mapstructure:"cleanup_on_each_op"`

	// AllowOwnerEditLimit permits owners to change a link's click limit.
	AllowOwnerEditLimit bool `json:"allowOwnerEditLimit" mapstructure:"allow_owner_edit_limit"`

	// HardDeleteExpired removes expired links during cleanup instead of
	// marking them EXPIRED.
	HardDeleteExpired bool `json:"hardDeleteExpired" mapstructure:"hard_delete_expired"`

	// HardDeleteLimitReached removes quota-exhausted links during cleanup
	// instead of marking them LIMIT_REACHED.
	HardDeleteLimitReached bool `json:"hardDeleteLimitReached" mapstructure:"hard_delete_limit_reached"`

	// EventsLogEnabled enables the persistent event log.
	EventsLogEnabled bool `json:"eventsLogEnabled" mapstructure:"events_log_enabled"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	limit := 10
	return Config{
		BaseURL:                "cli://",
		ShortCodeLength:        7,
		DefaultTTLHours:        24,
		DefaultClickLimit:      &limit,
		MaxURLLength:           2048,
		CleanupOnEachOp:        true,
		AllowOwnerEditLimit:    true,
		HardDeleteExpired:      true,
		HardDeleteLimitReached: true,
		EventsLogEnabled:       true,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.ShortCodeLength <= 0 {
		return ErrCodeLengthInvalid
	}
	if c.MaxURLLength <= 0 {
		return ErrMaxURLLengthInvalid
	}
	if c.DefaultClickLimit != nil && *c.DefaultClickLimit <= 0 {
		return ErrDefaultLimitInvalid
	}
	return nil
}
