package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "zero code length rejected",
			mutate:  func(c *Config) { c.ShortCodeLength = 0 },
			wantErr: ErrCodeLengthInvalid,
		},
		{
			name:    "negative max URL length rejected",
			mutate:  func(c *Config) { c.MaxURLLength = -1 },
			wantErr: ErrMaxURLLengthInvalid,
		},
		{
			name:    "non-positive default limit rejected",
			mutate:  func(c *Config) { c.DefaultClickLimit = intPtr(0) },
			wantErr: ErrDefaultLimitInvalid,
		},
		{
			name:   "nil default limit means unlimited and is valid",
			mutate: func(c *Config) { c.DefaultClickLimit = nil },
		},
		{
			name:   "negative TTL is allowed",
			mutate: func(c *Config) { c.DefaultTTLHours = -1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "cli://", cfg.BaseURL)
	assert.Equal(t, 7, cfg.ShortCodeLength)
	assert.Equal(t, 24, cfg.DefaultTTLHours)
	if assert.NotNil(t, cfg.DefaultClickLimit) {
		assert.Equal(t, 10, *cfg.DefaultClickLimit)
	}
	assert.True(t, cfg.CleanupOnEachOp)
	assert.True(t, cfg.EventsLogEnabled)
}
