package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	// bcrypt accepts costs 4..31
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be between 4 and 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if c.Limits.AuthPerMinute <= 0 {
		return fmt.Errorf("limits.auth_per_minute must be > 0 (got %d)", c.Limits.AuthPerMinute)
	}
	if c.Limits.APIPerMinute <= 0 {
		return fmt.Errorf("limits.api_per_minute must be > 0 (got %d)", c.Limits.APIPerMinute)
	}

	keys, err := ParseExtraDateKeys(c.Registry.ExtraDateKeysRaw)
	if err != nil {
		return fmt.Errorf("registry.extra_date_keys: %w", err)
	}
	c.Registry.ExtraDateKeys = keys

	return nil
}

// ParseExtraDateKeys parses a comma-separated string of key=event_type pairs
// (e.g. "security_review_date=security_review") into ExtraDateKey entries.
// An empty string returns a nil slice.
func ParseExtraDateKeys(raw string) ([]ExtraDateKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	keys := make([]ExtraDateKey, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		key, eventType, ok := strings.Cut(p, "=")
		key = strings.TrimSpace(key)
		eventType = strings.TrimSpace(eventType)
		if !ok || key == "" || eventType == "" {
			return nil, fmt.Errorf("invalid entry %q, want key=event_type", p)
		}
		keys = append(keys, ExtraDateKey{Key: key, EventType: eventType})
	}

	return keys, nil
}
