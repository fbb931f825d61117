package life

import "strconv"

// Config holds the parameters used to build a Grid from the registry.
type Config struct {
	DisplayWidth  int
	DisplayHeight int
	Seed          int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{DisplayWidth: 1920, DisplayHeight: 1080, Seed: 42}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.DisplayWidth = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.DisplayHeight = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
