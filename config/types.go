// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/types.go
// Summary: Typed access helpers for config data.

package config

import (
	"encoding/json"
	"strconv"
)

// Section returns the named section or nil if missing. Sections decoded from
// JSON arrive as plain maps and are accepted as well.
func (c Config) Section(name string) Section {
	switch v := c[name].(type) {
	case Section:
		return v
	case map[string]interface{}:
		return Section(v)
	}
	return nil
}

// RegisterDefaults fills in keys missing from a section, creating the section
// if needed. Existing values are never overwritten.
func (c Config) RegisterDefaults(name string, defaults Section) {
	if c == nil || len(defaults) == 0 {
		return
	}
	section := c.Section(name)
	if section == nil {
		section = make(Section, len(defaults))
		c[name] = section
	}
	for key, value := range defaults {
		if _, ok := section[key]; !ok {
			section[key] = value
		}
	}
}

func (c Config) lookup(name, key string) (interface{}, bool) {
	section := c.Section(name)
	if section == nil {
		return nil, false
	}
	val, ok := section[key]
	return val, ok
}

// GetString returns a string value, or fallback when it is missing or not a string.
func (c Config) GetString(name, key, fallback string) string {
	if val, ok := c.lookup(name, key); ok {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return fallback
}

// GetBool returns a boolean value, also accepting numbers and parseable
// strings. Anything else yields fallback.
func (c Config) GetBool(name, key string, fallback bool) bool {
	val, ok := c.lookup(name, key)
	if !ok {
		return fallback
	}
	switch v := val.(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n != 0
		}
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
