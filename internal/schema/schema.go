// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package schema generates schema.org JSON-LD objects from the props of
// SEO-bearing blocks. Generators are pure: props plus locale in, one
// structured-data object out. The locale is accepted for future
// localization and does not affect the language-neutral fields emitted
// today.
package schema

import (
	"blockpress/internal/models"
)

const context = "https://schema.org"

// str reads a string prop; missing or non-string values read as "".
func str(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

// num reads a numeric prop. JSON decoding produces float64, but values
// set in code may be int. ok reports whether the key held a number.
func num(props map[string]any, key string) (float64, bool) {
	switch v := props[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

// object reads a nested map prop. ok is false when the key is absent or
// holds a non-map value; an empty map is present.
func object(props map[string]any, key string) (map[string]any, bool) {
	m, ok := props[key].(map[string]any)
	return m, ok
}

// items reads a slice prop as decoded from JSON.
func items(props map[string]any, key string) []any {
	s, _ := props[key].([]any)
	return s
}

// setIf adds key: value to the target only when value is non-empty.
func setIf(target models.JSONLD, key, value string) {
	if value != "" {
		target[key] = value
	}
}
