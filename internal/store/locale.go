// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists the application's data as JSON documents on
// disk: one file per page, plus a locales file and a users file. Each
// store struct wraps the data directory and exposes typed methods; a
// missing record reads as (nil, nil), never an error.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"blockpress/internal/models"
)

const localesFile = "locales.json"

// LocaleStore reads and writes the configured content locales.
type LocaleStore struct {
	path string
}

// NewLocaleStore creates a locale store rooted at the data directory.
func NewLocaleStore(dataDir string) (*LocaleStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &LocaleStore{path: filepath.Join(dataDir, localesFile)}, nil
}

// Get returns the configured locales, English always first and always
// marked default. When no configuration has been persisted, the
// defaults (en, sv, no) are returned.
func (s *LocaleStore) Get() ([]models.LocaleConfig, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return models.DefaultLocales(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}

	var locales []models.LocaleConfig
	if err := json.Unmarshal(data, &locales); err != nil {
		return nil, fmt.Errorf("parse locales: %w", err)
	}

	// English is always present, always first, always the default.
	english := models.LocaleConfig{Code: "en", Name: "English", IsDefault: true}
	others := make([]models.LocaleConfig, 0, len(locales))
	for _, l := range locales {
		if l.Code == "en" {
			english = l
			continue
		}
		others = append(others, l)
	}
	english.IsDefault = true

	return append([]models.LocaleConfig{english}, others...), nil
}

// Save persists the locale configuration, replacing the previous one.
func (s *LocaleStore) Save(locales []models.LocaleConfig) error {
	data, err := json.MarshalIndent(locales, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal locales: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write locales: %w", err)
	}
	return nil
}
