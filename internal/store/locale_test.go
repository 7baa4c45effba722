// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"blockpress/internal/models"
)

func TestLocaleDefaults(t *testing.T) {
	s, err := NewLocaleStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocaleStore() error: %v", err)
	}

	locales, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	want := []string{"en", "sv", "no"}
	if len(locales) != len(want) {
		t.Fatalf("Get() returned %d locales, want %d", len(locales), len(want))
	}
	for i, code := range want {
		if locales[i].Code != code {
			t.Errorf("locales[%d].Code = %q, want %q", i, locales[i].Code, code)
		}
	}
	if !locales[0].IsDefault {
		t.Error("english should be the default locale")
	}
}

func TestLocaleSaveRoundTrip(t *testing.T) {
	s, err := NewLocaleStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocaleStore() error: %v", err)
	}

	saved := []models.LocaleConfig{
		{Code: "en", Name: "English", IsDefault: true},
		{Code: "de", Name: "German"},
	}
	if err := s.Save(saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Get() returned %d locales, want 2", len(got))
	}
	if got[1].Code != "de" || got[1].Name != "German" {
		t.Errorf("got[1] = %+v", got[1])
	}
}

func TestLocaleEnglishForcedFirstAndDefault(t *testing.T) {
	s, err := NewLocaleStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocaleStore() error: %v", err)
	}

	// English saved last, not marked default, and another locale
	// claiming the default flag.
	saved := []models.LocaleConfig{
		{Code: "sv", Name: "Swedish", IsDefault: true},
		{Code: "en", Name: "English"},
	}
	if err := s.Save(saved); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got[0].Code != "en" {
		t.Errorf("got[0].Code = %q, english must sort first", got[0].Code)
	}
	if !got[0].IsDefault {
		t.Error("english must always be the default")
	}
}
