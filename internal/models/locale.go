// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// LocaleConfig describes one content locale the editor can target.
// Domain optionally maps the locale to its own public hostname.
type LocaleConfig struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Domain    string `json:"domain,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// DefaultLocales returns the locale set used when no configuration has
// been persisted: English (default), Swedish, Norwegian.
func DefaultLocales() []LocaleConfig {
	return []LocaleConfig{
		{Code: "en", Name: "English", IsDefault: true},
		{Code: "sv", Name: "Swedish"},
		{Code: "no", Name: "Norwegian"},
	}
}
