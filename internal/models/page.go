// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultLocale is the fallback locale every page must carry. All read
// and write paths go through Normalize, which guarantees it exists.
const DefaultLocale = "en"

// JSONLD is an open-schema schema.org structured-data object. It always
// carries "@context": "https://schema.org" and a "@type" matching the
// described entity.
type JSONLD map[string]any

// SEO holds the search-engine metadata for one locale of a page.
// JSONSchemas is regenerated from the locale's SEO-bearing blocks on
// every content edit.
type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	JSONSchemas []JSONLD `json:"jsonSchemas"`
}

// LocaleDocument is the per-locale bundle of title, block content, and
// SEO metadata for one page.
type LocaleDocument struct {
	Title   string  `json:"title"`
	Content []Block `json:"content"`
	SEO     SEO     `json:"seo"`
}

// EmptyLocaleDocument returns a locale document with empty title, no
// blocks, and empty SEO metadata.
func EmptyLocaleDocument() LocaleDocument {
	return LocaleDocument{
		Content: []Block{},
		SEO:     SEO{JSONSchemas: []JSONLD{}},
	}
}

// Clone returns a structural deep copy of the document. Used to seed a
// new locale from the English document so the two diverge independently.
func (d LocaleDocument) Clone() LocaleDocument {
	out := LocaleDocument{
		Title: d.Title,
		SEO: SEO{
			Title:       d.SEO.Title,
			Description: d.SEO.Description,
		},
	}
	out.Content = make([]Block, len(d.Content))
	for i, b := range d.Content {
		out.Content[i] = b.Clone()
	}
	out.SEO.JSONSchemas = make([]JSONLD, len(d.SEO.JSONSchemas))
	for i, s := range d.SEO.JSONSchemas {
		out.SEO.JSONSchemas[i] = JSONLD(deepCopyMap(s))
	}
	return out
}

// Page is the aggregate the editor works on: one document per locale,
// keyed by locale code, addressed publicly by slug.
type Page struct {
	ID        uuid.UUID                 `json:"id"`
	Slug      string                    `json:"slug"`
	Locales   map[string]LocaleDocument `json:"locales"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}

// Normalize enforces the page invariants at the construction and
// deserialization boundary: the Locales map exists and the English
// document is present. All other code may assume both hold.
func (p *Page) Normalize() {
	if p.Locales == nil {
		p.Locales = make(map[string]LocaleDocument)
	}
	if _, ok := p.Locales[DefaultLocale]; !ok {
		p.Locales[DefaultLocale] = EmptyLocaleDocument()
	}
}

// Resolve returns the document for the requested locale, falling back
// to English when the locale has no document. The second return is the
// locale code actually resolved, and ok reports whether any document
// was found (false only for a page that bypassed Normalize).
func (p *Page) Resolve(locale string) (LocaleDocument, string, bool) {
	if doc, ok := p.Locales[locale]; ok {
		return doc, locale, true
	}
	if doc, ok := p.Locales[DefaultLocale]; ok {
		return doc, DefaultLocale, true
	}
	return LocaleDocument{}, "", false
}
