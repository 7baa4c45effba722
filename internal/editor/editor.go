// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package editor orchestrates content edits on a page: block placement
// and reordering, property edits, title and SEO changes, and the
// persistence round trip. Every content mutation regenerates the
// locale's structured data, so jsonSchemas always reflects the block
// list that will be rendered.
package editor

import (
	"fmt"

	"blockpress/internal/blocks"
	"blockpress/internal/models"
	"blockpress/internal/schema"
	"blockpress/internal/store"
)

// Editor applies edit operations to pages. All operations mutate the
// given page in memory; nothing touches disk until Save.
type Editor struct {
	registry *blocks.Registry
	pages    *store.PageStore
}

// New creates an editor bound to the block registry and page store.
func New(registry *blocks.Registry, pages *store.PageStore) *Editor {
	return &Editor{registry: registry, pages: pages}
}

// ensureLocale returns the locale's document, seeding it from the
// English document when the locale has none yet.
func ensureLocale(page *models.Page, locale string) models.LocaleDocument {
	page.Normalize()
	doc, ok := page.Locales[locale]
	if !ok {
		doc = page.Locales[models.DefaultLocale].Clone()
		page.Locales[locale] = doc
	}
	return doc
}

// refresh writes the document back and regenerates its structured data
// from the current block list.
func (e *Editor) refresh(page *models.Page, locale string, doc models.LocaleDocument) {
	doc.SEO.JSONSchemas = schema.ForBlocks(doc.Content, locale)
	page.Locales[locale] = doc
}

// Place appends a new block of the given kind to the end of the
// locale's content. The kind must be registered.
func (e *Editor) Place(page *models.Page, locale string, kind models.BlockKind) (models.Block, error) {
	if _, ok := e.registry.Get(kind); !ok {
		return models.Block{}, fmt.Errorf("unknown block kind %q", kind)
	}
	doc := ensureLocale(page, locale)
	block := blocks.New(kind, len(doc.Content))
	doc.Content = append(doc.Content, block)
	e.refresh(page, locale, doc)
	return block, nil
}

// Move reorders the locale's content, moving the block at index from
// to index to. Out-of-range indexes leave the list unchanged.
func (e *Editor) Move(page *models.Page, locale string, from, to int) {
	doc := ensureLocale(page, locale)
	doc.Content = blocks.Reorder(doc.Content, from, to)
	e.refresh(page, locale, doc)
}

// Remove deletes the block with the given id from the locale's content
// and renumbers the remainder. Unknown ids are a no-op.
func (e *Editor) Remove(page *models.Page, locale string, blockID string) {
	doc := ensureLocale(page, locale)
	doc.Content = blocks.Remove(doc.Content, blockID)
	e.refresh(page, locale, doc)
}

// UpdateProps shallow-merges partial into the identified block's
// props. Unknown ids are a no-op.
func (e *Editor) UpdateProps(page *models.Page, locale string, blockID string, partial map[string]any) {
	doc := ensureLocale(page, locale)
	for i, b := range doc.Content {
		if b.ID == blockID {
			doc.Content[i] = blocks.MergeProps(b, partial)
			break
		}
	}
	e.refresh(page, locale, doc)
}

// SetTitle updates the locale's page title.
func (e *Editor) SetTitle(page *models.Page, locale, title string) {
	doc := ensureLocale(page, locale)
	doc.Title = title
	page.Locales[locale] = doc
}

// SetSEO updates the locale's SEO title and description. The
// jsonSchemas list is content-derived and left untouched.
func (e *Editor) SetSEO(page *models.Page, locale, title, description string) {
	doc := ensureLocale(page, locale)
	doc.SEO.Title = title
	doc.SEO.Description = description
	page.Locales[locale] = doc
}

// Save persists the page as one whole-document overwrite. On failure
// the in-memory page is untouched, so the caller can retry without
// losing edits.
func (e *Editor) Save(page *models.Page) error {
	return e.pages.Save(page)
}
