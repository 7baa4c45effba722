// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"blockpress/internal/models"
)

// ErrSlugTaken is returned by Create when a page with the requested
// slug already exists. Slug uniqueness is enforced at creation time.
var ErrSlugTaken = errors.New("slug already taken")

// PageStore persists pages as one JSON document per page under
// <data>/pages/<id>.json. Every page read or written passes through
// Normalize, so callers can rely on the English document existing.
type PageStore struct {
	dir     string
	locales *LocaleStore
}

// NewPageStore creates a page store rooted at the data directory. The
// locale store supplies the configured locales when a page is created.
func NewPageStore(dataDir string, locales *LocaleStore) (*PageStore, error) {
	dir := filepath.Join(dataDir, "pages")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create pages dir: %w", err)
	}
	return &PageStore{dir: dir, locales: locales}, nil
}

func (s *PageStore) pagePath(id uuid.UUID) string {
	return filepath.Join(s.dir, id.String()+".json")
}

// List returns every page, sorted by UpdatedAt descending. Files that
// fail to parse are skipped with a warning rather than failing the
// whole listing.
func (s *PageStore) List() ([]models.Page, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	pages := make([]models.Page, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			slog.Warn("read page file failed", "file", entry.Name(), "error", err)
			continue
		}
		var page models.Page
		if err := json.Unmarshal(data, &page); err != nil {
			slog.Warn("parse page file failed", "file", entry.Name(), "error", err)
			continue
		}
		page.Normalize()
		pages = append(pages, page)
	}

	sort.Slice(pages, func(i, j int) bool {
		return pages[i].UpdatedAt.After(pages[j].UpdatedAt)
	})
	return pages, nil
}

// Get retrieves a page by its UUID. Returns nil if not found.
func (s *PageStore) Get(id uuid.UUID) (*models.Page, error) {
	data, err := os.ReadFile(s.pagePath(id))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", id, err)
	}

	page := &models.Page{}
	if err := json.Unmarshal(data, page); err != nil {
		return nil, fmt.Errorf("parse page %s: %w", id, err)
	}
	page.Normalize()
	return page, nil
}

// GetBySlug retrieves a page by its public slug. Returns nil if no
// page carries the slug.
func (s *PageStore) GetBySlug(slug string) (*models.Page, error) {
	pages, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range pages {
		if pages[i].Slug == slug {
			return &pages[i], nil
		}
	}
	return nil, nil
}

// Create makes a new page for the slug: an empty English document
// first, then one deep copy of it per other configured locale, so all
// locales start identical and diverge independently. A taken slug
// returns ErrSlugTaken.
func (s *PageStore) Create(slug string) (*models.Page, error) {
	existing, err := s.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlugTaken
	}

	locales, err := s.locales.Get()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	page := &models.Page{
		ID:        uuid.New(),
		Slug:      slug,
		Locales:   map[string]models.LocaleDocument{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	page.Locales[models.DefaultLocale] = models.EmptyLocaleDocument()
	english := page.Locales[models.DefaultLocale]
	for _, l := range locales {
		if l.Code == models.DefaultLocale {
			continue
		}
		page.Locales[l.Code] = english.Clone()
	}

	if err := s.Save(page); err != nil {
		return nil, err
	}
	return page, nil
}

// Save persists the page as a whole-document overwrite and bumps
// UpdatedAt. The English-document invariant is re-established first.
func (s *PageStore) Save(page *models.Page) error {
	page.Normalize()
	page.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal page %s: %w", page.ID, err)
	}
	if err := os.WriteFile(s.pagePath(page.ID), data, 0o644); err != nil {
		return fmt.Errorf("write page %s: %w", page.ID, err)
	}
	return nil
}

// Delete removes a page by ID. Deleting a page that does not exist is
// a no-op.
func (s *PageStore) Delete(id uuid.UUID) error {
	err := os.Remove(s.pagePath(id))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete page %s: %w", id, err)
	}
	return nil
}

// LocalePatch is a partial update to one locale's document. Nil fields
// are left untouched.
type LocalePatch struct {
	Title   *string         `json:"title,omitempty"`
	Content *[]models.Block `json:"content,omitempty"`
	SEO     *models.SEO     `json:"seo,omitempty"`
}

// UpdateLocale applies a partial update to one locale of a page and
// saves it. A locale that has no document yet is seeded from the
// English document first.
func (s *PageStore) UpdateLocale(id uuid.UUID, locale string, patch LocalePatch) (*models.Page, error) {
	page, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, nil
	}

	doc, ok := page.Locales[locale]
	if !ok {
		doc = page.Locales[models.DefaultLocale].Clone()
	}
	if patch.Title != nil {
		doc.Title = *patch.Title
	}
	if patch.Content != nil {
		doc.Content = *patch.Content
	}
	if patch.SEO != nil {
		doc.SEO = *patch.SEO
	}
	page.Locales[locale] = doc

	if err := s.Save(page); err != nil {
		return nil, err
	}
	return page, nil
}
