// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers: the JSON pages API used by
// the block editor, the admin HTML pages, and the public renderer.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blockpress/internal/cache"
	"blockpress/internal/editor"
	"blockpress/internal/models"
	"blockpress/internal/store"
)

// API groups the JSON endpoints under /api. The block editor frontend is
// its only intended consumer; every response body is JSON.
type API struct {
	pages     *store.PageStore
	locales   *store.LocaleStore
	editor    *editor.Editor
	pageCache *cache.PageCache
}

// NewAPI creates a new API handler group. pageCache may be nil when
// Valkey is not configured; invalidation is then a no-op.
func NewAPI(pages *store.PageStore, locales *store.LocaleStore, ed *editor.Editor, pageCache *cache.PageCache) *API {
	return &API{
		pages:     pages,
		locales:   locales,
		editor:    ed,
		pageCache: pageCache,
	}
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError sends a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// pathID parses the {id} URL parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	return id, err == nil
}

// invalidate drops cached renders for a slug across all locales.
func (a *API) invalidate(r *http.Request, slug string) {
	if a.pageCache != nil {
		a.pageCache.InvalidateSlug(r.Context(), slug)
	}
}

// ListPages returns every page, most recently updated first.
func (a *API) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := a.pages.List()
	if err != nil {
		slog.Error("list pages failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list pages")
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

// CreatePage creates a new page from {"slug": "..."}. Every configured
// locale is seeded with an empty document cloned from English.
func (a *API) CreatePage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateSlug(body.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	page, err := a.pages.Create(body.Slug)
	if errors.Is(err, store.ErrSlugTaken) {
		writeError(w, http.StatusConflict, "a page with this slug already exists")
		return
	}
	if err != nil {
		slog.Error("create page failed", "error", err, "slug", body.Slug)
		writeError(w, http.StatusInternalServerError, "could not create page")
		return
	}
	writeJSON(w, http.StatusCreated, page)
}

// GetPage returns one page by ID.
func (a *API) GetPage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid page id")
		return
	}
	page, err := a.pages.Get(id)
	if err != nil {
		slog.Error("get page failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "could not load page")
		return
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// UpdatePage overwrites a page document wholesale. The body's id, when
// present, must match the path id.
func (a *API) UpdatePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid page id")
		return
	}

	var body models.Page
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.ID != uuid.Nil && body.ID != id {
		writeError(w, http.StatusBadRequest, "body id does not match path id")
		return
	}

	existing, err := a.pages.Get(id)
	if err != nil {
		slog.Error("get page failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "could not load page")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	if body.Slug == "" {
		body.Slug = existing.Slug
	}
	if msg := validateSlug(body.Slug); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	// A slug change must not collide with another page.
	if body.Slug != existing.Slug {
		other, err := a.pages.GetBySlug(body.Slug)
		if err != nil {
			slog.Error("slug lookup failed", "error", err, "slug", body.Slug)
			writeError(w, http.StatusInternalServerError, "could not update page")
			return
		}
		if other != nil && other.ID != id {
			writeError(w, http.StatusConflict, "a page with this slug already exists")
			return
		}
	}

	body.ID = id
	body.CreatedAt = existing.CreatedAt
	if err := a.pages.Save(&body); err != nil {
		slog.Error("save page failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "could not save page")
		return
	}

	a.invalidate(r, existing.Slug)
	if body.Slug != existing.Slug {
		a.invalidate(r, body.Slug)
	}
	writeJSON(w, http.StatusOK, &body)
}

// DeletePage removes a page. Deleting a page that does not exist still
// returns 204.
func (a *API) DeletePage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid page id")
		return
	}

	// Look up the slug first so cached renders can be dropped.
	page, err := a.pages.Get(id)
	if err != nil {
		slog.Error("get page failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "could not delete page")
		return
	}

	if err := a.pages.Delete(id); err != nil {
		slog.Error("delete page failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "could not delete page")
		return
	}

	if page != nil {
		a.invalidate(r, page.Slug)
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListLocales returns the configured locales, English first.
func (a *API) ListLocales(w http.ResponseWriter, r *http.Request) {
	locales, err := a.locales.Get()
	if err != nil {
		slog.Error("get locales failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load locales")
		return
	}
	writeJSON(w, http.StatusOK, locales)
}

// SaveLocales replaces the locale configuration. English is forced back
// to the front as the default on read.
func (a *API) SaveLocales(w http.ResponseWriter, r *http.Request) {
	var body []models.LocaleConfig
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	for _, lc := range body {
		if lc.Code == "" || lc.Name == "" {
			writeError(w, http.StatusBadRequest, "locale code and name are required")
			return
		}
	}
	if err := a.locales.Save(body); err != nil {
		slog.Error("save locales failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not save locales")
		return
	}

	locales, err := a.locales.Get()
	if err != nil {
		slog.Error("get locales failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not load locales")
		return
	}
	writeJSON(w, http.StatusOK, locales)
}

// loadPageForEdit resolves the {id} parameter to a page, writing the
// appropriate error response when it cannot.
func (a *API) loadPageForEdit(w http.ResponseWriter, r *http.Request) *models.Page {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid page id")
		return nil
	}
	page, err := a.pages.Get(id)
	if err != nil {
		slog.Error("get page failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "could not load page")
		return nil
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return nil
	}
	return page
}

// savePageForEdit persists an edited page, invalidates its cached
// renders, and returns the updated document.
func (a *API) savePageForEdit(w http.ResponseWriter, r *http.Request, page *models.Page) {
	if err := a.editor.Save(page); err != nil {
		slog.Error("save page failed", "error", err, "id", page.ID)
		writeError(w, http.StatusInternalServerError, "could not save page")
		return
	}
	a.invalidate(r, page.Slug)
	writeJSON(w, http.StatusOK, page)
}

// PlaceBlock appends a new block of the requested kind to one locale's
// document and persists the page.
func (a *API) PlaceBlock(w http.ResponseWriter, r *http.Request) {
	page := a.loadPageForEdit(w, r)
	if page == nil {
		return
	}
	locale := chi.URLParam(r, "locale")

	var body struct {
		Kind models.BlockKind `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := a.editor.Place(page, locale, body.Kind); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	a.savePageForEdit(w, r, page)
}

// ReorderBlocks moves a block from one position to another within one
// locale's document.
func (a *API) ReorderBlocks(w http.ResponseWriter, r *http.Request) {
	page := a.loadPageForEdit(w, r)
	if page == nil {
		return
	}
	locale := chi.URLParam(r, "locale")

	var body struct {
		From int `json:"from"`
		To   int `json:"to"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a.editor.Move(page, locale, body.From, body.To)
	a.savePageForEdit(w, r, page)
}

// DeleteBlock removes a block from one locale's document. Unknown block
// IDs are a no-op; the page is persisted either way.
func (a *API) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	page := a.loadPageForEdit(w, r)
	if page == nil {
		return
	}
	locale := chi.URLParam(r, "locale")
	blockID := chi.URLParam(r, "blockID")

	a.editor.Remove(page, locale, blockID)
	a.savePageForEdit(w, r, page)
}

// PatchBlock shallow-merges a partial props object into one block.
func (a *API) PatchBlock(w http.ResponseWriter, r *http.Request) {
	page := a.loadPageForEdit(w, r)
	if page == nil {
		return
	}
	locale := chi.URLParam(r, "locale")
	blockID := chi.URLParam(r, "blockID")

	var props map[string]any
	if err := json.NewDecoder(r.Body).Decode(&props); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	a.editor.UpdateProps(page, locale, blockID, props)
	a.savePageForEdit(w, r, page)
}

// PatchLocale applies a partial update to one locale's title, content,
// or SEO fields. Absent fields are left untouched.
func (a *API) PatchLocale(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid page id")
		return
	}
	locale := chi.URLParam(r, "locale")

	var patch store.LocalePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	var title, seoTitle, seoDesc string
	if patch.Title != nil {
		title = *patch.Title
	}
	if patch.SEO != nil {
		seoTitle, seoDesc = patch.SEO.Title, patch.SEO.Description
	}
	if msg := validateLocaleDoc(title, seoTitle, seoDesc); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	page, err := a.pages.UpdateLocale(id, locale, patch)
	if err != nil {
		slog.Error("update locale failed", "error", err, "id", id, "locale", locale)
		writeError(w, http.StatusInternalServerError, "could not update page")
		return
	}
	if page == nil {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}

	a.invalidate(r, page.Slug)
	writeJSON(w, http.StatusOK, page)
}
