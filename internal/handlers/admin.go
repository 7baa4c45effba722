// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blockpress/internal/blocks"
	"blockpress/internal/render"
	"blockpress/internal/slug"
	"blockpress/internal/store"
)

// Admin groups the HTML pages of the admin panel: dashboard, page list,
// the block editor shell, and locale settings.
type Admin struct {
	renderer  *render.Renderer
	registry  *blocks.Registry
	pages     *store.PageStore
	locales   *store.LocaleStore
	userStore *store.UserStore
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, registry *blocks.Registry, pages *store.PageStore, locales *store.LocaleStore, userStore *store.UserStore) *Admin {
	return &Admin{
		renderer:  renderer,
		registry:  registry,
		pages:     pages,
		locales:   locales,
		userStore: userStore,
	}
}

// Dashboard shows site-wide counts.
func (h *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	pages, err := h.pages.List()
	if err != nil {
		slog.Error("list pages failed", "error", err)
	}
	locales, err := h.locales.Get()
	if err != nil {
		slog.Error("get locales failed", "error", err)
	}
	userCount, err := h.userStore.Count()
	if err != nil {
		slog.Error("count users failed", "error", err)
	}

	h.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"PageCount":   len(pages),
			"LocaleCount": len(locales),
			"UserCount":   userCount,
		},
	})
}

// PagesList shows all pages and the create form.
func (h *Admin) PagesList(w http.ResponseWriter, r *http.Request) {
	h.renderPagesList(w, r, "")
}

func (h *Admin) renderPagesList(w http.ResponseWriter, r *http.Request, errMsg string) {
	pages, err := h.pages.List()
	if err != nil {
		slog.Error("list pages failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{"Pages": pages}
	if errMsg != "" {
		data["Error"] = errMsg
	}
	h.renderer.Page(w, r, "pages_list", &render.PageData{
		Title:   "Pages",
		Section: "pages",
		Data:    data,
	})
}

// PageCreate handles the create form: the submitted slug is normalized
// before the page is created, then the editor opens.
func (h *Admin) PageCreate(w http.ResponseWriter, r *http.Request) {
	s := slug.Generate(r.FormValue("slug"))
	if msg := validateSlug(s); msg != "" {
		h.renderPagesList(w, r, msg)
		return
	}

	page, err := h.pages.Create(s)
	if errors.Is(err, store.ErrSlugTaken) {
		h.renderPagesList(w, r, "A page with this slug already exists.")
		return
	}
	if err != nil {
		slog.Error("create page failed", "error", err, "slug", s)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin/pages/"+page.ID.String(), http.StatusSeeOther)
}

// PageEditor renders the block editor shell for one page. The editor
// frontend loads and mutates the page through the JSON API.
func (h *Admin) PageEditor(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	page, err := h.pages.Get(id)
	if err != nil {
		slog.Error("get page failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}

	locales, err := h.locales.Get()
	if err != nil {
		slog.Error("get locales failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, r, "editor", &render.PageData{
		Title:   "Edit " + page.Slug,
		Section: "pages",
		Data: map[string]any{
			"Page":        page,
			"Locales":     locales,
			"BasicBlocks": h.registry.ByCategory(blocks.CategoryBasic),
			"SEOBlocks":   h.registry.ByCategory(blocks.CategorySEO),
		},
	})
}

// LocalesPage shows the configured locales.
func (h *Admin) LocalesPage(w http.ResponseWriter, r *http.Request) {
	locales, err := h.locales.Get()
	if err != nil {
		slog.Error("get locales failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, r, "locales", &render.PageData{
		Title:   "Locales",
		Section: "locales",
		Data:    map[string]any{"Locales": locales},
	})
}
