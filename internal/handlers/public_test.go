// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"blockpress/internal/blocks"
	"blockpress/internal/engine"
	"blockpress/internal/store"
)

// newTestPublic wires the public handlers against a real page store in
// a temp directory, with no Valkey cache.
func newTestPublic(t *testing.T) (chi.Router, *store.PageStore) {
	t.Helper()
	dir := t.TempDir()

	locales, err := store.NewLocaleStore(dir)
	if err != nil {
		t.Fatalf("NewLocaleStore() error: %v", err)
	}
	pages, err := store.NewPageStore(dir, locales)
	if err != nil {
		t.Fatalf("NewPageStore() error: %v", err)
	}

	registry := blocks.NewRegistry()
	registry.Populate(engine.Builtin())
	public := NewPublic(engine.New(registry), pages, nil)

	r := chi.NewRouter()
	r.Get("/", public.Homepage)
	r.Get("/{locale}/{slug}", public.Page)
	return r, pages
}

func get(t *testing.T, r chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicPage(t *testing.T) {
	r, pages := newTestPublic(t)

	page, err := pages.Create("about")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	en := page.Locales["en"]
	en.Title = "About Us"
	page.Locales["en"] = en
	if err := pages.Save(page); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	w := get(t, r, "/en/about")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "About Us") {
		t.Error("rendered page should carry the english title")
	}
}

func TestPublicPageLocaleFallback(t *testing.T) {
	r, pages := newTestPublic(t)

	page, err := pages.Create("about")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	en := page.Locales["en"]
	en.Title = "About Us"
	page.Locales["en"] = en
	if err := pages.Save(page); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	// A locale with no document of its own renders the english one.
	w := get(t, r, "/de/about")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `lang="en"`) {
		t.Error("fallback rendering should be marked english")
	}
}

func TestPublicPageNotFound(t *testing.T) {
	r, _ := newTestPublic(t)

	if w := get(t, r, "/en/missing"); w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestHomepage(t *testing.T) {
	r, pages := newTestPublic(t)

	t.Run("welcome fallback without a home page", func(t *testing.T) {
		w := get(t, r, "/")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "BlockPress") {
			t.Error("fallback should show the product name")
		}
		if !strings.Contains(body, "/admin/login") {
			t.Error("fallback should link to the admin panel")
		}
	})

	t.Run("redirects when a home page exists", func(t *testing.T) {
		if _, err := pages.Create("home"); err != nil {
			t.Fatalf("Create() error: %v", err)
		}
		w := get(t, r, "/")
		if w.Code != http.StatusFound {
			t.Fatalf("status = %d, want 302", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/en/home" {
			t.Errorf("Location = %q, want /en/home", loc)
		}
	})
}
