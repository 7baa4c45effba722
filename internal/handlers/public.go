// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"blockpress/internal/cache"
	"blockpress/internal/engine"
	"blockpress/internal/models"
	"blockpress/internal/store"
)

// Public serves the visitor-facing site. It checks the L2 Valkey page
// cache before invoking the block engine, and stores rendered results
// on miss.
type Public struct {
	engine    *engine.Engine
	pages     *store.PageStore
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil
// when Valkey is not configured.
func NewPublic(eng *engine.Engine, pages *store.PageStore, pageCache *cache.PageCache) *Public {
	return &Public{
		engine:    eng,
		pages:     pages,
		pageCache: pageCache,
	}
}

// Homepage redirects to the "home" page in the default locale when one
// exists, and otherwise shows a setup hint.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	home, err := p.pages.GetBySlug("home")
	if err != nil {
		slog.Error("find home page failed", "error", err)
	}
	if home != nil {
		http.Redirect(w, r, "/"+models.DefaultLocale+"/home", http.StatusFound)
		return
	}

	// Default fallback when no content exists yet (not cached).
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`<!DOCTYPE html>
<html><head><title>BlockPress</title>
<script src="https://cdn.tailwindcss.com"></script></head>
<body class="bg-gray-100 flex items-center justify-center min-h-screen">
<div class="text-center">
<h1 class="text-4xl font-bold text-gray-900"><span class="text-indigo-600">Block</span>Press</h1>
<p class="mt-2 text-gray-500">Your site is running. Create a page with slug &ldquo;home&rdquo; in the admin panel.</p>
<a href="/admin/login" class="mt-4 inline-block text-indigo-600 hover:text-indigo-800 text-sm">Go to Admin Panel</a>
</div></body></html>`))
}

// Page renders a public page by locale and slug. A locale the page has
// no document for falls back to English.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	locale := chi.URLParam(r, "locale")
	slugParam := chi.URLParam(r, "slug")

	// Check L2 cache first.
	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, cache.Key(locale, slugParam)); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	page, err := p.pages.GetBySlug(slugParam)
	if err != nil {
		slog.Error("find page by slug failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if page == nil {
		http.NotFound(w, r)
		return
	}

	rendered, err := p.engine.RenderPage(page, locale)
	if err != nil {
		slog.Error("render page failed", "error", err, "slug", slugParam, "locale", locale)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Store in L2 cache.
	if p.pageCache != nil {
		p.pageCache.Set(ctx, cache.Key(locale, slugParam), rendered)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(rendered)
}
