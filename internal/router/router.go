// Package router sets up all HTTP routes and middleware chains for the
// BlockPress server. It organizes routes into public, admin, and API
// groups with appropriate middleware stacks.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"blockpress/internal/handlers"
	"blockpress/internal/middleware"
	"blockpress/internal/session"
	"blockpress/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, api *handlers.API, public *handlers.Public, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.LoadSession(sessionStore))

	csrf := middleware.NewCSRF(secureCookies)

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Static assets (compiled CSS, editor JS).
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Admin routes — require authentication and CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		r.Use(csrf)

		// Auth pages — accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Get("/2fa/verify", auth.TwoFAVerifyPage)
			r.Post("/2fa/verify", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)
			r.Get("/dashboard", admin.Dashboard)

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", admin.PagesList)
				r.Post("/", admin.PageCreate)
				r.Get("/{id}", admin.PageEditor)
			})

			r.Get("/locales", admin.LocalesPage)
		})
	})

	// JSON API consumed by the block editor.
	r.Route("/api", func(r chi.Router) {
		r.Use(csrf)
		r.Use(middleware.RequireAuth)
		r.Use(middleware.Require2FA)

		r.Route("/pages", func(r chi.Router) {
			r.Get("/", api.ListPages)
			r.Post("/", api.CreatePage)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", api.GetPage)
				r.Put("/", api.UpdatePage)
				r.Delete("/", api.DeletePage)

				r.Route("/locales/{locale}", func(r chi.Router) {
					r.Patch("/", api.PatchLocale)
					r.Post("/blocks", api.PlaceBlock)
					r.Post("/blocks/reorder", api.ReorderBlocks)
					r.Delete("/blocks/{blockID}", api.DeleteBlock)
					r.Patch("/blocks/{blockID}", api.PatchBlock)
				})
			})
		})

		r.Get("/locales", api.ListLocales)
		r.Put("/locales", api.SaveLocales)
	})

	// Public routes — locale-prefixed pages rendered by the block engine.
	r.Get("/", public.Homepage)
	r.Get("/{locale}/{slug}", public.Page)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
