// Package web provides embedded static assets (CSS, JS) for the admin
// interface and the block editor. In development, templates load CSS from
// CDN; in production, the compiled stylesheet is embedded here and served
// at /static/.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree. In Docker builds, this
// includes the compiled TailwindCSS stylesheet; the editor script is
// always present.
//
//go:embed all:static
var StaticFS embed.FS
