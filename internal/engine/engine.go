// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine renders public pages from their block lists. Blocks
// are rendered in ascending order, kinds missing from the registry are
// skipped, and each JSON-LD object from the locale's SEO metadata is
// emitted as its own script tag ahead of the content.
package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"

	"blockpress/internal/blocks"
	"blockpress/internal/models"
)

// blockTemplates holds the compiled per-kind render templates. Parsed
// once at init; exec renders one named template into a buffer.
var blockTemplates = template.Must(template.New("blocks").Parse(`
{{define "text"}}<div class="prose max-w-none">{{.Body}}</div>{{end}}

{{define "image"}}<div class="my-4"><img src="{{.Src}}" alt="{{.Alt}}" class="max-w-full h-auto rounded"></div>{{end}}

{{define "button"}}<div class="my-4">{{if .Href}}<a href="{{.Href}}" class="inline-block"><span class="inline-block px-6 py-2 rounded transition {{.Class}}">{{.Text}}</span></a>{{else}}<span class="inline-block px-6 py-2 rounded transition {{.Class}}">{{.Text}}</span>{{end}}</div>{{end}}

{{define "companyCard"}}<div class="my-6 p-6 border rounded-lg bg-gray-50">
{{if .Logo}}<img src="{{.Logo}}" alt="{{.Name}}" class="h-16 mb-4">{{end}}
<h3 class="text-2xl font-bold mb-2">{{.Name}}</h3>
{{if .Description}}<p class="text-gray-700 mb-4">{{.Description}}</p>{{end}}
<div class="text-sm text-gray-600 mb-2">
{{if .Street}}<div>{{.Street}}</div>{{end}}
{{if and .PostalCode .Locality}}<div>{{.PostalCode}} {{.Locality}}</div>{{end}}
{{if .Country}}<div>{{.Country}}</div>{{end}}
</div>
<div class="text-sm text-gray-600">
{{if .Telephone}}<div>Phone: {{.Telephone}}</div>{{end}}
{{if .Email}}<div>Email: {{.Email}}</div>{{end}}
</div>
{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noopener noreferrer" class="text-blue-600 hover:underline mt-2 inline-block">Visit Website</a>{{end}}
</div>{{end}}

{{define "productCard"}}<div class="my-6 p-6 border rounded-lg">
{{if .Image}}<img src="{{.Image}}" alt="{{.Name}}" class="w-full h-64 object-cover rounded mb-4">{{end}}
<h3 class="text-2xl font-bold mb-2">{{.Name}}</h3>
{{if .Description}}<p class="text-gray-700 mb-4">{{.Description}}</p>{{end}}
{{if .Brand}}<p class="text-sm text-gray-600 mb-2">Brand: {{.Brand}}</p>{{end}}
{{if .Price}}<p class="text-2xl font-bold mb-2">{{.Price}}</p>{{end}}
{{if .Availability}}<span class="inline-block px-3 py-1 rounded text-sm {{.AvailabilityClass}}">{{.Availability}}</span>{{end}}
{{if .SKU}}<p class="text-xs text-gray-500 mt-2">SKU: {{.SKU}}</p>{{end}}
</div>{{end}}

{{define "article"}}<article class="my-6">
{{if .Image}}<img src="{{.Image}}" alt="{{.Headline}}" class="w-full h-64 object-cover rounded mb-4">{{end}}
<h1 class="text-4xl font-bold mb-4">{{.Headline}}</h1>
{{if .Description}}<p class="text-xl text-gray-700 mb-4">{{.Description}}</p>{{end}}
<div class="flex items-center gap-4 text-sm text-gray-600">
{{if .Author}}<span>By {{.Author}}</span>{{end}}
{{if .Published}}<span>Published: {{.Published}}</span>{{end}}
{{if .Modified}}<span>Updated: {{.Modified}}</span>{{end}}
</div>
</article>{{end}}

{{define "faq"}}<div class="my-6">
<h2 class="text-3xl font-bold mb-4">Frequently Asked Questions</h2>
<div class="space-y-2">
{{range .Items}}<details class="border rounded">
<summary class="px-4 py-3 font-medium cursor-pointer hover:bg-gray-50">{{.Question}}</summary>
{{if .Answer}}<div class="px-4 py-3 border-t bg-gray-50"><p class="text-gray-700">{{.Answer}}</p></div>{{end}}
</details>
{{end}}</div>
</div>{{end}}
`))

// pageShell wraps the rendered blocks in the public page document.
var pageShell = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
{{if .MetaDescription}}<meta name="description" content="{{.MetaDescription}}">{{end}}
{{range .Scripts}}{{.}}
{{end}}<script src="https://cdn.tailwindcss.com"></script>
</head>
<body>
<div class="min-h-screen p-8">
<div class="max-w-4xl mx-auto">
<h1 class="text-3xl font-bold mb-6">{{.Heading}}</h1>
{{range .Blocks}}<div>{{.}}</div>
{{end}}</div>
</div>
</body>
</html>
`))

// exec renders one named block template. A template error renders the
// block as absent rather than failing the page.
func exec(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := blockTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Warn("block template failed", "template", name, "error", err)
		return ""
	}
	return template.HTML(buf.String())
}

// Engine renders public pages against a block registry.
type Engine struct {
	registry *blocks.Registry
}

// New creates an engine bound to the given registry.
func New(registry *blocks.Registry) *Engine {
	return &Engine{registry: registry}
}

// RenderBlocks renders a block list for one locale. The list is sorted
// by Order ascending first, kinds absent from the registry are skipped,
// and blocks whose renderer produces no output are dropped.
func (e *Engine) RenderBlocks(list []models.Block, locale string) []template.HTML {
	sorted := blocks.Sorted(list)
	out := make([]template.HTML, 0, len(sorted))
	for _, b := range sorted {
		def, ok := e.registry.Get(b.Kind)
		if !ok {
			slog.Debug("skipping unregistered block kind", "kind", b.Kind, "block", b.ID)
			continue
		}
		if html := def.Render(b, locale); html != "" {
			out = append(out, html)
		}
	}
	return out
}

// RenderPage renders the full public view of a page for one locale,
// falling back to English when the locale has no document. Each entry
// in the document's jsonSchemas becomes its own ld+json script; an
// entry that fails to marshal is dropped, never fatal.
func (e *Engine) RenderPage(page *models.Page, locale string) ([]byte, error) {
	doc, resolved, ok := page.Resolve(locale)
	if !ok {
		return nil, fmt.Errorf("page %s has no renderable document", page.Slug)
	}

	scripts := make([]template.HTML, 0, len(doc.SEO.JSONSchemas))
	for _, s := range doc.SEO.JSONSchemas {
		if s == nil {
			continue
		}
		payload, err := json.Marshal(s)
		if err != nil {
			slog.Warn("json-ld marshal failed", "slug", page.Slug, "error", err)
			continue
		}
		scripts = append(scripts, template.HTML(
			`<script type="application/ld+json">`+string(payload)+`</script>`))
	}

	title := doc.SEO.Title
	if title == "" {
		title = doc.Title
	}
	if title == "" {
		title = "Page"
	}

	var buf bytes.Buffer
	err := pageShell.Execute(&buf, map[string]any{
		"Lang":            resolved,
		"Title":           title,
		"Heading":         doc.Title,
		"MetaDescription": doc.SEO.Description,
		"Scripts":         scripts,
		"Blocks":          e.RenderBlocks(doc.Content, resolved),
	})
	if err != nil {
		return nil, fmt.Errorf("render page %s: %w", page.Slug, err)
	}
	return buf.Bytes(), nil
}
