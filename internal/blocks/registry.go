// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package blocks implements the block registry and the composition
// operations on a locale's block list. The registry is an explicitly
// constructed lookup from block kind to its definition, populated once
// at startup and read-only thereafter.
package blocks

import (
	"html/template"

	"blockpress/internal/models"
)

// Category partitions block kinds into the two palette groups shown in
// the editor.
type Category string

const (
	CategoryBasic Category = "basic"
	CategorySEO   Category = "seo"
)

// Palette order per category. Hand-maintained — the editor shows kinds
// in this order, not registration order.
var (
	basicKinds = []models.BlockKind{
		models.BlockText,
		models.BlockImage,
		models.BlockHeading,
		models.BlockButton,
	}
	seoKinds = []models.BlockKind{
		models.BlockCompanyCard,
		models.BlockProductCard,
		models.BlockArticle,
		models.BlockFAQ,
	}
)

// RenderFunc produces the public HTML for one block in the given
// locale. An empty result means the block contributes nothing (missing
// required props render as absence, never as an error).
type RenderFunc func(b models.Block, locale string) template.HTML

// SchemaFunc generates the JSON-LD object for an SEO-bearing block's
// props. A nil result means no structured data for this block.
type SchemaFunc func(props map[string]any, locale string) models.JSONLD

// Definition pairs a block kind with its label, editor defaults,
// renderer, and optional structured-data generator.
type Definition struct {
	Kind         models.BlockKind
	Label        string
	Icon         string
	DefaultProps map[string]any
	Render       RenderFunc
	Schema       SchemaFunc
}

// Registry is the lookup table from block kind to definition. It is
// built once via Populate and passed by reference to every component
// that dispatches on block kind.
type Registry struct {
	defs      map[models.BlockKind]Definition
	populated bool
}

// NewRegistry returns an empty registry ready to be populated.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[models.BlockKind]Definition)}
}

// Populate registers the given definitions in bulk. The first call
// wins; subsequent calls are no-ops, which makes startup registration
// idempotent no matter how many components trigger it.
func (r *Registry) Populate(defs []Definition) {
	if r.populated {
		return
	}
	r.populated = true
	for _, d := range defs {
		r.defs[d.Kind] = d
	}
}

// Get returns the definition for a kind. ok is false for kinds that
// were never registered — callers treat those blocks as invisible, not
// as errors.
func (r *Registry) Get(kind models.BlockKind) (Definition, bool) {
	d, ok := r.defs[kind]
	return d, ok
}

// All returns every registered definition in palette order (basic
// kinds first, then SEO kinds).
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.defs))
	out = append(out, r.ByCategory(CategoryBasic)...)
	out = append(out, r.ByCategory(CategorySEO)...)
	return out
}

// ByCategory returns the registered definitions for one palette group
// in the fixed hand-maintained order. Kinds in the category list that
// were never registered are skipped.
func (r *Registry) ByCategory(cat Category) []Definition {
	kinds := basicKinds
	if cat == CategorySEO {
		kinds = seoKinds
	}
	out := make([]Definition, 0, len(kinds))
	for _, k := range kinds {
		if d, ok := r.defs[k]; ok {
			out = append(out, d)
		}
	}
	return out
}
