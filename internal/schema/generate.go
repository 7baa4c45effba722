// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import (
	"log/slog"

	"blockpress/internal/models"
)

// generators maps each SEO-bearing block kind to its generator. Kinds
// absent from this table contribute no structured data.
var generators = map[models.BlockKind]func(map[string]any, string) models.JSONLD{
	models.BlockCompanyCard: Company,
	models.BlockProductCard: Product,
	models.BlockArticle:     Article,
	models.BlockFAQ:         FAQ,
}

// ForBlocks generates the JSON-LD objects for a locale's block list, in
// block-list order. Non-SEO kinds are skipped, and a generator that
// panics or returns nil contributes nothing — generation failure is
// never fatal to the page.
func ForBlocks(list []models.Block, locale string) []models.JSONLD {
	out := make([]models.JSONLD, 0, len(list))
	for _, b := range list {
		gen, ok := generators[b.Kind]
		if !ok {
			continue
		}
		if s := generate(gen, b, locale); s != nil {
			out = append(out, s)
		}
	}
	return out
}

// generate runs one generator, absorbing panics from malformed props.
func generate(gen func(map[string]any, string) models.JSONLD, b models.Block, locale string) (out models.JSONLD) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Warn("schema generation failed", "kind", b.Kind, "block", b.ID, "error", rec)
			out = nil
		}
	}()
	return gen(b.Props, locale)
}
