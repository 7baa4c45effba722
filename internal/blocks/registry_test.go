// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"testing"

	"blockpress/internal/models"
)

// minimalDefs returns a definition per built-in kind with just labels,
// registered out of palette order on purpose.
func minimalDefs() []Definition {
	kinds := []models.BlockKind{
		models.BlockFAQ,
		models.BlockButton,
		models.BlockText,
		models.BlockArticle,
		models.BlockImage,
		models.BlockProductCard,
		models.BlockHeading,
		models.BlockCompanyCard,
	}
	defs := make([]Definition, len(kinds))
	for i, k := range kinds {
		defs[i] = Definition{Kind: k, Label: string(k)}
	}
	return defs
}

func TestRegistryPopulateAndGet(t *testing.T) {
	r := NewRegistry()
	r.Populate(minimalDefs())

	d, ok := r.Get(models.BlockHeading)
	if !ok {
		t.Fatal("heading should be registered")
	}
	if d.Kind != models.BlockHeading {
		t.Errorf("kind = %q, want heading", d.Kind)
	}

	if _, ok := r.Get("carousel"); ok {
		t.Error("unregistered kind should report ok=false")
	}
}

func TestRegistryPopulateFirstCallWins(t *testing.T) {
	r := NewRegistry()
	r.Populate([]Definition{{Kind: models.BlockText, Label: "First"}})
	r.Populate([]Definition{
		{Kind: models.BlockText, Label: "Second"},
		{Kind: models.BlockImage, Label: "Image"},
	})

	d, ok := r.Get(models.BlockText)
	if !ok || d.Label != "First" {
		t.Errorf("second Populate should be a no-op, got label %q", d.Label)
	}
	if _, ok := r.Get(models.BlockImage); ok {
		t.Error("second Populate should not register new kinds")
	}
}

func TestRegistryPaletteOrder(t *testing.T) {
	r := NewRegistry()
	r.Populate(minimalDefs())

	wantAll := []models.BlockKind{
		models.BlockText, models.BlockImage, models.BlockHeading, models.BlockButton,
		models.BlockCompanyCard, models.BlockProductCard, models.BlockArticle, models.BlockFAQ,
	}
	all := r.All()
	if len(all) != len(wantAll) {
		t.Fatalf("All() returned %d definitions, want %d", len(all), len(wantAll))
	}
	for i, want := range wantAll {
		if all[i].Kind != want {
			t.Errorf("All()[%d] = %q, want %q", i, all[i].Kind, want)
		}
	}

	basic := r.ByCategory(CategoryBasic)
	if len(basic) != 4 || basic[0].Kind != models.BlockText || basic[3].Kind != models.BlockButton {
		t.Error("basic palette order wrong")
	}
	seo := r.ByCategory(CategorySEO)
	if len(seo) != 4 || seo[0].Kind != models.BlockCompanyCard || seo[3].Kind != models.BlockFAQ {
		t.Error("seo palette order wrong")
	}
}

func TestRegistrySkipsUnregisteredPaletteKinds(t *testing.T) {
	r := NewRegistry()
	r.Populate([]Definition{
		{Kind: models.BlockText, Label: "Text"},
		{Kind: models.BlockFAQ, Label: "FAQ"},
	})

	all := r.All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d definitions, want 2", len(all))
	}
	if all[0].Kind != models.BlockText || all[1].Kind != models.BlockFAQ {
		t.Error("palette should list only registered kinds, basic first")
	}
}
