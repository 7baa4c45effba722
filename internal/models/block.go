// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// BlockKind identifies which block behavior applies to a block instance.
// The set is closed — adding a kind means registering a new definition.
type BlockKind string

const (
	BlockText        BlockKind = "text"
	BlockImage       BlockKind = "image"
	BlockHeading     BlockKind = "heading"
	BlockButton      BlockKind = "button"
	BlockCompanyCard BlockKind = "companyCard"
	BlockProductCard BlockKind = "productCard"
	BlockArticle     BlockKind = "article"
	BlockFAQ         BlockKind = "faq"
)

// Block is one positioned, typed content unit within a locale's page
// content. Props is stored untyped and consumed typed at render and
// schema-generation time. Order is the block's position in the locale's
// content list and stays a dense 0-based sequence after every mutation.
type Block struct {
	ID    string         `json:"id"`
	Kind  BlockKind      `json:"kind"`
	Props map[string]any `json:"props"`
	Order int            `json:"order"`
}

// Clone returns a structural deep copy of the block. Props values are
// JSON-shaped (maps, slices, scalars), so edits to the copy never leak
// into the original, including through nested maps like address or
// FAQ item lists.
func (b Block) Clone() Block {
	b.Props = deepCopyMap(b.Props)
	return b
}

// deepCopyMap recursively copies a JSON-shaped map. Values that are not
// maps or slices are immutable JSON scalars and copied by assignment.
func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
