// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blocks

import (
	"sort"

	"github.com/google/uuid"

	"blockpress/internal/models"
)

// New creates a block of the given kind at the given order with a fresh
// unique id and empty props.
func New(kind models.BlockKind, order int) models.Block {
	return models.Block{
		ID:    uuid.NewString(),
		Kind:  kind,
		Props: map[string]any{},
		Order: order,
	}
}

// Reorder moves the element at from to position to and returns a new
// list with every Order field rewritten to match its position. Empty
// and single-element lists come back unchanged, as do out-of-range
// indexes.
func Reorder(list []models.Block, from, to int) []models.Block {
	if len(list) < 2 || from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return list
	}
	out := make([]models.Block, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	moved := list[from]
	out = append(out[:to], append([]models.Block{moved}, out[to:]...)...)
	return renumber(out)
}

// Remove deletes the block with the given id and renumbers the
// remaining Order values densely. Unknown ids return the input list.
func Remove(list []models.Block, id string) []models.Block {
	idx := -1
	for i, b := range list {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return list
	}
	out := make([]models.Block, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return renumber(out)
}

// MergeProps shallow-merges partial into the block's props and returns
// the updated block. Keys absent from partial are left untouched.
func MergeProps(b models.Block, partial map[string]any) models.Block {
	merged := make(map[string]any, len(b.Props)+len(partial))
	for k, v := range b.Props {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	b.Props = merged
	return b
}

// Sorted returns a copy of the list sorted by Order ascending. The sort
// is stable, so blocks that transiently share an Order value keep their
// original relative position.
func Sorted(list []models.Block) []models.Block {
	out := make([]models.Block, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// renumber rewrites Order to match positional index 0..N-1.
func renumber(list []models.Block) []models.Block {
	for i := range list {
		list[i].Order = i
	}
	return list
}
