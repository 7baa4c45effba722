// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import "blockpress/internal/models"

// FAQ maps a FAQ block's props to a schema.org FAQPage: one Question
// per item, each wrapping an acceptedAnswer Answer. Empty items yield
// an empty (non-nil) mainEntity so the key still serializes as [].
func FAQ(props map[string]any, locale string) models.JSONLD {
	entries := items(props, "items")
	mainEntity := make([]models.JSONLD, 0, len(entries))
	for _, entry := range entries {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		mainEntity = append(mainEntity, models.JSONLD{
			"@type": "Question",
			"name":  str(item, "question"),
			"acceptedAnswer": models.JSONLD{
				"@type": "Answer",
				"text":  str(item, "answer"),
			},
		})
	}

	return models.JSONLD{
		"@context":   context,
		"@type":      "FAQPage",
		"mainEntity": mainEntity,
	}
}
