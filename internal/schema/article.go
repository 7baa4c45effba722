// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import "blockpress/internal/models"

// Article maps an article block's props to a schema.org Article. The
// author, when set, is wrapped as a Person entity.
func Article(props map[string]any, locale string) models.JSONLD {
	out := models.JSONLD{
		"@context":    context,
		"@type":       "Article",
		"headline":    str(props, "headline"),
		"description": str(props, "description"),
	}

	setIf(out, "image", str(props, "image"))

	if author := str(props, "author"); author != "" {
		out["author"] = models.JSONLD{"@type": "Person", "name": author}
	}

	setIf(out, "datePublished", str(props, "datePublished"))
	setIf(out, "dateModified", str(props, "dateModified"))

	return out
}
