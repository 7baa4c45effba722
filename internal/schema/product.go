// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import "blockpress/internal/models"

// Product maps a product card's props to a schema.org Product. An
// offers entry appears only when both price and currency are set;
// availability inside it is rewritten to the canonical schema.org URI.
func Product(props map[string]any, locale string) models.JSONLD {
	out := models.JSONLD{
		"@context":    context,
		"@type":       "Product",
		"name":        str(props, "name"),
		"description": str(props, "description"),
	}

	setIf(out, "image", str(props, "image"))

	price, hasPrice := num(props, "price")
	if currency := str(props, "currency"); hasPrice && currency != "" {
		offer := models.JSONLD{
			"@type":         "Offer",
			"price":         price,
			"priceCurrency": currency,
		}
		if availability := str(props, "availability"); availability != "" {
			offer["availability"] = context + "/" + availability
		}
		out["offers"] = offer
	}

	if brand := str(props, "brand"); brand != "" {
		out["brand"] = models.JSONLD{"@type": "Brand", "name": brand}
	}

	setIf(out, "sku", str(props, "sku"))

	return out
}
