// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package schema

import "blockpress/internal/models"

// Company maps a company card's props to a schema.org Organization.
// url and logo appear only when set; address and contactPoint appear
// when the nested object is present, each field included only if set.
func Company(props map[string]any, locale string) models.JSONLD {
	out := models.JSONLD{
		"@context":    context,
		"@type":       "Organization",
		"name":        str(props, "name"),
		"description": str(props, "description"),
	}

	setIf(out, "url", str(props, "url"))
	setIf(out, "logo", str(props, "logo"))

	if addr, ok := object(props, "address"); ok {
		address := models.JSONLD{"@type": "PostalAddress"}
		setIf(address, "streetAddress", str(addr, "streetAddress"))
		setIf(address, "addressLocality", str(addr, "addressLocality"))
		setIf(address, "postalCode", str(addr, "postalCode"))
		setIf(address, "addressCountry", str(addr, "addressCountry"))
		out["address"] = address
	}

	if contact, ok := object(props, "contactPoint"); ok {
		point := models.JSONLD{"@type": "ContactPoint"}
		setIf(point, "telephone", str(contact, "telephone"))
		setIf(point, "email", str(contact, "email"))
		out["contactPoint"] = point
	}

	return out
}
