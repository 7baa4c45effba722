// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"fmt"
	"html/template"
	"strings"

	"blockpress/internal/blocks"
	"blockpress/internal/markdown"
	"blockpress/internal/models"
	"blockpress/internal/schema"
)

// Builtin returns the definitions for every built-in block kind, in the
// order the editor palette shows them. Populate a fresh registry with
// this at startup.
func Builtin() []blocks.Definition {
	return []blocks.Definition{
		{
			Kind:         models.BlockText,
			Label:        "Text",
			Icon:         "text",
			DefaultProps: map[string]any{"text": ""},
			Render:       renderText,
		},
		{
			Kind:         models.BlockImage,
			Label:        "Image",
			Icon:         "image",
			DefaultProps: map[string]any{"src": "", "alt": ""},
			Render:       renderImage,
		},
		{
			Kind:         models.BlockHeading,
			Label:        "Heading",
			Icon:         "heading",
			DefaultProps: map[string]any{"text": "", "level": "h1"},
			Render:       renderHeading,
		},
		{
			Kind:         models.BlockButton,
			Label:        "Button",
			Icon:         "button",
			DefaultProps: map[string]any{"text": "", "href": "", "variant": "primary"},
			Render:       renderButton,
		},
		{
			Kind:  models.BlockCompanyCard,
			Label: "Company Card",
			Icon:  "building",
			DefaultProps: map[string]any{
				"name":         "",
				"description":  "",
				"url":          "",
				"logo":         "",
				"address":      map[string]any{},
				"contactPoint": map[string]any{},
			},
			Render: renderCompanyCard,
			Schema: schema.Company,
		},
		{
			Kind:  models.BlockProductCard,
			Label: "Product Card",
			Icon:  "tag",
			DefaultProps: map[string]any{
				"name":         "",
				"description":  "",
				"image":        "",
				"price":        0.0,
				"currency":     "",
				"availability": "InStock",
				"brand":        "",
				"sku":          "",
			},
			Render: renderProductCard,
			Schema: schema.Product,
		},
		{
			Kind:  models.BlockArticle,
			Label: "Article",
			Icon:  "file-text",
			DefaultProps: map[string]any{
				"headline":      "",
				"description":   "",
				"image":         "",
				"author":        "",
				"datePublished": "",
				"dateModified":  "",
			},
			Render: renderArticle,
			Schema: schema.Article,
		},
		{
			Kind:         models.BlockFAQ,
			Label:        "FAQ",
			Icon:         "help-circle",
			DefaultProps: map[string]any{"items": []any{}},
			Render:       renderFAQ,
			Schema:       schema.FAQ,
		},
	}
}

// prop readers — block props are stored untyped and consumed typed here.

func strProp(b models.Block, key string) string {
	s, _ := b.Props[key].(string)
	return s
}

func numProp(b models.Block, key string) (float64, bool) {
	switch v := b.Props[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func mapProp(b models.Block, key string) map[string]any {
	m, _ := b.Props[key].(map[string]any)
	return m
}

func strKey(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

// renderText converts the block's Markdown text to HTML. Empty text
// renders nothing.
func renderText(b models.Block, locale string) template.HTML {
	text := strProp(b, "text")
	if strings.TrimSpace(text) == "" {
		return ""
	}
	body, err := markdown.ToHTML(text)
	if err != nil {
		return ""
	}
	return exec("text", map[string]any{"Body": template.HTML(body)})
}

func renderImage(b models.Block, locale string) template.HTML {
	src := strProp(b, "src")
	if src == "" {
		return ""
	}
	return exec("image", map[string]any{"Src": src, "Alt": strProp(b, "alt")})
}

// headingClasses maps allowed heading levels to their display classes.
// The level doubles as the tag name, so it is whitelisted here.
var headingClasses = map[string]string{
	"h1": "text-4xl font-bold my-4",
	"h2": "text-3xl font-bold my-3",
	"h3": "text-2xl font-semibold my-2",
	"h4": "text-xl font-semibold my-2",
}

func renderHeading(b models.Block, locale string) template.HTML {
	text := strProp(b, "text")
	if text == "" {
		return ""
	}
	level := strProp(b, "level")
	class, ok := headingClasses[level]
	if !ok {
		level, class = "h1", headingClasses["h1"]
	}
	return template.HTML(fmt.Sprintf("<%s class=%q>%s</%s>",
		level, class, template.HTMLEscapeString(text), level))
}

var buttonClasses = map[string]string{
	"primary":   "bg-blue-600 text-white hover:bg-blue-700",
	"secondary": "bg-gray-600 text-white hover:bg-gray-700",
	"outline":   "border-2 border-blue-600 text-blue-600 hover:bg-blue-50",
}

func renderButton(b models.Block, locale string) template.HTML {
	text := strProp(b, "text")
	if text == "" {
		return ""
	}
	class, ok := buttonClasses[strProp(b, "variant")]
	if !ok {
		class = buttonClasses["primary"]
	}
	return exec("button", map[string]any{
		"Text":  text,
		"Href":  strProp(b, "href"),
		"Class": class,
	})
}

func renderCompanyCard(b models.Block, locale string) template.HTML {
	name := strProp(b, "name")
	if name == "" {
		return ""
	}
	addr := mapProp(b, "address")
	contact := mapProp(b, "contactPoint")
	return exec("companyCard", map[string]any{
		"Name":        name,
		"Description": strProp(b, "description"),
		"URL":         strProp(b, "url"),
		"Logo":        strProp(b, "logo"),
		"Street":      strKey(addr, "streetAddress"),
		"Locality":    strKey(addr, "addressLocality"),
		"PostalCode":  strKey(addr, "postalCode"),
		"Country":     strKey(addr, "addressCountry"),
		"Telephone":   strKey(contact, "telephone"),
		"Email":       strKey(contact, "email"),
	})
}

// availabilityBadge maps the schema.org availability value to its
// display label and badge classes.
var availabilityBadge = map[string][2]string{
	"InStock":    {"In Stock", "bg-green-100 text-green-800"},
	"OutOfStock": {"Out of Stock", "bg-red-100 text-red-800"},
	"PreOrder":   {"Pre-Order", "bg-yellow-100 text-yellow-800"},
}

func renderProductCard(b models.Block, locale string) template.HTML {
	name := strProp(b, "name")
	if name == "" {
		return ""
	}
	data := map[string]any{
		"Name":        name,
		"Description": strProp(b, "description"),
		"Image":       strProp(b, "image"),
		"Brand":       strProp(b, "brand"),
		"SKU":         strProp(b, "sku"),
	}
	price, hasPrice := numProp(b, "price")
	if currency := strProp(b, "currency"); hasPrice && currency != "" {
		data["Price"] = fmt.Sprintf("%s %.2f", currency, price)
	}
	if badge, ok := availabilityBadge[strProp(b, "availability")]; ok {
		data["Availability"] = badge[0]
		data["AvailabilityClass"] = badge[1]
	}
	return exec("productCard", data)
}

func renderArticle(b models.Block, locale string) template.HTML {
	headline := strProp(b, "headline")
	if headline == "" {
		return ""
	}
	published := strProp(b, "datePublished")
	modified := strProp(b, "dateModified")
	if modified == published {
		modified = ""
	}
	return exec("article", map[string]any{
		"Headline":    headline,
		"Description": strProp(b, "description"),
		"Image":       strProp(b, "image"),
		"Author":      strProp(b, "author"),
		"Published":   published,
		"Modified":    modified,
	})
}

// faqEntry is one question/answer pair extracted for rendering.
type faqEntry struct {
	Question string
	Answer   string
}

func renderFAQ(b models.Block, locale string) template.HTML {
	raw, _ := b.Props["items"].([]any)
	entries := make([]faqEntry, 0, len(raw))
	for i, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		q := strKey(m, "question")
		if q == "" {
			q = fmt.Sprintf("Question %d", i+1)
		}
		entries = append(entries, faqEntry{Question: q, Answer: strKey(m, "answer")})
	}
	if len(entries) == 0 {
		return ""
	}
	return exec("faq", map[string]any{"Items": entries})
}
