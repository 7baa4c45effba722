package handlers

import (
	"strings"
	"unicode/utf8"

	"blockpress/internal/slug"
)

// Validation limits for page and locale document fields.
const (
	maxSlugLen     = 300
	maxTitleLen    = 300
	maxSEOTitleLen = 300
	maxSEODescLen  = 500
)

// validateSlug checks a page slug and returns the first error found.
func validateSlug(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "Slug is required."
	}
	if utf8.RuneCountInString(s) > maxSlugLen {
		return "Slug is too long (max 300 characters)."
	}
	if !slug.Valid(s) {
		return "Slug must contain only lowercase letters, digits, and hyphens."
	}
	return ""
}

// validateLocaleDoc checks locale document string fields and returns the
// first error found.
func validateLocaleDoc(title, seoTitle, seoDesc string) string {
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(seoTitle) > maxSEOTitleLen {
		return "SEO title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(seoDesc) > maxSEODescLen {
		return "SEO description is too long (max 500 characters)."
	}
	return ""
}
