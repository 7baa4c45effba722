// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "paragraph",
			source: "Hello world",
			want:   []string{"<p>Hello world</p>"},
		},
		{
			name:   "emphasis",
			source: "some **bold** text",
			want:   []string{"<strong>bold</strong>"},
		},
		{
			name:   "heading",
			source: "## Section",
			want:   []string{"<h2>Section</h2>"},
		},
		{
			name:   "gfm table",
			source: "| a | b |\n|---|---|\n| 1 | 2 |",
			want:   []string{"<table>", "<td>1</td>"},
		},
		{
			name:   "gfm strikethrough",
			source: "~~gone~~",
			want:   []string{"<del>gone</del>"},
		},
		{
			name:   "typographer quotes",
			source: `"quoted"`,
			want:   []string{"&ldquo;quoted&rdquo;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML() error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output %q should contain %q", got, want)
				}
			}
		})
	}
}

// TestToHTML_BlocksRawHTML verifies that HTML embedded in Markdown is
// not passed through to the output.
func TestToHTML_BlocksRawHTML(t *testing.T) {
	got, err := ToHTML(`<script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML should not pass through, got %q", got)
	}
}

func TestToHTML_Empty(t *testing.T) {
	got, err := ToHTML("")
	if err != nil {
		t.Fatalf("ToHTML() error: %v", err)
	}
	if strings.TrimSpace(got) != "" {
		t.Errorf("empty source should produce no content, got %q", got)
	}
}
