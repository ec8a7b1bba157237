package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	source := []byte(`---
title: Cookie Policy
lastUpdated: 2026-01-15
---

Intro text.

## Essential cookies

- one
- two

### Details

## Your *choices*

<script>alert(1)</script>
`)

	doc, err := NewParser().Convert(source)
	require.NoError(t, err)

	assert.Equal(t, "Cookie Policy", doc.Meta["title"])
	assert.Contains(t, doc.Meta, "lastUpdated")

	html := string(doc.HTML)
	assert.Contains(t, html, `<h2 id="essential-cookies">Essential cookies</h2>`)
	assert.Contains(t, html, "<li>one</li>")
	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "title: Cookie Policy")

	assert.Equal(t, []Heading{
		{Level: 2, ID: "essential-cookies", Text: "Essential cookies"},
		{Level: 3, ID: "details", Text: "Details"},
		{Level: 2, ID: "your-choices", Text: "Your choices"},
	}, doc.Headings)
}

func TestConvertWithoutFrontmatter(t *testing.T) {
	doc, err := NewParser().Convert([]byte("Plain text.\n"))
	require.NoError(t, err)

	assert.Empty(t, doc.Meta)
	assert.Empty(t, doc.Headings)
	assert.Contains(t, string(doc.HTML), "<p>Plain text.</p>")
}
