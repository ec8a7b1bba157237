package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogDecodesUpstreamShape(t *testing.T) {
	data := []byte(`{
		"_id": "65f1",
		"title": "Studying in Germany",
		"coverImage": "https://cdn.example.com/de.jpg",
		"author": {"username": "amara"},
		"createdAt": "2024-03-14T09:30:00.000Z",
		"content": [{"id": "1", "type": "h2", "content": "Why Germany?"}]
	}`)

	var blog Blog
	require.NoError(t, json.Unmarshal(data, &blog))

	assert.Equal(t, "65f1", blog.ID)
	assert.Equal(t, "amara", blog.AuthorName())
	assert.True(t, time.Date(2024, 3, 14, 9, 30, 0, 0, time.UTC).Equal(blog.CreatedAt))
	require.Len(t, blog.Content, 1)
	assert.Equal(t, BlockHeading2, blog.Content[0].Type)
}

func TestBlogAcceptsPlainIDAndStringAuthor(t *testing.T) {
	var blog Blog
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b2","title":"T","author":"Ada","createdAt":"not a date"}`), &blog))

	assert.Equal(t, "b2", blog.ID)
	assert.Equal(t, "Ada", blog.Author.Username)
	assert.True(t, blog.CreatedAt.IsZero())

	blog.Author = Author{}
	assert.Equal(t, "Pathway Team", blog.AuthorName())
}

func TestGroupBlocks(t *testing.T) {
	blocks := []BlogBlock{
		{ID: "1", Type: BlockParagraph},
		{ID: "2", Type: BlockBulletList},
		{ID: "3", Type: BlockBulletList},
		{ID: "4", Type: BlockNumberedList},
		{ID: "5", Type: BlockBulletList},
		{ID: "6", Type: BlockDivider},
	}

	groups := GroupBlocks(blocks)

	require.Len(t, groups, 5)
	assert.Equal(t, BlockParagraph, groups[0].Type)
	assert.Equal(t, BlockBulletList, groups[1].Type)
	assert.Len(t, groups[1].Blocks, 2)
	assert.Equal(t, BlockNumberedList, groups[2].Type)
	assert.Len(t, groups[2].Blocks, 1)
	assert.Equal(t, "5", groups[3].Blocks[0].ID)
	assert.Equal(t, BlockDivider, groups[4].Type)
}

func TestProgrammeBlocks(t *testing.T) {
	data := []byte(`{
		"_id": "p1",
		"title": "Foundation Year",
		"description": "A one year bridge into undergraduate study at a partner university abroad",
		"content": [
			{"type": "header", "content": "Overview"},
			{"type": "image", "content": {"url": "https://cdn.example.com/p.jpg", "caption": "Campus"}},
			{"type": "features", "content": ["Small classes", {"title": "Visa support", "description": "End to end"}]},
			{"type": "testimonial", "content": {"quote": "Life changing", "author": "Kofi", "role": "Alumnus"}},
			{"type": "certification", "content": {"title": "Accredited", "description": "By the board"}}
		],
		"form": {"sections": [{"id": "s1", "title": "About you", "fields": []}]}
	}`)

	var p Programme
	require.NoError(t, json.Unmarshal(data, &p))

	assert.Equal(t, "p1", p.ID)
	assert.True(t, p.HasForm())
	assert.Equal(t, "Overview", p.Content[0].Text())
	assert.Equal(t, ImageContent{URL: "https://cdn.example.com/p.jpg", Caption: "Campus"}, p.Content[1].Image())
	assert.Equal(t, []Feature{{Title: "Small classes"}, {Title: "Visa support", Description: "End to end"}}, p.Content[2].Features())
	assert.Equal(t, "Kofi", p.Content[3].Testimonial().Author)
	assert.Equal(t, "Accredited", p.Content[4].Certification().Title)
	assert.Equal(t, "A one year bridge into undergraduate study at a...", p.Summary(9))
}

func TestProgrammeWithoutForm(t *testing.T) {
	var p Programme
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p2","title":"Short course"}`), &p))
	assert.False(t, p.HasForm())
}

func TestMarketSlugs(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Markets {
		slug := m.Slug()
		assert.False(t, seen[slug], "duplicate slug %s", slug)
		seen[slug] = true
	}
	assert.True(t, seen["united-kingdom"])
	assert.True(t, seen["new-zealand"])
	assert.Len(t, Markets, 10)
}
