package service

import (
	"testing"
	"testing/fstest"

	"github.com/pathway-edu/website/internal/markdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalPages(t *testing.T) {
	files := fstest.MapFS{
		"legal/privacy-policy.md": {Data: []byte("---\ntitle: Privacy Policy\nlastUpdated: 2024-05-01\n---\n\n# Your data\n\nWe keep it safe.\n\n## Sharing\n\n### Partners\n\n## Your rights\n")},
		"legal/cookie-policy.md":  {Data: []byte("We use a consent cookie.\n")},
		"legal/notes.txt":         {Data: []byte("ignored")},
	}

	svc := NewLegalServiceFS(files, false)
	require.NoError(t, svc.LoadPages())

	page, err := svc.Page("privacy-policy")
	require.NoError(t, err)
	assert.Equal(t, "Privacy Policy", page.Title)
	assert.Equal(t, "May 1, 2024", page.LastUpdated)
	assert.Contains(t, page.Content, "We keep it safe.")
	assert.Equal(t, []markdown.Heading{
		{Level: 2, ID: "sharing", Text: "Sharing"},
		{Level: 2, ID: "your-rights", Text: "Your rights"},
	}, page.Sections)

	page, err = svc.Page("cookie-policy")
	require.NoError(t, err)
	assert.Equal(t, "Cookie Policy", page.Title)

	_, err = svc.Page("notes")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestLegalPagesMissingDirectory(t *testing.T) {
	svc := NewLegalServiceFS(fstest.MapFS{}, true)

	_, err := svc.Page("terms-of-use")
	assert.ErrorIs(t, err, ErrPageNotFound)
}
