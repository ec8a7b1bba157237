package service

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/pathway-edu/website/internal/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrPageNotFound = errors.New("legal page not found")

type LegalPage struct {
	Title       string
	Slug        string
	Content     string
	LastUpdated string
	// Sections lists the second level headings, in order.
	Sections []markdown.Heading
}

// LegalService serves the policy pages from markdown files in legal/.
type LegalService struct {
	files  fs.FS
	parser *markdown.Parser
	reload bool

	mu    sync.RWMutex
	pages map[string]*LegalPage
}

// NewLegalService reads pages from contentDir/legal. With reload set every
// lookup re-reads the files so edits show up without a restart.
func NewLegalService(contentDir string, reload bool) *LegalService {
	return NewLegalServiceFS(os.DirFS(contentDir), reload)
}

func NewLegalServiceFS(files fs.FS, reload bool) *LegalService {
	return &LegalService{
		files:  files,
		parser: markdown.NewParser(),
		reload: reload,
		pages:  make(map[string]*LegalPage),
	}
}

func (s *LegalService) LoadPages() error {
	entries, err := fs.ReadDir(s.files, "legal")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read legal directory: %w", err)
	}

	pages := make(map[string]*LegalPage)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), ".md")
		page, err := s.loadPage(slug)
		if err != nil {
			return fmt.Errorf("failed to load page %s: %w", slug, err)
		}
		pages[slug] = page
	}

	s.mu.Lock()
	s.pages = pages
	s.mu.Unlock()
	return nil
}

func (s *LegalService) loadPage(slug string) (*LegalPage, error) {
	filePath := path.Join("legal", slug+".md")
	content, err := fs.ReadFile(s.files, filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	doc, err := s.parser.Convert(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markdown: %w", err)
	}
	meta := doc.Meta

	title, _ := meta["title"].(string)
	if title == "" {
		title = cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
	}

	lastUpdated := ""
	if value, ok := meta["lastUpdated"]; ok {
		lastUpdated = formatDate(value)
	}
	if lastUpdated == "" {
		info, err := fs.Stat(s.files, filePath)
		if err == nil && !info.ModTime().IsZero() {
			lastUpdated = info.ModTime().Format("January 2, 2006")
		}
	}

	return &LegalPage{
		Title:       title,
		Slug:        slug,
		Content:     string(doc.HTML),
		LastUpdated: lastUpdated,
		Sections:    sectionsOf(doc.Headings),
	}, nil
}

func (s *LegalService) Page(slug string) (*LegalPage, error) {
	if s.reload {
		err := s.LoadPages()
		if err != nil {
			return nil, err
		}
	}

	s.mu.RLock()
	page, ok := s.pages[slug]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}

	return page, nil
}

func sectionsOf(headings []markdown.Heading) []markdown.Heading {
	var sections []markdown.Heading
	for _, h := range headings {
		if h.Level == 2 && h.ID != "" {
			sections = append(sections, h)
		}
	}
	return sections
}

func formatDate(value any) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format("January 2, 2006")
	case string:
		for _, layout := range []string{"2006-01-02", "2006/01/02", "Jan 2, 2006", "January 2, 2006", time.RFC3339} {
			t, err := time.Parse(layout, v)
			if err == nil {
				return t.Format("January 2, 2006")
			}
		}
		return v
	}
	return ""
}
