package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Document is a rendered markdown file.
type Document struct {
	HTML     []byte
	Meta     map[string]any
	Headings []Heading
}

// Heading is one heading of a document with its generated anchor id.
type Heading struct {
	Level int
	ID    string
	Text  string
}

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return &Parser{
		md: md,
	}
}

// Convert renders source to HTML and collects its frontmatter and headings.
// Raw HTML in the source is omitted from the output.
func (p *Parser) Convert(source []byte) (*Document, error) {
	pc := parser.NewContext()
	root := p.md.Parser().Parse(text.NewReader(source), parser.WithContext(pc))

	var buf bytes.Buffer
	err := p.md.Renderer().Render(&buf, source, root)
	if err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	return &Document{
		HTML:     buf.Bytes(),
		Meta:     frontmatterOf(pc),
		Headings: headingsOf(root, source),
	}, nil
}

// frontmatterOf returns the decoded frontmatter, or an empty map when there
// is none or it is not valid YAML.
func frontmatterOf(pc parser.Context) map[string]any {
	data := frontmatter.Get(pc)
	if data == nil {
		return make(map[string]any)
	}

	var meta map[string]any
	err := data.Decode(&meta)
	if err != nil || meta == nil {
		return make(map[string]any)
	}
	return meta
}

func headingsOf(root ast.Node, source []byte) []Heading {
	var headings []Heading
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		h, ok := n.(*ast.Heading)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}

		var id string
		if v, ok := h.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		headings = append(headings, Heading{Level: h.Level, ID: id, Text: plainText(h, source)})
		return ast.WalkSkipChildren, nil
	})
	return headings
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
