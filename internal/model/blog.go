package model

import (
	"encoding/json"
	"time"
)

const (
	BlockHeading1     = "h1"
	BlockHeading2     = "h2"
	BlockHeading3     = "h3"
	BlockParagraph    = "paragraph"
	BlockQuote        = "quote"
	BlockImage        = "image"
	BlockBulletList   = "bullet-list"
	BlockNumberedList = "numbered-list"
	BlockDivider      = "divider"
)

// BlogBlock is one unit of a blog body. Content holds trusted HTML from the
// content API, or the image URL for image blocks.
type BlogBlock struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Caption string `json:"caption,omitempty"`
}

func (b BlogBlock) IsList() bool {
	return b.Type == BlockBulletList || b.Type == BlockNumberedList
}

// BlockGroup is a single block, or a run of consecutive list items of the
// same list type.
type BlockGroup struct {
	Type   string
	Blocks []BlogBlock
}

// GroupBlocks folds consecutive list items of one type into a group.
func GroupBlocks(blocks []BlogBlock) []BlockGroup {
	var groups []BlockGroup
	for i := 0; i < len(blocks); {
		block := blocks[i]
		if !block.IsList() {
			groups = append(groups, BlockGroup{Type: block.Type, Blocks: []BlogBlock{block}})
			i++
			continue
		}

		j := i
		for j < len(blocks) && blocks[j].Type == block.Type {
			j++
		}
		groups = append(groups, BlockGroup{Type: block.Type, Blocks: blocks[i:j]})
		i = j
	}
	return groups
}

type Author struct {
	Username string `json:"username"`
}

// UnmarshalJSON accepts either {"username": "..."} or a bare string.
func (a *Author) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		a.Username = name
		return nil
	}

	type plain Author
	var p plain
	err := json.Unmarshal(data, &p)
	if err != nil {
		return err
	}
	*a = Author(p)
	return nil
}

type Blog struct {
	ID         string      `json:"id"`
	Title      string      `json:"title"`
	CoverImage string      `json:"coverImage,omitempty"`
	Content    []BlogBlock `json:"content"`
	Author     Author      `json:"author"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (b *Blog) UnmarshalJSON(data []byte) error {
	var raw struct {
		MongoID    string      `json:"_id"`
		ID         string      `json:"id"`
		Title      string      `json:"title"`
		CoverImage string      `json:"coverImage"`
		Content    []BlogBlock `json:"content"`
		Author     Author      `json:"author"`
		CreatedAt  string      `json:"createdAt"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	b.ID = raw.MongoID
	if b.ID == "" {
		b.ID = raw.ID
	}
	b.Title = raw.Title
	b.CoverImage = raw.CoverImage
	b.Content = raw.Content
	b.Author = raw.Author
	b.CreatedAt = parseTimestamp(raw.CreatedAt)
	return nil
}

// AuthorName falls back to a generic byline when the API omits the author.
func (b *Blog) AuthorName() string {
	if b.Author.Username == "" {
		return "Pathway Team"
	}
	return b.Author.Username
}

func parseTimestamp(value string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, time.DateOnly} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t
		}
	}
	return time.Time{}
}
