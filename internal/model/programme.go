package model

import (
	"encoding/json"
	"strings"

	"github.com/pathway-edu/website/internal/form"
)

const (
	ProgrammeBlockHeader        = "header"
	ProgrammeBlockText          = "text"
	ProgrammeBlockImage         = "image"
	ProgrammeBlockFeatures      = "features"
	ProgrammeBlockTestimonial   = "testimonial"
	ProgrammeBlockCertification = "certification"
)

// ProgrammeBlock keeps its content raw; the shape depends on Type.
type ProgrammeBlock struct {
	Type    string          `json:"type"`
	Content json.RawMessage `json:"content"`
}

type ImageContent struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// UnmarshalJSON accepts a feature object or a plain string title.
func (f *Feature) UnmarshalJSON(data []byte) error {
	var title string
	if err := json.Unmarshal(data, &title); err == nil {
		f.Title = title
		return nil
	}

	type plain Feature
	var p plain
	err := json.Unmarshal(data, &p)
	if err != nil {
		return err
	}
	*f = Feature(p)
	return nil
}

type TestimonialContent struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
	Role   string `json:"role,omitempty"`
}

type CertificationContent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (b ProgrammeBlock) Text() string {
	var s string
	_ = json.Unmarshal(b.Content, &s)
	return s
}

func (b ProgrammeBlock) Image() ImageContent {
	var img ImageContent
	if err := json.Unmarshal(b.Content, &img); err != nil {
		img.URL = b.Text()
	}
	return img
}

func (b ProgrammeBlock) Features() []Feature {
	var features []Feature
	_ = json.Unmarshal(b.Content, &features)
	return features
}

func (b ProgrammeBlock) Testimonial() TestimonialContent {
	var t TestimonialContent
	_ = json.Unmarshal(b.Content, &t)
	return t
}

func (b ProgrammeBlock) Certification() CertificationContent {
	var c CertificationContent
	_ = json.Unmarshal(b.Content, &c)
	return c
}

type Programme struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CoverImage  string           `json:"coverImage,omitempty"`
	Content     []ProgrammeBlock `json:"content"`
	Form        *form.Form       `json:"form,omitempty"`
}

func (p *Programme) UnmarshalJSON(data []byte) error {
	var raw struct {
		MongoID     string           `json:"_id"`
		ID          string           `json:"id"`
		Title       string           `json:"title"`
		Description string           `json:"description"`
		CoverImage  string           `json:"coverImage"`
		Content     []ProgrammeBlock `json:"content"`
		Form        *form.Form       `json:"form"`
	}
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}

	p.ID = raw.MongoID
	if p.ID == "" {
		p.ID = raw.ID
	}
	p.Title = raw.Title
	p.Description = raw.Description
	p.CoverImage = raw.CoverImage
	p.Content = raw.Content
	p.Form = raw.Form
	return nil
}

// HasForm reports whether the programme accepts applications.
func (p *Programme) HasForm() bool {
	return p.Form != nil && len(p.Form.Sections) > 0
}

// Summary returns the first n words of the description.
func (p *Programme) Summary(n int) string {
	words := strings.Fields(p.Description)
	if len(words) <= n {
		return p.Description
	}
	return strings.Join(words[:n], " ") + "..."
}
