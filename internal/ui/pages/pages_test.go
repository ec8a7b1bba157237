package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/pathway-edu/website/internal/config"
	"github.com/pathway-edu/website/internal/ctxkeys"
	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/markdown"
	"github.com/pathway-edu/website/internal/model"
	"github.com/pathway-edu/website/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	ctx := ctxkeys.WithConfig(context.Background(), &config.Config{AppName: "Pathway", AppTagline: "Go further"})
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestLayoutTitle(t *testing.T) {
	out := render(t, About())
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>About Us | Pathway</title>")

	out = render(t, Home(HomeData{}))
	assert.Contains(t, out, "<title>Pathway</title>")
	assert.Contains(t, out, "Go further")
}

func TestBlogListStates(t *testing.T) {
	assert.Contains(t, render(t, BlogList(nil, true)), MsgBlogsFailed)
	assert.Contains(t, render(t, BlogList(nil, false)), msgNoBlogs)

	out := render(t, BlogList([]*model.Blog{{ID: "a b", Title: "Visa tips"}}, false))
	assert.Contains(t, out, `href="/blogs/a%20b"`)
	assert.Contains(t, out, "Pathway Team")
}

func TestHomeShowsAtMostSixMarkets(t *testing.T) {
	out := render(t, Home(HomeData{Markets: model.Markets, BlogsFailed: true}))
	assert.Equal(t, 6, strings.Count(out, `href="/coverage/`))
	assert.Contains(t, out, MsgBlogsFailed)
}

func TestHomeSections(t *testing.T) {
	out := render(t, Home(HomeData{
		Testimonials: model.Testimonials[:2],
		Programmes:   []*model.Programme{{ID: "p1", Title: "Nursing", Description: "Train as a nurse in Canada."}},
	}))
	assert.Contains(t, out, `href="/about"`)
	assert.Contains(t, out, aboutStats[0].Value)
	assert.Contains(t, out, `href="/programmes/p1"`)
	assert.Contains(t, out, "Train as a nurse in Canada.")
	assert.Contains(t, out, "What our students say")
	assert.Contains(t, out, model.Testimonials[1].Author)
	assert.Contains(t, out, model.Testimonials[1].School)
	assert.NotContains(t, out, model.Testimonials[2].Author)
	assert.Contains(t, out, msgNoBlogs)

	out = render(t, Home(HomeData{ProgrammesFailed: true}))
	assert.Contains(t, out, MsgProgrammesFailed)
	assert.NotContains(t, out, "What our students say")
}

func TestProgrammeListStates(t *testing.T) {
	assert.Contains(t, render(t, ProgrammeList(nil, true)), MsgProgrammesFailed)
	assert.Contains(t, render(t, ProgrammeList(nil, false)), msgNoProgrammes)
}

func TestNewsletterResult(t *testing.T) {
	assert.Contains(t, render(t, NewsletterResult("")), "Thanks for subscribing!")

	out := render(t, NewsletterResult("Please provide a valid email address"))
	assert.Contains(t, out, "Please provide a valid email address")
	assert.Contains(t, out, `action="/newsletter/subscribe"`)
}

func TestProgrammeDetailApplyLink(t *testing.T) {
	p := &model.Programme{ID: "p1", Title: "Nursing"}
	assert.NotContains(t, render(t, ProgrammeDetail(p)), `href="/programmes/p1/apply"`)

	p.Form = &form.Form{Sections: []form.Section{{ID: "s", Fields: []form.Field{{ID: "name", Label: "Name"}}}}}
	assert.Contains(t, render(t, ProgrammeDetail(p)), `href="/programmes/p1/apply"`)
}

func TestCountryDetail(t *testing.T) {
	out := render(t, CountryDetail(model.Markets[0]))
	assert.Contains(t, out, "Study in "+model.Markets[0].Country)
	assert.Contains(t, out, model.Markets[0].LivingCosts)
}

func TestLegalRendersHTML(t *testing.T) {
	out := render(t, Legal(&service.LegalPage{Title: "Privacy Policy", Content: "<h2>Data</h2>", LastUpdated: "January 1, 2026"}))
	assert.Contains(t, out, "<h2>Data</h2>")
	assert.Contains(t, out, "Last updated: January 1, 2026")
	assert.NotContains(t, out, "On this page")

	out = render(t, Legal(&service.LegalPage{
		Title:    "Cookie Policy",
		Sections: []markdown.Heading{{Level: 2, ID: "essential", Text: "Essential"}, {Level: 2, ID: "analytics", Text: "Analytics"}},
	}))
	assert.Contains(t, out, "On this page")
	assert.Contains(t, out, `href="#analytics"`)
}
