package blocks

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/pathway-edu/website/internal/config"
	"github.com/pathway-edu/website/internal/ctxkeys"
	"github.com/pathway-edu/website/internal/form"
	"github.com/pathway-edu/website/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestBlogBodyGroupsLists(t *testing.T) {
	out := render(t, context.Background(), BlogBody([]model.BlogBlock{
		{ID: "1", Type: model.BlockHeading2, Content: "Why Canada"},
		{ID: "2", Type: model.BlockBulletList, Content: "Work permits"},
		{ID: "3", Type: model.BlockBulletList, Content: "Safe cities"},
		{ID: "4", Type: model.BlockNumberedList, Content: "Apply"},
		{ID: "5", Type: "callout", Content: "<em>Tip</em>"},
		{ID: "6", Type: model.BlockImage, Content: "/img/a.jpg", Caption: "Campus"},
		{ID: "7", Type: model.BlockDivider},
	}))

	assert.Equal(t, 1, strings.Count(out, "<ul"))
	assert.Equal(t, 2, strings.Count(out, "<li id=\"2\">")+strings.Count(out, "<li id=\"3\">"))
	assert.Equal(t, 1, strings.Count(out, "<ol"))
	assert.Contains(t, out, `<h2 id="1"`)
	assert.Contains(t, out, `<p id="5"><em>Tip</em></p>`)
	assert.Contains(t, out, `<figcaption class="mt-2 text-center text-sm text-gray-500">Campus</figcaption>`)
	assert.Contains(t, out, `<hr id="7"`)
}

func TestProgrammeBodyRendersTypedBlocks(t *testing.T) {
	var blocks []model.ProgrammeBlock
	require.NoError(t, json.Unmarshal([]byte(`[
		{"type":"header","content":"Overview"},
		{"type":"features","content":["Small classes",{"title":"Mentoring","description":"Weekly"}]},
		{"type":"testimonial","content":{"quote":"Life changing","author":"Ama","role":"Alumna"}},
		{"type":"mystery","content":"skip me"}
	]`), &blocks))

	out := render(t, context.Background(), ProgrammeBody(blocks))
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "Small classes")
	assert.Contains(t, out, "Weekly")
	assert.Contains(t, out, "Ama")
	assert.NotContains(t, out, "skip me")
}

func wizardForm() *form.Form {
	return &form.Form{
		Sections: []form.Section{
			{ID: "a", Title: "About you", Fields: []form.Field{
				{ID: "name", Type: form.FieldText, Label: "Full Name", Required: true},
			}},
			{ID: "b", Title: "Documents", Fields: []form.Field{
				{ID: "levels", Type: form.FieldCheckbox, Label: "Levels", Options: []string{"Bachelor", "Master"}},
				{ID: "passport", Type: form.FieldFile, Label: "Passport"},
			}},
		},
		Settings: form.Settings{SubmitButtonText: "Send application"},
	}
}

func TestWizardFormCarriesOtherSections(t *testing.T) {
	w := form.Restore(wizardForm(), 1, map[string][]string{
		"name":   {"Ada <Lovelace>"},
		"levels": {"Master"},
	})
	ctx := ctxkeys.WithCSRFToken(context.Background(), "tok")

	out := render(t, ctx, WizardForm(WizardProps{Action: "/apply-for-eligibility", Wizard: w, UploadsEnabled: true}))

	assert.Contains(t, out, `enctype="multipart/form-data"`)
	assert.Contains(t, out, `name="csrf_token" value="tok"`)
	assert.Contains(t, out, `name="_section" value="1"`)
	assert.Contains(t, out, `type="hidden" name="field.name" value="Ada &lt;Lovelace&gt;"`)
	assert.Contains(t, out, `value="Master" id="f-levels-1" checked`)
	assert.Contains(t, out, `name="file.passport"`)
	assert.Contains(t, out, "Previous")
	assert.Contains(t, out, "Send application")
	assert.Contains(t, out, "Step 2 of 2")
}

func TestWizardFormShowsErrorsAndDisabledUploads(t *testing.T) {
	w := form.Restore(wizardForm(), 1, nil)
	w.Fail("passport", "Passport is required")

	out := render(t, context.Background(), WizardForm(WizardProps{Action: "/x", Wizard: w, Failure: "Failed to submit application. Please try again."}))

	assert.Contains(t, out, "Passport is required")
	assert.Contains(t, out, "File uploads are currently unavailable")
	assert.NotContains(t, out, `name="file.passport"`)
	assert.Contains(t, out, "Failed to submit application. Please try again.")
}

func TestWizardFormFirstSectionHasNoPrevious(t *testing.T) {
	out := render(t, context.Background(), WizardForm(WizardProps{Action: "/x", Wizard: form.NewWizard(wizardForm())}))
	assert.NotContains(t, out, "Previous")
	assert.Contains(t, out, ">Next<")
}

func TestCookieBannerHiddenAfterChoice(t *testing.T) {
	ctx := ctxkeys.WithReturnTo(context.Background(), "/blogs?page=2")
	out := render(t, ctx, CookieBanner())
	assert.Contains(t, out, `action="/cookie-consent"`)
	assert.Contains(t, out, `name="redirect" value="/blogs?page=2"`)

	ctx = ctxkeys.WithConsent(ctx, ctxkeys.ConsentDeclined)
	assert.Empty(t, render(t, ctx, CookieBanner()))
}

func TestAnalyticsNeedsConsent(t *testing.T) {
	cfg := &config.Config{GoogleAnalyticsID: "G-TEST", PlausibleDomain: "example.com", PlausibleHost: "plausible.io"}
	ctx := ctxkeys.WithConfig(context.Background(), cfg)
	ctx = templ.WithNonce(ctx, "n1")

	assert.Empty(t, render(t, ctx, Analytics()))

	out := render(t, ctxkeys.WithConsent(ctx, ctxkeys.ConsentAccepted), Analytics())
	assert.Contains(t, out, "googletagmanager.com/gtag/js?id=G-TEST")
	assert.Contains(t, out, `data-domain="example.com"`)
	assert.Equal(t, 3, strings.Count(out, `nonce="n1"`))
}

func TestNavbarMarksActiveSection(t *testing.T) {
	ctx := ctxkeys.WithURLPath(context.Background(), "/blogs/b1")
	out := render(t, ctx, Navbar())
	require.Equal(t, 1, strings.Count(out, `aria-current="page"`))

	start := strings.Index(out, `href="/blogs"`)
	require.GreaterOrEqual(t, start, 0)
	link := out[start : start+strings.Index(out[start:], ">")]
	assert.Contains(t, link, `aria-current="page"`)
	assert.Contains(t, link, "font-semibold")
}

func TestFormFieldControls(t *testing.T) {
	bio := form.Field{ID: "bio", Type: form.FieldTextarea, Label: "About you", Validation: &form.Validation{MaxLength: 500}}
	out := render(t, context.Background(), FormField(bio, []string{"Hi <there>"}, "", false))
	assert.Contains(t, out, `<label for="f-bio"`)
	assert.Contains(t, out, `maxlength="500"`)
	assert.Contains(t, out, `>Hi &lt;there&gt;</textarea>`)
	assert.NotContains(t, out, "aria-invalid")

	country := form.Field{ID: "country", Type: form.FieldSelect, Label: "Country", Required: true, Options: []string{"Canada", "Ireland"}}
	out = render(t, context.Background(), FormField(country, []string{"Ireland"}, "Country is required", false))
	assert.Contains(t, out, `<option value="">Select an option</option>`)
	assert.Contains(t, out, `<option value="Ireland" selected>`)
	assert.NotContains(t, out, `<option value="Canada" selected>`)
	assert.Contains(t, out, `aria-invalid="true"`)
	assert.Contains(t, out, "border-red-500")
	assert.NotContains(t, out, "border-gray-300")
	assert.Contains(t, out, `id="f-country-error"`)

	levels := form.Field{ID: "levels", Type: form.FieldCheckbox, Label: "Levels", Options: []string{"Bachelor"}}
	out = render(t, context.Background(), FormField(levels, nil, "", false))
	assert.NotContains(t, out, "<label for=")
	assert.Contains(t, out, `type="checkbox" name="field.levels" value="Bachelor"`)
}
