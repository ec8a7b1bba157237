package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testForm() *Form {
	return &Form{
		Sections: []Section{
			{
				ID:    "personal",
				Title: "Personal Details",
				Fields: []Field{
					{ID: "name", Type: FieldText, Label: "Full Name", Required: true},
					{ID: "email", Type: FieldEmail, Label: "Email Address", Required: true, Validation: &Validation{Pattern: `^[^@\s]+@[^@\s]+\.[^@\s]+$`, CustomError: "Please enter a valid email"}},
				},
			},
			{
				ID:    "study",
				Title: "Study Plans",
				Fields: []Field{
					{ID: "country", Type: FieldSelect, Label: "Preferred Country", Options: []string{"Canada", "Germany"}, Required: true},
					{ID: "intakes", Type: FieldCheckbox, Label: "Intakes", Options: []string{"January", "September"}},
					{ID: "notes", Type: FieldTextarea, Label: "Notes"},
				},
			},
		},
		Settings: Settings{SuccessMessage: "Thanks!"},
	}
}

type recordingSubmitter struct {
	calls    int
	payloads []map[string]any
	err      error
}

func (s *recordingSubmitter) submit(_ context.Context, payload map[string]any) error {
	s.calls++
	s.payloads = append(s.payloads, payload)
	return s.err
}

func TestWizardBlocksUntilSectionValid(t *testing.T) {
	w := NewWizard(testForm())
	sub := &recordingSubmitter{}

	outcome, err := w.Next(context.Background(), sub.submit)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, Blocked, outcome)
	assert.Equal(t, 0, w.Index())
	assert.Equal(t, "Full Name is required", w.Errors()["name"])
	assert.Equal(t, "Email Address is required", w.Errors()["email"])

	w.Set("name", "Ada Lovelace")
	w.Set("email", "ada@invalid")
	assert.NotContains(t, w.Errors(), "name")

	outcome, _ = w.Next(context.Background(), sub.submit)
	assert.Equal(t, Blocked, outcome)
	assert.Equal(t, "Please enter a valid email", w.Errors()["email"])

	w.Set("email", "ada@example.com")
	outcome, err = w.Next(context.Background(), sub.submit)
	require.NoError(t, err)
	assert.Equal(t, Advanced, outcome)
	assert.Equal(t, 1, w.Index())
	assert.Equal(t, 0, sub.calls)
}

func TestWizardSubmitsOnceOnLastSection(t *testing.T) {
	w := NewWizard(testForm())
	sub := &recordingSubmitter{}
	ctx := context.Background()

	w.Set("name", "Ada Lovelace")
	w.Set("email", "ada@example.com")
	_, err := w.Next(ctx, sub.submit)
	require.NoError(t, err)

	w.Set("country", "Canada")
	w.Set("intakes", "January", "September")
	outcome, err := w.Next(ctx, sub.submit)
	require.NoError(t, err)
	assert.Equal(t, Submitted, outcome)
	assert.True(t, w.Submitted())
	require.Equal(t, 1, sub.calls)

	assert.Equal(t, map[string]any{
		"Full Name":         "Ada Lovelace",
		"Email Address":     "ada@example.com",
		"Preferred Country": "Canada",
		"Intakes":           []string{"January", "September"},
	}, sub.payloads[0])

	outcome, err = w.Next(ctx, sub.submit)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
	assert.Equal(t, Submitted, outcome)
	assert.Equal(t, 1, sub.calls)
}

func TestWizardFailedSubmitCanRetry(t *testing.T) {
	f := testForm()
	w := Restore(f, 1, map[string][]string{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"country": {"Germany"},
	})
	sub := &recordingSubmitter{err: errors.New("upstream down")}

	outcome, err := w.Next(context.Background(), sub.submit)
	assert.Error(t, err)
	assert.Equal(t, Failed, outcome)
	assert.False(t, w.Submitted())
	assert.Equal(t, 1, w.Index())

	sub.err = nil
	outcome, err = w.Next(context.Background(), sub.submit)
	require.NoError(t, err)
	assert.Equal(t, Submitted, outcome)
	assert.Equal(t, 2, sub.calls)
}

func TestWizardPreviousStopsAtFirstSection(t *testing.T) {
	w := Restore(testForm(), 1, nil)

	w.Previous()
	assert.Equal(t, 0, w.Index())
	assert.True(t, w.IsFirst())

	w.Previous()
	assert.Equal(t, 0, w.Index())
}

func TestRestoreClampsIndexAndDropsUnknownFields(t *testing.T) {
	w := Restore(testForm(), 9, map[string][]string{
		"name":    {"Ada"},
		"isAdmin": {"true"},
	})

	assert.Equal(t, 1, w.Index())
	assert.True(t, w.IsLast())
	assert.Equal(t, "Ada", w.FirstValue("name"))
	assert.Empty(t, w.Value("isAdmin"))

	w = Restore(testForm(), -3, nil)
	assert.Equal(t, 0, w.Index())
}

func TestDecodeAcceptsWrappedAndBareForms(t *testing.T) {
	wrapped, err := Decode([]byte(`{"form":{"sections":[{"id":"s1","title":"One","fields":[]}]}}`))
	require.NoError(t, err)
	assert.Equal(t, "One", wrapped.Sections[0].Title)

	bare, err := Decode([]byte(`{"sections":[{"id":"s1","title":"Bare","fields":[]}],"settings":{"submitButtonText":"Send"}}`))
	require.NoError(t, err)
	assert.Equal(t, "Bare", bare.Sections[0].Title)
	assert.Equal(t, "Send", bare.Settings.SubmitButtonText)

	_, err = Decode([]byte(`{"sections":[]}`))
	assert.ErrorIs(t, err, ErrEmptyForm)

	_, err = Decode([]byte(`nope`))
	assert.Error(t, err)
}

func TestWizardFailAndSetClearsError(t *testing.T) {
	w := NewWizard(testForm())
	w.Fail("name", "Upload rejected")
	assert.Equal(t, "Upload rejected", w.Errors()["name"])

	w.Set("name", "Ada")
	assert.NotContains(t, w.Errors(), "name")
}
