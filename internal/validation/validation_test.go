package validation

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ada@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.ErrorIs(t, ValidateEmail(strings.Repeat("a", 250)+"@x.io"), ErrEmailTooLong)
	assert.ErrorIs(t, ValidateEmail("Ada <ada@example.com>"), ErrEmailInvalid)
	assert.ErrorIs(t, ValidateEmail("ada@localhost"), ErrEmailInvalid)
	assert.ErrorIs(t, ValidateEmail(""), ErrEmailRequired)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", NormalizeEmail("  Ada@Example.COM \n"))
}

func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("upload", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["upload"][0]
}

func TestValidateFileAcceptsPDF(t *testing.T) {
	header := fileHeader(t, "transcript.PDF", []byte("%PDF-1.7\n1 0 obj\n"))

	info, err := ValidateFile(header, ImageConstraints, DocumentConstraints)
	require.NoError(t, err)
	assert.Equal(t, "document", info.Kind)
	assert.Equal(t, "application/pdf", info.ContentType)
}

func TestValidateFileRejectsDisguisedContent(t *testing.T) {
	header := fileHeader(t, "passport.pdf", []byte("just some text"))

	_, err := ValidateFile(header, DocumentConstraints)
	assert.ErrorContains(t, err, "invalid file type")
}

func TestValidateFileRejectsExtension(t *testing.T) {
	header := fileHeader(t, "run.exe", []byte("%PDF-1.7"))

	_, err := ValidateFile(header, DocumentConstraints)
	assert.ErrorContains(t, err, "invalid file extension")
}

func TestValidateFileNeedsConstraints(t *testing.T) {
	_, err := ValidateFile(fileHeader(t, "a.pdf", []byte("%PDF-1.7")))
	assert.ErrorIs(t, err, ErrNoConstraints)
}
