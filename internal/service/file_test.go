package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pathway-edu/website/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStorage struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (m *memoryStorage) Save(_ context.Context, key string, r io.Reader, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memoryStorage) URL(_ context.Context, key string) (string, error) {
	return "https://files.example.com/" + key, nil
}

func uploadHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("transcript", name)
	require.NoError(t, err)
	_, _ = part.Write(content)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["transcript"][0]
}

func TestUploadStoresDocument(t *testing.T) {
	store := newMemoryStorage()
	svc := NewFileService(store)
	require.True(t, svc.Enabled())

	upload, err := svc.Upload(context.Background(), "eligibility", "transcript", uploadHeader(t, "grades.pdf", []byte("%PDF-1.4 transcript")))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(upload.Key, "applications/eligibility/documents/"))
	assert.True(t, strings.HasSuffix(upload.Key, ".pdf"))
	assert.Equal(t, "https://files.example.com/"+upload.Key, upload.URL)
	assert.Equal(t, "application/pdf", store.types[upload.Key])
	assert.Equal(t, "grades.pdf", upload.OriginalName)
}

func TestUploadRejectsUnsupportedFile(t *testing.T) {
	store := newMemoryStorage()
	svc := NewFileService(store)

	_, err := svc.Upload(context.Background(), "eligibility", "transcript", uploadHeader(t, "notes.txt", []byte("hello")))
	assert.Error(t, err)
	assert.Empty(t, store.objects)
}

func TestUploadWithoutStorage(t *testing.T) {
	svc := NewFileService(storage.Disabled{})
	assert.False(t, svc.Enabled())

	_, err := svc.Upload(context.Background(), "eligibility", "transcript", uploadHeader(t, "grades.pdf", []byte("%PDF-1.4")))
	assert.ErrorIs(t, err, storage.ErrNotConfigured)
}
