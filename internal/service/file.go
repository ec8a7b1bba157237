package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pathway-edu/website/internal/model"
	"github.com/pathway-edu/website/internal/storage"
	"github.com/pathway-edu/website/internal/validation"
)

// FileService stores documents attached to application file fields.
type FileService struct {
	storage storage.Storage
}

func NewFileService(storage storage.Storage) *FileService {
	return &FileService{
		storage: storage,
	}
}

// Enabled reports whether uploads can be accepted at all.
func (s *FileService) Enabled() bool {
	_, disabled := s.storage.(storage.Disabled)
	return !disabled
}

// Upload validates and stores one file and returns a link to it. Keys are
// grouped by form so the admissions team can find them.
func (s *FileService) Upload(ctx context.Context, formKey, fieldID string, header *multipart.FileHeader) (*model.Upload, error) {
	if !s.Enabled() {
		return nil, storage.ErrNotConfigured
	}

	info, err := validation.ValidateFile(header, validation.ImageConstraints, validation.DocumentConstraints)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	key := path.Join("applications", formKey, info.Kind+"s", uuid.New().String()+ext)

	err = s.storage.Save(ctx, key, file, info.ContentType)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	url, err := s.storage.URL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to link file: %w", err)
	}

	return &model.Upload{
		Key:          key,
		FieldID:      fieldID,
		OriginalName: header.Filename,
		MimeType:     info.ContentType,
		Size:         header.Size,
		URL:          url,
	}, nil
}
