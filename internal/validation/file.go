package validation

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

var ErrNoConstraints = errors.New("no file constraints provided")

// FileConstraints describes one accepted kind of upload.
type FileConstraints struct {
	Kind              string
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

var (
	ImageConstraints = FileConstraints{
		Kind: "image",
		AllowedMimeTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
		},
		AllowedExtensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
		},
		MaxSize: 5 << 20, // 5MB
	}

	// DocumentConstraints covers transcripts, passports and CVs.
	DocumentConstraints = FileConstraints{
		Kind: "document",
		AllowedMimeTypes: map[string]bool{
			"application/pdf": true,
		},
		AllowedExtensions: map[string]bool{
			".pdf": true,
		},
		MaxSize: 10 << 20, // 10MB
	}
)

// ValidateFile checks the upload against each constraint set in turn and
// returns the Kind of the first one it satisfies.
func ValidateFile(header *multipart.FileHeader, constraints ...FileConstraints) (FileInfo, error) {
	if len(constraints) == 0 {
		return FileInfo{}, ErrNoConstraints
	}

	var lastErr error
	for _, constraint := range constraints {
		info, err := checkConstraint(header, constraint)
		if err == nil {
			return info, nil
		}
		lastErr = err
	}

	return FileInfo{}, lastErr
}

// FileInfo is what validation learned about an accepted upload.
type FileInfo struct {
	Kind        string
	ContentType string
}

func checkConstraint(header *multipart.FileHeader, constraints FileConstraints) (FileInfo, error) {
	if header.Size > constraints.MaxSize {
		return FileInfo{}, fmt.Errorf("file too large: maximum size is %d MB", constraints.MaxSize/(1<<20))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !constraints.AllowedExtensions[ext] {
		return FileInfo{}, fmt.Errorf("invalid file extension: %s", ext)
	}

	file, err := header.Open()
	if err != nil {
		return FileInfo{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// DetectContentType looks at no more than 512 bytes
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return FileInfo{}, fmt.Errorf("failed to read file: %w", err)
	}

	detected := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detected] {
		return FileInfo{}, fmt.Errorf("invalid file type (detected: %s)", detected)
	}

	return FileInfo{Kind: constraints.Kind, ContentType: detected}, nil
}
