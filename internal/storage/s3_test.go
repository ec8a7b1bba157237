package storage

import (
	"context"
	"strings"
	"testing"

	cfg "github.com/pathway-edu/website/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithoutBucketIsDisabled(t *testing.T) {
	s, err := New(context.Background(), &cfg.Config{})
	require.NoError(t, err)

	_, ok := s.(Disabled)
	require.True(t, ok)

	assert.ErrorIs(t, s.Save(context.Background(), "k", strings.NewReader("x"), "text/plain"), ErrNotConfigured)
	_, err = s.URL(context.Background(), "k")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "https://docs.s3.eu-west-1.amazonaws.com", baseURL(S3Config{Bucket: "docs", Region: "eu-west-1"}))
	assert.Equal(t, "http://localhost:9000/docs", baseURL(S3Config{Bucket: "docs", Endpoint: "http://localhost:9000/"}))
}
