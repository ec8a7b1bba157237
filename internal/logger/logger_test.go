package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionHandlerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, false, ""))

	log.Debug("hidden")
	log.Info("upstream request failed", "path", "/api/blogs")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "upstream request failed", record["msg"])
	assert.Equal(t, "/api/blogs", record["path"])
}

func TestDevelopmentHandlerLogsDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, true, ""))

	log.Debug("cache miss", "key", "/api/programmes")

	assert.Contains(t, buf.String(), "cache miss")
	assert.Contains(t, buf.String(), "key=/api/programmes")
}
