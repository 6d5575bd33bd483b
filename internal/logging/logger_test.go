package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/internal/config"
	"authapi/internal/logging"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithOutput(config.LogConfig{Level: "info", Format: "json"}, &buf)

	logger.WithField("request_id", "abc").Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "abc", entry["request_id"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	logger := logging.NewWithOutput(config.LogConfig{Level: "loud", Format: "console"}, &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNew_DebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithOutput(config.LogConfig{Level: "debug", Format: "console"}, &buf)

	logger.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}
