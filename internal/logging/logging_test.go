package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/accrual-engine/internal/config"
)

func TestConfigure_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()

	require.NoError(t, configure(logger, config.LoggingConfig{Level: "debug", Format: "json"}, &buf))
	logger.WithField("investment_id", "abc").Debug("swept")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "swept", entry["msg"])
	assert.Equal(t, "abc", entry["investment_id"])
	assert.Equal(t, "debug", entry["level"])
}

func TestConfigure_TextAndDefaults(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()

	require.NoError(t, configure(logger, config.LoggingConfig{Format: "text"}, &buf))
	assert.Equal(t, log.InfoLevel, logger.GetLevel())

	logger.Debug("hidden")
	assert.Empty(t, buf.String())

	logger.Info("shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestConfigure_InvalidLevel(t *testing.T) {
	err := configure(log.New(), config.LoggingConfig{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
