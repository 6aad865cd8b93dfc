package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", nil).GetLevel())
	assert.Equal(t, logrus.WarnLevel, New("warning", nil).GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("verbose", nil).GetLevel()) // некорректный уровень -> info
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.WithField("case_number", "23000123").Info("Incident created successfully")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Incident created successfully", entry["message"])
	assert.Equal(t, "23000123", entry["case_number"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New("error", &buf)

	log.Warn("ignored")

	assert.Zero(t, buf.Len())
}
