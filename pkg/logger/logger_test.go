package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerConfiguresBothLoggers(t *testing.T) {
	var buf bytes.Buffer
	initLogger(&buf, "debug")
	t.Cleanup(func() { initLogger(&bytes.Buffer{}, "info") })

	assert.Equal(t, logrus.DebugLevel, Log.GetLevel())
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	logrus.WithField("goal_id", "abc").Info("Goal created")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc", entry["goal_id"])
	assert.Equal(t, "Goal created", entry["msg"])
}

func TestInitLoggerUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	initLogger(&buf, "chatty")
	t.Cleanup(func() { initLogger(&bytes.Buffer{}, "info") })

	assert.Equal(t, logrus.InfoLevel, Log.GetLevel())
	assert.Contains(t, buf.String(), "Unknown log level")
}
