package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_NilConfigErrors(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNew_NoSinksErrors(t *testing.T) {
	_, err := New(&Config{Service: "test", DefaultLevel: "INFO"})
	assert.Error(t, err)
}

func TestNew_DefaultConfigBuilds(t *testing.T) {
	logger, err := New(DefaultConfig("screen-core"))
	require.NoError(t, err)
	require.NotNil(t, logger)

	logger.Info("hello", zap.String("k", "v"))
	assert.NoError(t, logger.Sync())
}

func TestNew_UnsupportedSinkTypeErrors(t *testing.T) {
	cfg := &Config{
		Service:      "test",
		DefaultLevel: "INFO",
		Sinks:        []SinkConfig{{Type: "carrier-pigeon", Format: "json"}},
	}
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_FileSinkRequiresFileConfig(t *testing.T) {
	cfg := &Config{
		Service:      "test",
		DefaultLevel: "INFO",
		Sinks:        []SinkConfig{{Type: "file", Format: "json"}},
	}
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestLogger_WithAndNamed(t *testing.T) {
	logger, err := New(DefaultConfig("screen-core"))
	require.NoError(t, err)

	scoped := logger.Named("search").With(zap.String("requestId", "abc"))
	require.NotNil(t, scoped)
	scoped.Debug("scoped message")
}

func TestLogger_SetLevel(t *testing.T) {
	logger, err := New(DefaultConfig("screen-core"))
	require.NoError(t, err)

	logger.SetLevel(ERROR)
	logger.Info("should be filtered by level, but must not panic")
}
