package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize(Config{Level: "loud", Environment: "development"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitialize_ProductionWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { Log = zap.NewNop() })

	err := Initialize(Config{Level: "info", LogDir: dir, Environment: "production", ServiceName: "mentor-aggregator"})
	require.NoError(t, err)

	Info("hello", zap.String("k", "v"))
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"service":"mentor-aggregator"`)
}

func TestTraceFields_NoSpan(t *testing.T) {
	assert.Empty(t, traceFields(context.Background()))
}
