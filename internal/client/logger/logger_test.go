package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize(t *testing.T) {
	defer func() { ClientLog = zap.NewNop() }()

	require.Error(t, Initialize("unknown level", ""))

	logFile := filepath.Join(t.TempDir(), "client.log")
	require.NoError(t, Initialize("info", logFile))
	ClientLog.Info("test message")
	require.NoError(t, ClientLog.Sync())

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "test message")
	assert.Contains(t, string(data), `"role":"client"`)

	require.NoError(t, Initialize("debug", ""))
}
