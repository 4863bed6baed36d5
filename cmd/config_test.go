package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"ordermodel/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test; t.Setenv restores them,
// including values that godotenv.Load writes into the process environment.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfig(t *testing.T) {
	keys := []string{"ORDER_LOG_LEVEL", "ORDER_LOG_FORMAT", "ORDER_CUSTOMER_ID"}

	t.Run("should use defaults without env file", func(t *testing.T) {
		unsetEnv(t, keys...)

		cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "demo-customer", cfg.CustomerID)
	})

	t.Run("should read values from env file", func(t *testing.T) {
		unsetEnv(t, keys...)

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("ORDER_CUSTOMER_ID=c-42\nORDER_LOG_FORMAT=json\n"), 0o600))

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "c-42", cfg.CustomerID)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("should prefer the process environment over the file", func(t *testing.T) {
		unsetEnv(t, keys...)
		t.Setenv("ORDER_LOG_LEVEL", "debug")

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("ORDER_LOG_LEVEL=error\n"), 0o600))

		cfg, err := cmd.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("should write json records at the configured level", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := cmd.NewLogger(cmd.Config{LogLevel: "warn", LogFormat: "json"}, &buf)
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown", "sku", "A1")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
		assert.Contains(t, buf.String(), `"sku":"A1"`)
	})

	t.Run("should default to text output", func(t *testing.T) {
		var buf bytes.Buffer

		logger, err := cmd.NewLogger(cmd.Config{LogLevel: "info"}, &buf)
		require.NoError(t, err)

		logger.Info("hello")

		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("should reject unknown level and format", func(t *testing.T) {
		_, err := cmd.NewLogger(cmd.Config{LogLevel: "loud", LogFormat: "json"}, &bytes.Buffer{})
		require.Error(t, err)

		_, err = cmd.NewLogger(cmd.Config{LogLevel: "info", LogFormat: "xml"}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
