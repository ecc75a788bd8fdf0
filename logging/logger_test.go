package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlalg/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"warn":  zapcore.WarnLevel,
		"ERROR": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	assert.Error(t, err)
}

func TestNew_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json")
	cfg := logging.DefaultConfig()
	cfg.OutputPaths = []string{path}

	l, err := logging.New(cfg)
	require.NoError(t, err)
	l.Debug("hidden")
	l.Info("computed", zap.String("module", "vector"))
	_ = l.Sync()

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"message":"computed"`)
	assert.Contains(t, string(b), `"module":"vector"`)
	assert.NotContains(t, string(b), "hidden")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(logging.Config{Level: "chatty"})
	assert.Error(t, err)
}
