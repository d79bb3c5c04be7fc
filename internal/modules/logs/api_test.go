package logs

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/reusedev/newsletter-hub/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, zerolog.DebugLevel, parseLogLevel("DEBUG"))
	require.Equal(t, zerolog.WarnLevel, parseLogLevel("warn"))
	require.Equal(t, zerolog.TraceLevel, parseLogLevel("trace"))
	require.Equal(t, zerolog.InfoLevel, parseLogLevel(""))
	require.Equal(t, zerolog.InfoLevel, parseLogLevel("verbose"))
}

func TestNewLoggerDiscardsByDefault(t *testing.T) {
	var console bytes.Buffer
	cfg := config.Default()
	l := NewLogger(cfg, &console)
	l.Info().Msg("hidden")
	require.Zero(t, console.Len())
}

func TestNewLoggerConsoleAtDebug(t *testing.T) {
	var console bytes.Buffer
	cfg := config.Default()
	cfg.LogLevel = "debug"
	l := NewLogger(cfg, &console)
	l.Debug().Msg("visible")
	require.Contains(t, console.String(), "visible")
}

func TestNewLoggerWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.LogFile = filepath.Join(t.TempDir(), "newsletter.log")
	l := NewLogger(cfg, nil)
	l.Info().Str("issue_id", "42").Msg("Sending newsletter issue")

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	require.Contains(t, string(data), `"issue_id":"42"`)
}
