package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.LogFile)
	require.Equal(t, "Welcome to our Youtube Newsletter!", cfg.Message)
	require.Equal(t, []string{"Alice", "Bob"}, cfg.Subscribers)
	require.False(t, cfg.FaultIsolation)
	require.Equal(t, 10*time.Minute, cfg.InboxTTLDuration())
}

func TestLoadOverridesDefaults(t *testing.T) {
	cfg, err := Load([]byte(`
log_level: debug
log_file: logs/newsletter.log
newsletter:
  message: "New video is out"
  subscribers: [Carol]
  fault_isolation: true
  inbox_ttl: 1h
`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "logs/newsletter.log", cfg.LogFile)
	require.Equal(t, 10, cfg.LogMaxSize)
	require.Equal(t, "Youtube", cfg.Newsletter.Name)
	require.Equal(t, "New video is out", cfg.Message)
	require.Equal(t, []string{"Carol"}, cfg.Subscribers)
	require.True(t, cfg.FaultIsolation)
	require.Equal(t, time.Hour, cfg.InboxTTLDuration())
}

func TestVerify(t *testing.T) {
	for name, doc := range map[string]string{
		"empty message":    "newsletter: {message: ''}",
		"empty name":       "newsletter: {subscribers: [Alice, '']}",
		"bad ttl":          "newsletter: {inbox_ttl: soon}",
		"non positive ttl": "newsletter: {inbox_ttl: 0s}",
		"bad yaml":         "newsletter: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestInitPanicsOnInvalidConfig(t *testing.T) {
	defer func() { GConfig = Default() }()
	require.Panics(t, func() { Init([]byte("newsletter: {message: ''}")) })
	require.NotPanics(t, func() { Init(nil) })
	require.Equal(t, []string{"Alice", "Bob"}, GConfig.Subscribers)
}
