package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
)

// writeConfig points the store at a throwaway config file so the test
// never depends on files present on the host
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv(ConfigPathEnvVar, path)
	return path
}

func TestDefaults(t *testing.T) {
	writeConfig(t, "")

	s, err := NewStore(zap.NewNop())
	require.NoError(t, err)

	assert.True(t, s.Bool(domain.KeyEnabled))
	assert.False(t, s.Bool(domain.KeyClearOnPause))
	assert.False(t, s.Bool(domain.KeyPrivacyEnabled))
	assert.Equal(t, "stable", s.String(domain.KeyClient))
	assert.Equal(t, "{title}", s.String(domain.KeyDetailsFormat))
	assert.Equal(t, "by {artist}", s.String(domain.KeyStateFormat))
	assert.Equal(t, "listenOnApp", s.String(domain.KeyFirstButton))
	assert.Equal(t, "disabled", s.String(domain.KeySecondButton))
	assert.Equal(t, "en", s.String(domain.KeyLanguage))
}

func TestFileOverridesDefaults(t *testing.T) {
	writeConfig(t, `
connectivity:
  discord_rpc:
    enabled: false
    activity:
      details_format: "{artist} - {title}"
general:
  language: de
`)

	s, err := NewStore(zap.NewNop())
	require.NoError(t, err)

	assert.False(t, s.Bool(domain.KeyEnabled))
	assert.Equal(t, "{artist} - {title}", s.String(domain.KeyDetailsFormat))
	assert.Equal(t, "de", s.String(domain.KeyLanguage))
	// Untouched keys keep their defaults
	assert.Equal(t, "stable", s.String(domain.KeyClient))
}

func TestEnvOverridesFile(t *testing.T) {
	writeConfig(t, `
connectivity:
  discord_rpc:
    enabled: false
`)
	t.Setenv("PRESENCED_CONNECTIVITY__DISCORD_RPC__ENABLED", "true")
	t.Setenv("PRESENCED_GENERAL__PRIVACY_ENABLED", "true")

	s, err := NewStore(zap.NewNop())
	require.NoError(t, err)

	assert.True(t, s.Bool(domain.KeyEnabled))
	assert.True(t, s.Bool(domain.KeyPrivacyEnabled))
}

func TestBadConfigFile(t *testing.T) {
	writeConfig(t, "connectivity: [not: valid")

	_, err := NewStore(zap.NewNop())
	assert.Error(t, err)
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"PRESENCED_CONNECTIVITY__DISCORD_RPC__ENABLED", "connectivity.discord_rpc.enabled"},
		{"PRESENCED_GENERAL__PRIVACY_ENABLED", "general.privacy_enabled"},
		{"PRESENCED_GENERAL__LANGUAGE", "general.language"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, envTransform(tt.in))
	}
}

func TestWatchReloadsOnChange(t *testing.T) {
	path := writeConfig(t, `
general:
  language: en
`)

	s, err := NewStore(zap.NewNop())
	require.NoError(t, err)

	changed := make(chan struct{}, 1)
	require.NoError(t, s.Watch(func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	}))

	require.NoError(t, os.WriteFile(path, []byte("general:\n  language: it\n"), 0o644))

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("config change was never observed")
	}
	assert.Equal(t, "it", s.String(domain.KeyLanguage))
}
