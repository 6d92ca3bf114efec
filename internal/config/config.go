// Package config implements the daemon's key/value settings store on a
// layered koanf instance: built-in defaults, an optional YAML file, and
// environment overrides, in ascending precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
)

// ConfigPathEnvVar overrides the config file search path
const ConfigPathEnvVar = "PRESENCED_CONFIG"

// envPrefix marks environment variables that feed the store. A double
// underscore separates path segments, since key names themselves contain
// single underscores (PRESENCED_GENERAL__PRIVACY_ENABLED).
const envPrefix = "PRESENCED_"

// defaultConfigPaths lists the config file locations searched in order
var defaultConfigPaths = []string{
	"presenced.yaml",
	"/etc/presenced/config.yaml",
}

// defaults returns the built-in value for every key the core reads
func defaults() map[string]interface{} {
	return map[string]interface{}{
		domain.KeyEnabled:        true,
		domain.KeyClient:         "stable",
		domain.KeyClearOnPause:   false,
		domain.KeyHideTimestamp:  false,
		domain.KeyDetailsFormat:  "{title}",
		domain.KeyStateFormat:    "by {artist}",
		domain.KeyButtonsEnabled: true,
		domain.KeyFirstButton:    "listenOnApp",
		domain.KeySecondButton:   "disabled",
		domain.KeyPrivacyEnabled: false,
		domain.KeyLanguage:       "en",
	}
}

// Store is the koanf-backed implementation of domain.Settings. Reads and
// reloads are serialized behind the RWMutex since the file watcher swaps
// the koanf instance from its own goroutine.
type Store struct {
	logger *zap.Logger

	mu   sync.RWMutex
	k    *koanf.Koanf
	path string
}

// NewStore loads the layered configuration and returns the store
func NewStore(logger *zap.Logger) (*Store, error) {
	s := &Store{
		logger: logger,
		path:   findConfigFile(),
	}
	k, err := s.load()
	if err != nil {
		return nil, err
	}
	s.k = k

	logger.Info("Configuration loaded",
		zap.String("file", s.path),
		zap.Bool("presence_enabled", k.Bool(domain.KeyEnabled)))
	return s, nil
}

// load builds a fresh koanf instance from all three layers
func (s *Store) load() (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if s.path != "" {
		if err := k.Load(file.Provider(s.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", s.path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	return k, nil
}

// Bool returns the boolean value stored under key
func (s *Store) Bool(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.k.Bool(key)
}

// String returns the string value stored under key
func (s *Store) String(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.k.String(key)
}

// Watch reloads the store whenever the config file changes and then
// invokes onChange. A reload that fails to parse keeps the previous
// values. No-op when no config file was found.
func (s *Store) Watch(onChange func()) error {
	if s.path == "" {
		s.logger.Debug("No config file present, hot reload disabled")
		return nil
	}

	provider := file.Provider(s.path)
	return provider.Watch(func(event interface{}, err error) {
		if err != nil {
			s.logger.Warn("Config watch error", zap.Error(err))
			return
		}
		k, loadErr := s.load()
		if loadErr != nil {
			s.logger.Warn("Config reload failed, keeping previous values", zap.Error(loadErr))
			return
		}
		s.mu.Lock()
		s.k = k
		s.mu.Unlock()

		s.logger.Info("Configuration reloaded", zap.String("file", s.path))
		if onChange != nil {
			onChange()
		}
	})
}

// findConfigFile returns the first config file that exists, or ""
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	paths := defaultConfigPaths
	if home, err := os.UserHomeDir(); err == nil {
		paths = append([]string{filepath.Join(home, ".config", "presenced", "config.yaml")}, paths...)
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransform maps PRESENCED_CONNECTIVITY__DISCORD_RPC__ENABLED to
// connectivity.discord_rpc.enabled
func envTransform(key string) string {
	key = strings.TrimPrefix(key, envPrefix)
	return strings.ReplaceAll(strings.ToLower(key), "__", ".")
}
