package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

func TestAppOptionsGraph(t *testing.T) {
	require.NoError(t, fx.ValidateApp(AppOptions))
}

func TestNewLoggerDefaults(t *testing.T) {
	t.Setenv(logLevelEnv, "")
	t.Setenv(logFileEnv, "")

	logger, err := newLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger.Check(zapcore.InfoLevel, "info is enabled"))
	assert.Nil(t, logger.Check(zapcore.DebugLevel, "debug is suppressed"))
}

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv(logLevelEnv, "error")

	logger, err := newLogger()
	require.NoError(t, err)
	assert.Nil(t, logger.Check(zapcore.InfoLevel, "info is suppressed"))
	assert.NotNil(t, logger.Check(zapcore.ErrorLevel, "error is enabled"))
}

func TestNewLoggerFileTee(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "presenced.log")
	t.Setenv(logFileEnv, path)

	logger, err := newLogger()
	require.NoError(t, err)
	logger.Info("written to file")

	// The log directory is created eagerly even before the first rotation
	assert.DirExists(t, filepath.Dir(path))
}

func TestNewLoggerBadLevelFallsBack(t *testing.T) {
	t.Setenv(logLevelEnv, "shouting")

	logger, err := newLogger()
	require.NoError(t, err)
	assert.NotNil(t, logger.Check(zapcore.InfoLevel, "info still enabled"))
}
