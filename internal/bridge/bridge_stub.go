//go:build !linux
// +build !linux

package bridge

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
)

// Controller is the subset of the session manager the bridge drives
type Controller interface {
	Update(snap domain.PlaybackSnapshot)
	Reload(notify bool)
	SetPrivacy(enabled bool)
	ResolveArtwork(ctx context.Context, artworkURL string)
	SetNotifier(n domain.Notifier)
}

// Bridge stub for non-Linux platforms
type Bridge struct {
	logger     *zap.Logger
	controller Controller
}

// New creates a stub bridge that fails to start on non-Linux platforms
func New(logger *zap.Logger, controller Controller) *Bridge {
	return &Bridge{logger: logger, controller: controller}
}

// Start returns an error indicating the session-bus control surface is
// only available on Linux
func (b *Bridge) Start() error {
	return fmt.Errorf("the session-bus control surface is only supported on Linux systems")
}

// Stop is a no-op on non-Linux platforms
func (b *Bridge) Stop() error {
	return nil
}

// SessionReady is a no-op on non-Linux platforms
func (b *Bridge) SessionReady(user domain.UserIdentity) {}
