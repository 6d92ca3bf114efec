//go:build linux
// +build linux

// Package bridge exposes the control surface over the session bus: the
// player UI pushes playback snapshots and control requests through the
// org.soundlink.Presence1 interface, and receives a SessionReady signal
// after a requested reconnect.
package bridge

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
)

const (
	// BusName is the well-known name claimed on the session bus
	BusName = "org.soundlink.Presence1"
	// ObjectPath is where the control object lives
	ObjectPath = dbus.ObjectPath("/org/soundlink/Presence1")
	// InterfaceName is the exported control interface
	InterfaceName = "org.soundlink.Presence1"

	// artworkTimeout bounds the fire-and-forget proxy call
	artworkTimeout = 30 * time.Second
)

// Controller is the subset of the session manager the bridge drives
type Controller interface {
	Update(snap domain.PlaybackSnapshot)
	Reload(notify bool)
	SetPrivacy(enabled bool)
	ResolveArtwork(ctx context.Context, artworkURL string)
	SetNotifier(n domain.Notifier)
}

// Conn defines the D-Bus operations the bridge needs. This abstraction
// allows us to mock the bus in tests; *dbus.Conn satisfies it.
type Conn interface {
	ExportMethodTable(methods map[string]interface{}, path dbus.ObjectPath, iface string) error
	Export(v interface{}, path dbus.ObjectPath, iface string) error
	RequestName(name string, flags dbus.RequestNameFlags) (dbus.RequestNameReply, error)
	ReleaseName(name string) (dbus.ReleaseNameReply, error)
	Emit(path dbus.ObjectPath, name string, values ...interface{}) error
	Close() error
}

// Bridge is the D-Bus control surface
type Bridge struct {
	logger     *zap.Logger
	controller Controller

	mu      sync.Mutex
	conn    Conn
	running bool
}

// New creates the bridge. The bus connection is established in Start.
func New(logger *zap.Logger, controller Controller) *Bridge {
	return &Bridge{
		logger:     logger,
		controller: controller,
	}
}

// Start connects to the session bus, exports the control interface, and
// claims the well-known name
func (b *Bridge) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.running {
		return nil
	}

	if b.conn == nil {
		conn, err := dbus.SessionBus()
		if err != nil {
			return fmt.Errorf("session bus connection failed: %w", err)
		}
		b.conn = conn
	}

	methods := map[string]interface{}{
		"PlaybackChanged": b.playbackChanged,
		"Reload":          b.reload,
		"SetPrivacyMode":  b.setPrivacyMode,
		"ResolveArtwork":  b.resolveArtwork,
	}
	if err := b.conn.ExportMethodTable(methods, ObjectPath, InterfaceName); err != nil {
		return fmt.Errorf("failed to export control interface: %w", err)
	}

	node := &introspect.Node{
		Name: string(ObjectPath),
		Interfaces: []introspect.Interface{
			introspect.IntrospectData,
			{
				Name:    InterfaceName,
				Methods: controlMethods(),
				Signals: controlSignals(),
			},
		},
	}
	if err := b.conn.Export(introspect.NewIntrospectable(node), ObjectPath,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		return fmt.Errorf("failed to export introspectable: %w", err)
	}

	reply, err := b.conn.RequestName(BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return fmt.Errorf("failed to request bus name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		return fmt.Errorf("bus name %s already taken", BusName)
	}

	b.controller.SetNotifier(b)
	b.running = true

	b.logger.Info("Control surface started",
		zap.String("bus_name", BusName),
		zap.String("path", string(ObjectPath)))
	return nil
}

// Stop releases the bus name. The session bus connection itself is
// shared, so it is not closed.
func (b *Bridge) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return nil
	}
	b.running = false

	if _, err := b.conn.ReleaseName(BusName); err != nil {
		b.logger.Warn("Failed to release bus name", zap.Error(err))
	}

	b.logger.Info("Control surface stopped")
	return nil
}

// SessionReady emits the ready signal carrying the authenticated
// identity. Implements domain.Notifier.
func (b *Bridge) SessionReady(user domain.UserIdentity) {
	b.mu.Lock()
	conn := b.conn
	running := b.running
	b.mu.Unlock()

	if !running || conn == nil {
		return
	}
	if err := conn.Emit(ObjectPath, InterfaceName+".SessionReady", user.ID); err != nil {
		b.logger.Warn("Failed to emit SessionReady", zap.Error(err))
	}
}

// playbackChanged handles a playback snapshot from the player.
// D-Bus method: PlaybackChanged(a{sv})
func (b *Bridge) playbackChanged(attrs map[string]dbus.Variant) *dbus.Error {
	snap := decodeSnapshot(attrs)
	b.logger.Debug("Playback changed",
		zap.String("title", snap.Title),
		zap.String("artist", snap.Artist),
		zap.Bool("playing", snap.Playing))
	b.controller.Update(snap)
	return nil
}

// reload handles a session reload request.
// D-Bus method: Reload(b)
func (b *Bridge) reload(notify bool) *dbus.Error {
	b.controller.Reload(notify)
	return nil
}

// setPrivacyMode handles a privacy toggle.
// D-Bus method: SetPrivacyMode(b)
func (b *Bridge) setPrivacyMode(enabled bool) *dbus.Error {
	b.controller.SetPrivacy(enabled)
	return nil
}

// resolveArtwork handles an artwork resolution request. The proxy call
// runs detached: the caller never observes a result, and a slow proxy
// must not stall the bus handler.
func (b *Bridge) resolveArtwork(artworkURL string) *dbus.Error {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), artworkTimeout)
		defer cancel()
		b.controller.ResolveArtwork(ctx, artworkURL)
	}()
	return nil
}

// controlMethods returns the D-Bus method introspection data
func controlMethods() []introspect.Method {
	return []introspect.Method{
		{
			Name: "PlaybackChanged",
			Args: []introspect.Arg{
				{Name: "attributes", Type: "a{sv}", Direction: "in"},
			},
		},
		{
			Name: "Reload",
			Args: []introspect.Arg{
				{Name: "notify", Type: "b", Direction: "in"},
			},
		},
		{
			Name: "SetPrivacyMode",
			Args: []introspect.Arg{
				{Name: "enabled", Type: "b", Direction: "in"},
			},
		},
		{
			Name: "ResolveArtwork",
			Args: []introspect.Arg{
				{Name: "url", Type: "s", Direction: "in"},
			},
		},
	}
}

// controlSignals returns the D-Bus signal introspection data
func controlSignals() []introspect.Signal {
	return []introspect.Signal{
		{
			Name: "SessionReady",
			Args: []introspect.Arg{
				{Name: "user", Type: "s"},
			},
		},
	}
}
