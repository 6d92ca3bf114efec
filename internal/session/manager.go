// Package session owns the presence session lifecycle: connecting and
// reconnecting the remote client, gating updates on session readiness,
// and caching the last good payload for restore.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
	"github.com/soundlink/presenced/internal/synth"
)

// The two client identities the service knows this application by
const (
	stableIdentity = "911790844204437504"
	betaIdentity   = "886578863147192350"
)

// Manager orchestrates one logical presence session at a time. All
// mutation of session state and the activity cache happens behind mu:
// updates arrive from the control surface, ready callbacks from the
// client's login goroutine, and reloads from the config watcher.
type Manager struct {
	logger   *zap.Logger
	settings domain.Settings
	clients  domain.ClientFactory
	locale   domain.Localizer
	resolver domain.ArtworkResolver
	now      func() time.Time

	mu          sync.Mutex
	state       domain.SessionState
	ready       bool
	client      domain.SessionClient
	cache       domain.PresencePayload
	artOverride string
	notifier    domain.Notifier
	// generation invalidates ready callbacks from clients that a later
	// reload has already destroyed
	generation uint64
}

// NewManager creates the session manager. The notifier is attached later
// by the control surface via SetNotifier.
func NewManager(
	logger *zap.Logger,
	settings domain.Settings,
	clients domain.ClientFactory,
	loc domain.Localizer,
	resolver domain.ArtworkResolver,
) *Manager {
	return &Manager{
		logger:   logger,
		settings: settings,
		clients:  clients,
		locale:   loc,
		resolver: resolver,
		now:      time.Now,
		state:    domain.StateDisconnected,
	}
}

// SetNotifier attaches the outbound UI notifier
func (m *Manager) SetNotifier(n domain.Notifier) {
	m.mu.Lock()
	m.notifier = n
	m.mu.Unlock()
}

// State returns the current session state
func (m *Manager) State() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Connect establishes the presence session. No-op when the feature is
// disabled in settings. Never fails fatally: authentication retries are
// delegated to the client, so Connect only ever fails to become
// connected.
func (m *Manager) Connect() {
	m.start(false)
}

// Reload tears down the existing session, if any, and repeats the
// handshake. When notify is set, the UI is informed once authentication
// succeeds. Idempotent.
func (m *Manager) Reload(notify bool) {
	m.logger.Info("Reloading presence session")
	m.start(notify)
}

// start replaces the active client with a fresh one and begins login.
// Destroying the previous client first guarantees two sessions are never
// owned concurrently, even when a login is still in flight.
func (m *Manager) start(notify bool) {
	m.mu.Lock()

	if m.client != nil {
		m.client.Destroy()
		m.client = nil
	}
	m.state = domain.StateDisconnected
	m.ready = false
	m.generation++

	if !m.settings.Bool(domain.KeyEnabled) {
		m.mu.Unlock()
		m.logger.Info("Presence disabled in settings, not connecting")
		return
	}

	client := m.clients.New()
	m.client = client
	m.state = domain.StateAuthenticating
	gen := m.generation
	identity := m.identity()
	m.mu.Unlock()

	client.Login(identity, func(user domain.UserIdentity) {
		m.onReady(gen, notify, user)
	})
}

// onReady runs when a client's login handshake completes. Stale
// callbacks from superseded clients are dropped by generation.
func (m *Manager) onReady(gen uint64, notify bool, user domain.UserIdentity) {
	m.mu.Lock()
	if gen != m.generation || m.client == nil {
		m.mu.Unlock()
		m.logger.Debug("Ignoring ready from superseded session client")
		return
	}
	m.state = domain.StateConnected
	m.ready = true
	client := m.client
	cache := m.cache
	private := m.settings.Bool(domain.KeyPrivacyEnabled)
	notifier := m.notifier
	m.mu.Unlock()

	m.logger.Info("Presence session ready", zap.String("user", user.ID))

	if notify && notifier != nil {
		notifier.SessionReady(user)
	}

	if !cache.Empty() && !private {
		m.logger.Info("Restoring cached presence")
		if err := client.SetActivity(cache); err != nil {
			m.logger.Warn("Failed to restore cached presence", zap.Error(err))
		}
	}
}

// Update synthesizes a payload from the snapshot and pushes it to the
// remote session. Before the first successful authentication the result
// is buffered into the cache instead of being sent; identical payloads
// and privacy mode suppress the network push but still refresh the
// cache, so a later reconnect or privacy-off restores the latest state.
func (m *Manager) Update(snap domain.PlaybackSnapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()

	opts := synth.OptionsFromSettings(m.settings)
	opts.Now = m.now
	opts.ArtworkOverride = m.artOverride
	m.artOverride = "" // consumed by this synthesis pass

	payload, ok := synth.Synthesize(snap, m.locale, opts)

	if !m.ready {
		if ok {
			m.cache = payload
		} else {
			m.cache = domain.PresencePayload{}
		}
		m.logger.Debug("Session not ready, buffered update")
		return
	}

	if !ok {
		if opts.ClearOnPause && !snap.Playing {
			m.clearLocked()
		}
		m.cache = domain.PresencePayload{}
		m.logger.Debug("Suppressed invalid presence update")
		return
	}

	if opts.ClearOnPause && !snap.Playing {
		m.clearLocked()
		m.cache = payload
		return
	}

	if !payload.Equal(m.cache) && !m.settings.Bool(domain.KeyPrivacyEnabled) && m.client != nil {
		if err := m.client.SetActivity(payload); err != nil {
			m.logger.Warn("Failed to push presence update", zap.Error(err))
		} else {
			m.logger.Debug("Presence updated",
				zap.String("details", payload.Details),
				zap.String("state", payload.State))
		}
	}
	m.cache = payload
}

// SetPrivacy toggles privacy mode. Enabling clears the remote presence
// immediately so identity never leaks while private; disabling restores
// the last non-empty cached payload.
func (m *Manager) SetPrivacy(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if enabled {
		m.logger.Info("Privacy mode enabled, clearing presence")
		m.clearLocked()
		return
	}
	if !m.cache.Empty() && m.ready && m.client != nil {
		m.logger.Info("Privacy mode disabled, restoring presence")
		if err := m.client.SetActivity(m.cache); err != nil {
			m.logger.Warn("Failed to restore presence", zap.Error(err))
		}
	}
}

// ResolveArtwork rewrites the artwork URL through the image proxy and
// applies it to the live payload. Skipped entirely in privacy mode. The
// resolved URL also overrides the artwork field of the next synthesis
// pass.
func (m *Manager) ResolveArtwork(ctx context.Context, artworkURL string) {
	if m.settings.Bool(domain.KeyPrivacyEnabled) {
		m.logger.Debug("Privacy mode on, skipping artwork resolution")
		return
	}

	resolved, err := m.resolver.Resolve(ctx, artworkURL)
	if err != nil {
		m.logger.Warn("Artwork resolution failed", zap.Error(err))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.artOverride = resolved
	m.cache.LargeImageKey = resolved
	if m.ready && !m.cache.Empty() && m.client != nil {
		if err := m.client.SetActivity(m.cache); err != nil {
			m.logger.Warn("Failed to push resolved artwork", zap.Error(err))
		}
	}
}

// Shutdown destroys the active client. Idempotent.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		m.client.Destroy()
		m.client = nil
	}
	m.state = domain.StateDisconnected
	m.ready = false
	m.logger.Info("Presence session shut down")
}

// clearLocked clears the remote presence; mu must be held
func (m *Manager) clearLocked() {
	if m.client == nil {
		return
	}
	if err := m.client.ClearActivity(); err != nil {
		m.logger.Warn("Failed to clear presence", zap.Error(err))
	}
}

// identity maps the settings choice onto the fixed client identities
func (m *Manager) identity() string {
	if m.settings.String(domain.KeyClient) == "stable" {
		return stableIdentity
	}
	return betaIdentity
}
