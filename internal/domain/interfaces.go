package domain

import "context"

// Settings defines read-only access to the host application's key/value
// configuration store. Keys are dotted paths (see keys.go).
//
//go:generate mockgen -destination=mocks/mocks.go -package=mocks github.com/soundlink/presenced/internal/domain Settings,SessionClient,ClientFactory,WireClient,Notifier,ArtworkResolver,Localizer
type Settings interface {
	// Bool returns the boolean value stored under key (false if unset)
	Bool(key string) bool

	// String returns the string value stored under key ("" if unset)
	String(key string) string
}

// SessionClient is the remote session abstraction the manager drives.
// It owns all retry and timeout policy: Login keeps retrying internally
// until it succeeds or the client is destroyed, and never reports a
// fatal failure to the caller.
type SessionClient interface {
	// Login starts the authentication handshake for the given client
	// identity. It returns immediately; onReady fires at most once, when
	// the session becomes usable.
	Login(identity string, onReady func(UserIdentity))

	// SetActivity pushes a presence payload to the remote session
	SetActivity(p PresencePayload) error

	// ClearActivity removes the current presence from the remote session
	ClearActivity() error

	// Destroy tears the session down and stops any in-flight login retry.
	// Safe to call more than once.
	Destroy()
}

// ClientFactory creates a fresh SessionClient. The manager owns each
// instance exclusively and replaces it on reload rather than reusing it.
type ClientFactory interface {
	New() SessionClient
}

// WireClient is the low-level presence-service client a SessionClient
// wraps. Implementations own the wire protocol; one login attempt per
// Login call, no retry.
type WireClient interface {
	// Login performs a single authentication attempt
	Login(identity string) (UserIdentity, error)

	// SetActivity pushes a presence payload over the wire
	SetActivity(p PresencePayload) error

	// ClearActivity removes the published presence
	ClearActivity() error

	// Close releases the wire connection
	Close()
}

// Notifier receives session lifecycle events destined for the UI layer
type Notifier interface {
	// SessionReady informs the UI that a requested (re)authentication
	// completed, carrying the authenticated identity
	SessionReady(user UserIdentity)
}

// ArtworkResolver rewrites a raw artwork URL into one the presence
// service can display, via the external image proxy
type ArtworkResolver interface {
	Resolve(ctx context.Context, artworkURL string) (string, error)
}

// Localizer looks up UI strings from the per-language string tables
type Localizer interface {
	// Lookup returns the string stored under key for lang, falling back
	// to English and finally to the key itself
	Lookup(lang, key string) string
}
