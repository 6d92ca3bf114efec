package domain

// SessionState represents the lifecycle of the presence session
type SessionState int

const (
	// StateDisconnected indicates no session client exists
	StateDisconnected SessionState = iota
	// StateAuthenticating indicates a login handshake is outstanding
	StateAuthenticating
	// StateConnected indicates the session is authenticated and usable
	StateConnected
)

// String returns a human-readable state name for logging
func (s SessionState) String() string {
	switch s {
	case StateAuthenticating:
		return "authenticating"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// TrackLinks holds the external URLs attached to a track
type TrackLinks struct {
	// App is the deep link back into the player application
	App string
	// Storefront is the external music-store page for the track
	Storefront string
	// SongLink is the cross-service aggregator page for the track
	SongLink string
}

// PlaybackSnapshot captures the player's state at a single point in time.
// It is immutable once produced and superseded by the next snapshot.
type PlaybackSnapshot struct {
	// Title of the currently playing track
	Title string
	// Artist name; may be empty for untagged media
	Artist string
	// Composer name
	Composer string
	// Album name
	Album string
	// TrackNumber within the album
	TrackNumber int
	// ArtworkURL is the artwork template, with {w}/{h} size placeholders
	ArtworkURL string
	// Links are the external URLs for the track
	Links TrackLinks
	// Playing is true when the player is playing, false when paused
	Playing bool
	// StartTime is the track start in unix milliseconds
	StartTime int64
	// EndTime is the projected track end in unix milliseconds
	EndTime int64
	// Duration is the track length in milliseconds
	Duration int64
	// Remaining is the unplayed portion in milliseconds
	Remaining int64
}

// Button is one presence button (label plus target URL)
type Button struct {
	Label string
	URL   string
}

// PresencePayload is a synthesized presence update ready for the remote
// session. Zero timestamps mean "not set"; an empty Buttons slice means
// no buttons are shown.
type PresencePayload struct {
	Details        string
	State          string
	LargeImageKey  string
	LargeImageText string
	SmallImageKey  string
	SmallImageText string
	StartTimestamp int64
	EndTimestamp   int64
	Buttons        []Button
	Instance       bool
}

// Empty reports whether the payload carries nothing worth restoring.
// Both text lines must be present for a payload to count as non-empty.
func (p PresencePayload) Empty() bool {
	return p.Details == "" || p.State == ""
}

// Equal compares two payloads by value, buttons included. The remote
// update is skipped when the new payload equals the cached one, so this
// must not rely on pointer identity.
func (p PresencePayload) Equal(o PresencePayload) bool {
	if p.Details != o.Details ||
		p.State != o.State ||
		p.LargeImageKey != o.LargeImageKey ||
		p.LargeImageText != o.LargeImageText ||
		p.SmallImageKey != o.SmallImageKey ||
		p.SmallImageText != o.SmallImageText ||
		p.StartTimestamp != o.StartTimestamp ||
		p.EndTimestamp != o.EndTimestamp ||
		p.Instance != o.Instance {
		return false
	}
	if len(p.Buttons) != len(o.Buttons) {
		return false
	}
	for i := range p.Buttons {
		if p.Buttons[i] != o.Buttons[i] {
			return false
		}
	}
	return true
}

// UserIdentity describes the account the session authenticated as
type UserIdentity struct {
	// ID is the service-side identifier of the authenticated account
	ID string
	// Username is the display name, when the wire client surfaces one
	Username string
}
