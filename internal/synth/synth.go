// Package synth converts playback snapshots into presence payloads.
// Synthesis is a pure transformation: no I/O, deterministic for a given
// snapshot, option set, and clock.
package synth

import (
	"strconv"
	"strings"
	"time"

	"github.com/soundlink/presenced/internal/domain"
)

// Button slot values as stored in settings
const (
	SlotDisabled   = "disabled"
	SlotListenOn   = "listenOnApp"
	SlotStorefront = "viewOnStore"
	SlotSongLink   = "viewOnSongLink"
)

const (
	// artworkSize is substituted for the {w}/{h} placeholders
	artworkSize = "1024"
	// fallbackImageKey is shown when the snapshot artwork is unusable
	fallbackImageKey = "player"
	// maxTextRunes is the service limit on the text lines
	maxTextRunes = 128
	// truncateRunes is how much survives truncation, before the ellipsis
	truncateRunes = 125
	// maxImageKeyRunes is the service limit on image keys
	maxImageKeyRunes = 256

	localeButtonPrefix = "buttons."
)

// Options carries the slice of user configuration synthesis depends on
type Options struct {
	DetailsFormat  string
	StateFormat    string
	ButtonsEnabled bool
	FirstButton    string
	SecondButton   string
	HideTimestamp  bool
	ClearOnPause   bool
	Language       string

	// ArtworkOverride, when set, replaces the snapshot artwork for this
	// synthesis pass (pre-resolved by the image proxy)
	ArtworkOverride string

	// Now anchors the progress bar to wall-clock time. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

// OptionsFromSettings reads the current synthesis options out of the
// settings store
func OptionsFromSettings(s domain.Settings) Options {
	return Options{
		DetailsFormat:  s.String(domain.KeyDetailsFormat),
		StateFormat:    s.String(domain.KeyStateFormat),
		ButtonsEnabled: s.Bool(domain.KeyButtonsEnabled),
		FirstButton:    s.String(domain.KeyFirstButton),
		SecondButton:   s.String(domain.KeySecondButton),
		HideTimestamp:  s.Bool(domain.KeyHideTimestamp),
		ClearOnPause:   s.Bool(domain.KeyClearOnPause),
		Language:       s.String(domain.KeyLanguage),
	}
}

// Synthesize derives a presence payload from a snapshot. The second
// return value is false when the update must be suppressed: either text
// line resolved to an empty string, so nothing valid can be published.
func Synthesize(snap domain.PlaybackSnapshot, loc domain.Localizer, opts Options) (domain.PresencePayload, bool) {
	sizer := strings.NewReplacer("{w}", artworkSize, "{h}", artworkSize)
	artwork := sizer.Replace(snap.ArtworkURL)
	if opts.ArtworkOverride != "" {
		artwork = opts.ArtworkOverride
	}

	p := domain.PresencePayload{
		Details:        opts.DetailsFormat,
		State:          opts.StateFormat,
		LargeImageKey:  artwork,
		LargeImageText: snap.Album,
		Instance:       false,
	}

	if opts.ButtonsEnabled && opts.FirstButton != SlotDisabled {
		p.Buttons = append(p.Buttons, buttonForSlot(snap.Links, loc, opts.Language, opts.FirstButton))
		if opts.SecondButton != SlotDisabled {
			p.Buttons = append(p.Buttons, buttonForSlot(snap.Links, loc, opts.Language, opts.SecondButton))
		}
	}

	// The progress bar is anchored to wall-clock time rather than the
	// snapshot's own clock, which tolerates playback-engine drift.
	if !opts.HideTimestamp && snap.Playing && snap.EndTime > 0 && snap.StartTime >= 0 {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		p.StartTimestamp = now().UnixMilli() - (snap.Duration - snap.Remaining)
		p.EndTimestamp = snap.EndTime
	}

	// Without clear-on-pause the presence stays visible while paused, so
	// show a play/pause cue instead.
	if !opts.ClearOnPause {
		if snap.Playing {
			p.SmallImageKey, p.SmallImageText = "play", "Playing"
		} else {
			p.SmallImageKey, p.SmallImageText = "pause", "Paused"
		}
	}

	vars := [...]struct{ placeholder, value string }{
		{"{artist}", snap.Artist},
		{"{composer}", snap.Composer},
		{"{title}", snap.Title},
		{"{album}", snap.Album},
		{"{trackNumber}", strconv.Itoa(snap.TrackNumber)},
	}
	for _, v := range vars {
		p.Details = strings.Replace(p.Details, v.placeholder, v.value, 1)
		p.State = strings.Replace(p.State, v.placeholder, v.value, 1)
	}

	p.Details = truncate(p.Details)
	p.State = truncate(p.State)
	p.LargeImageText = truncate(p.LargeImageText)

	if p.LargeImageKey == "" || len([]rune(p.LargeImageKey)) > maxImageKeyRunes {
		p.LargeImageKey = fallbackImageKey
	}

	// Suppression is decided on the resolved text lines; the no-artist
	// omission below is a valid payload shape, not an empty one.
	if p.Details == "" || p.State == "" {
		return domain.PresencePayload{}, false
	}

	if snap.Artist == "" {
		p.State = ""
	}
	if len([]rune(p.LargeImageText)) < 2 {
		p.LargeImageText = ""
	}

	return p, true
}

// buttonForSlot resolves one button slot into a label/URL pair
func buttonForSlot(links domain.TrackLinks, loc domain.Localizer, lang, slot string) domain.Button {
	b := domain.Button{Label: loc.Lookup(lang, localeButtonPrefix+slot)}
	switch slot {
	case SlotListenOn:
		b.URL = links.App
	case SlotStorefront:
		b.URL = links.Storefront
	case SlotSongLink:
		b.URL = links.SongLink
	}
	return b
}

// truncate enforces the service text limit: strings reaching 128 runes
// are cut to 125 plus an ellipsis
func truncate(s string) string {
	r := []rune(s)
	if len(r) < maxTextRunes {
		return s
	}
	return string(r[:truncateRunes]) + "..."
}
