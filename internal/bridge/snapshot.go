//go:build linux
// +build linux

package bridge

import (
	"math"

	"github.com/godbus/dbus/v5"

	"github.com/soundlink/presenced/internal/domain"
)

// decodeSnapshot converts the a{sv} attribute map from the player into a
// typed snapshot. Missing or wrong-typed values decode to their zero
// value; the player may omit fields it has no data for.
func decodeSnapshot(attrs map[string]dbus.Variant) domain.PlaybackSnapshot {
	return domain.PlaybackSnapshot{
		Title:       asString(attrs, "title"),
		Artist:      asString(attrs, "artist"),
		Composer:    asString(attrs, "composer"),
		Album:       asString(attrs, "album"),
		TrackNumber: int(asInt64(attrs, "trackNumber")),
		ArtworkURL:  asString(attrs, "artworkUrl"),
		Links: domain.TrackLinks{
			App:        asString(attrs, "appUrl"),
			Storefront: asString(attrs, "storeUrl"),
			SongLink:   asString(attrs, "songLinkUrl"),
		},
		Playing:   asBool(attrs, "playing"),
		StartTime: asInt64(attrs, "startTime"),
		EndTime:   asInt64(attrs, "endTime"),
		Duration:  asInt64(attrs, "duration"),
		Remaining: asInt64(attrs, "remainingTime"),
	}
}

func asString(attrs map[string]dbus.Variant, key string) string {
	if v, ok := attrs[key]; ok {
		if s, ok := v.Value().(string); ok {
			return s
		}
	}
	return ""
}

func asBool(attrs map[string]dbus.Variant, key string) bool {
	if v, ok := attrs[key]; ok {
		if b, ok := v.Value().(bool); ok {
			return b
		}
	}
	return false
}

// asInt64 accepts the numeric types players actually send over the bus
func asInt64(attrs map[string]dbus.Variant, key string) int64 {
	v, ok := attrs[key]
	if !ok {
		return 0
	}
	switch n := v.Value().(type) {
	case int64:
		return n
	case int32:
		return int64(n)
	case int16:
		return int64(n)
	case uint64:
		return int64(n)
	case uint32:
		return int64(n)
	case uint16:
		return int64(n)
	case float64:
		// NaN, infinities, and out-of-range doubles convert to an
		// implementation-defined value; treat them as absent instead
		if math.IsNaN(n) || n < float64(math.MinInt64) || n >= float64(math.MaxInt64) {
			return 0
		}
		return int64(n)
	case int:
		return int64(n)
	default:
		return 0
	}
}
