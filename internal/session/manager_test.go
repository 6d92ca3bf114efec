package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
	"github.com/soundlink/presenced/internal/domain/mocks"
)

// fakeSettings is a map-backed settings store. The manager re-reads
// settings on every operation, so a hand-rolled fake keeps the tests
// free of AnyTimes noise.
type fakeSettings struct {
	bools   map[string]bool
	strings map[string]string
}

func (f *fakeSettings) Bool(key string) bool     { return f.bools[key] }
func (f *fakeSettings) String(key string) string { return f.strings[key] }

func defaultSettings() *fakeSettings {
	return &fakeSettings{
		bools: map[string]bool{
			domain.KeyEnabled: true,
		},
		strings: map[string]string{
			domain.KeyClient:        "stable",
			domain.KeyDetailsFormat: "{title} by {artist}",
			domain.KeyStateFormat:   "{album}",
		},
	}
}

type echoLocalizer struct{}

func (echoLocalizer) Lookup(lang, key string) string { return key }

type fixture struct {
	settings *fakeSettings
	factory  *mocks.MockClientFactory
	client   *mocks.MockSessionClient
	resolver *mocks.MockArtworkResolver
	manager  *Manager
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		settings: defaultSettings(),
		factory:  mocks.NewMockClientFactory(ctrl),
		client:   mocks.NewMockSessionClient(ctrl),
		resolver: mocks.NewMockArtworkResolver(ctrl),
	}
	f.manager = NewManager(zap.NewNop(), f.settings, f.factory, echoLocalizer{}, f.resolver)
	f.manager.now = func() time.Time { return time.UnixMilli(500_000) }
	return f
}

// connect brings the session up and returns the captured ready callback
// without invoking it
func (f *fixture) connect(t *testing.T) func(domain.UserIdentity) {
	t.Helper()
	var ready func(domain.UserIdentity)
	f.factory.EXPECT().New().Return(f.client)
	f.client.EXPECT().Login(stableIdentity, gomock.Any()).
		Do(func(_ string, cb func(domain.UserIdentity)) { ready = cb })
	f.manager.Connect()
	require.NotNil(t, ready)
	return ready
}

func playingSnapshot() domain.PlaybackSnapshot {
	return domain.PlaybackSnapshot{
		Title:      "T",
		Artist:     "A",
		Album:      "Alb",
		ArtworkURL: "https://art.example/c.jpg",
		Playing:    true,
		StartTime:  1_000,
		EndTime:    201_000,
		Duration:   200_000,
		Remaining:  50_000,
	}
}

func TestConnectDisabled(t *testing.T) {
	f := newFixture(t)
	f.settings.bools[domain.KeyEnabled] = false

	// No factory expectation: a client must never be created
	f.manager.Connect()
	assert.Equal(t, domain.StateDisconnected, f.manager.State())
}

func TestConnectTransitionsToConnected(t *testing.T) {
	f := newFixture(t)
	ready := f.connect(t)
	assert.Equal(t, domain.StateAuthenticating, f.manager.State())

	ready(domain.UserIdentity{ID: "u1"})
	assert.Equal(t, domain.StateConnected, f.manager.State())
}

func TestConnectBetaIdentity(t *testing.T) {
	f := newFixture(t)
	f.settings.strings[domain.KeyClient] = "beta"

	f.factory.EXPECT().New().Return(f.client)
	f.client.EXPECT().Login(betaIdentity, gomock.Any())
	f.manager.Connect()
}

func TestUpdateBuffersUntilReady(t *testing.T) {
	f := newFixture(t)
	ready := f.connect(t)

	// Not ready yet: the update lands in the cache, not on the wire
	f.manager.Update(playingSnapshot())

	f.client.EXPECT().SetActivity(gomock.Any()).
		DoAndReturn(func(p domain.PresencePayload) error {
			assert.Equal(t, "T by A", p.Details)
			assert.Equal(t, "Alb", p.State)
			return nil
		})
	ready(domain.UserIdentity{ID: "u1"})
}

func TestUpdateDeduplicates(t *testing.T) {
	f := newFixture(t)
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	f.client.EXPECT().SetActivity(gomock.Any()).Return(nil).Times(1)
	f.manager.Update(playingSnapshot())
	f.manager.Update(playingSnapshot())
}

func TestUpdatePushesChangedPayload(t *testing.T) {
	f := newFixture(t)
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	f.client.EXPECT().SetActivity(gomock.Any()).Return(nil).Times(2)
	f.manager.Update(playingSnapshot())

	next := playingSnapshot()
	next.Title = "T2"
	f.manager.Update(next)
}

func TestUpdateClearOnPause(t *testing.T) {
	f := newFixture(t)
	f.settings.bools[domain.KeyClearOnPause] = true
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	snap := playingSnapshot()
	snap.Playing = false

	// Paused with clear-on-pause: the remote presence is cleared and
	// nothing is pushed
	f.client.EXPECT().ClearActivity().Return(nil)
	f.manager.Update(snap)

	// Resuming pushes the cached payload's successor as usual
	f.client.EXPECT().SetActivity(gomock.Any()).Return(nil)
	f.manager.Update(playingSnapshot())
}

func TestUpdateSuppressedResetsCache(t *testing.T) {
	f := newFixture(t)
	f.settings.strings[domain.KeyDetailsFormat] = "{title}"
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	f.client.EXPECT().SetActivity(gomock.Any()).Return(nil).Times(2)
	f.manager.Update(playingSnapshot())

	// Title resolves empty, so the update is suppressed and the cache
	// forgets the previous payload
	empty := playingSnapshot()
	empty.Title = ""
	f.manager.Update(empty)

	// The original snapshot no longer matches the cache and is re-sent
	f.manager.Update(playingSnapshot())
}

func TestPrivacyClearsAndRestores(t *testing.T) {
	f := newFixture(t)
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	f.client.EXPECT().SetActivity(gomock.Any()).Return(nil)
	f.manager.Update(playingSnapshot())

	f.client.EXPECT().ClearActivity().Return(nil)
	f.manager.SetPrivacy(true)

	f.client.EXPECT().SetActivity(gomock.Any()).
		DoAndReturn(func(p domain.PresencePayload) error {
			assert.Equal(t, "T by A", p.Details)
			return nil
		})
	f.manager.SetPrivacy(false)
}

func TestPrivacyBlocksPushButCaches(t *testing.T) {
	f := newFixture(t)
	f.settings.bools[domain.KeyPrivacyEnabled] = true
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	// No SetActivity expectation: privacy suppresses the push
	f.manager.Update(playingSnapshot())

	// Once privacy lifts, the cached payload is restored
	f.settings.bools[domain.KeyPrivacyEnabled] = false
	f.client.EXPECT().SetActivity(gomock.Any()).Return(nil)
	f.manager.SetPrivacy(false)
}

func TestReloadSupersedesStaleReady(t *testing.T) {
	f := newFixture(t)
	staleReady := f.connect(t)

	ctrl := gomock.NewController(t)
	second := mocks.NewMockSessionClient(ctrl)
	var freshReady func(domain.UserIdentity)
	f.client.EXPECT().Destroy()
	f.factory.EXPECT().New().Return(second)
	second.EXPECT().Login(stableIdentity, gomock.Any()).
		Do(func(_ string, cb func(domain.UserIdentity)) { freshReady = cb })

	notifier := mocks.NewMockNotifier(ctrl)
	f.manager.SetNotifier(notifier)
	f.manager.Reload(true)

	// The superseded client's callback must be ignored
	staleReady(domain.UserIdentity{ID: "stale"})
	assert.Equal(t, domain.StateAuthenticating, f.manager.State())

	notifier.EXPECT().SessionReady(domain.UserIdentity{ID: "fresh"})
	freshReady(domain.UserIdentity{ID: "fresh"})
	assert.Equal(t, domain.StateConnected, f.manager.State())
}

func TestReloadWhenDisabledTearsDown(t *testing.T) {
	f := newFixture(t)
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	f.settings.bools[domain.KeyEnabled] = false
	f.client.EXPECT().Destroy()
	f.manager.Reload(false)
	assert.Equal(t, domain.StateDisconnected, f.manager.State())
}

func TestResolveArtwork(t *testing.T) {
	f := newFixture(t)
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	f.client.EXPECT().SetActivity(gomock.Any()).Return(nil)
	f.manager.Update(playingSnapshot())

	f.resolver.EXPECT().Resolve(gomock.Any(), "https://art.example/c.jpg").
		Return("https://proxy.example/c.jpg", nil)
	f.client.EXPECT().SetActivity(gomock.Any()).
		DoAndReturn(func(p domain.PresencePayload) error {
			assert.Equal(t, "https://proxy.example/c.jpg", p.LargeImageKey)
			return nil
		})
	f.manager.ResolveArtwork(context.Background(), "https://art.example/c.jpg")

	// The next synthesis pass consumes the override, so re-sending the
	// same snapshot produces the payload already cached: no extra push
	f.manager.Update(playingSnapshot())
}

func TestResolveArtworkSkippedInPrivacy(t *testing.T) {
	f := newFixture(t)
	f.settings.bools[domain.KeyPrivacyEnabled] = true

	// No resolver expectation: privacy short-circuits resolution
	f.manager.ResolveArtwork(context.Background(), "https://art.example/c.jpg")
}

func TestResolveArtworkError(t *testing.T) {
	f := newFixture(t)
	ready := f.connect(t)
	ready(domain.UserIdentity{})

	f.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).
		Return("", errors.New("proxy unreachable"))
	f.manager.ResolveArtwork(context.Background(), "https://art.example/c.jpg")
}

func TestShutdownIdempotent(t *testing.T) {
	f := newFixture(t)
	f.connect(t)

	f.client.EXPECT().Destroy().Times(1)
	f.manager.Shutdown()
	f.manager.Shutdown()
	assert.Equal(t, domain.StateDisconnected, f.manager.State())
}
