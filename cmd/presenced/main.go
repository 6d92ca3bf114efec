package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/artwork"
	"github.com/soundlink/presenced/internal/bridge"
	"github.com/soundlink/presenced/internal/config"
	"github.com/soundlink/presenced/internal/domain"
	"github.com/soundlink/presenced/internal/locale"
	"github.com/soundlink/presenced/internal/rpc"
	"github.com/soundlink/presenced/internal/session"
)

// AppOptions assembles the daemon's dependency graph. Kept as a package
// variable so tests can validate the graph without starting the app.
var AppOptions = fx.Options(
	fx.Provide(
		newLogger,
		config.NewStore,
		func(s *config.Store) domain.Settings { return s },
		locale.NewTable,
		func(t *locale.Table) domain.Localizer { return t },
		artwork.NewResolver,
		func(r *artwork.Resolver) domain.ArtworkResolver { return r },
		rpc.NewFactory,
		func(f *rpc.Factory) domain.ClientFactory { return f },
		session.NewManager,
		func(m *session.Manager) bridge.Controller { return m },
		bridge.New,
	),
	fx.Invoke(registerHooks),
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	<-ctx.Done()

	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// registerHooks wires the daemon lifecycle: the control surface comes up
// first so no playback event is missed, then the session connects, then
// config changes start driving silent reloads.
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, store *config.Store, b *bridge.Bridge, m *session.Manager) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := b.Start(); err != nil {
				return err
			}
			m.Connect()
			if err := store.Watch(func() { m.Reload(false) }); err != nil {
				logger.Warn("Config hot reload unavailable", zap.Error(err))
			}
			logger.Info("Presence daemon started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			m.Shutdown()
			if err := b.Stop(); err != nil {
				logger.Warn("Failed to stop control surface", zap.Error(err))
			}
			logger.Info("Shutting down")
			return nil
		},
	})
}
