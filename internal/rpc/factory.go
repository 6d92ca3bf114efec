package rpc

import (
	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
)

// Factory builds session clients for the manager. Each client is owned
// exclusively by the manager and replaced, never reused, on reload.
type Factory struct {
	logger *zap.Logger
}

// NewFactory creates the client factory
func NewFactory(logger *zap.Logger) *Factory {
	return &Factory{logger: logger}
}

// New returns a fresh retrying session client over a rich-go wire
func (f *Factory) New() domain.SessionClient {
	return NewAutoClient(f.logger, NewRichWire(f.logger))
}
