// Package rpc provides the remote session client used by the session
// manager: an endless-retry login policy layered over a low-level wire
// client for the presence service.
package rpc

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
)

const (
	// initialBackoff is the delay after the first failed login attempt
	initialBackoff = 2 * time.Second
	// maxBackoff caps the delay between attempts; the number of attempts
	// itself is unbounded
	maxBackoff = 5 * time.Minute
)

// AutoClient implements domain.SessionClient. Login retries forever with
// exponential backoff until the handshake succeeds or the client is
// destroyed; a presence feature must never surface a fatal connection
// error to the host application.
type AutoClient struct {
	logger *zap.Logger
	wire   domain.WireClient

	initial time.Duration
	max     time.Duration

	mu        sync.Mutex
	destroyed bool
	stop      chan struct{}
}

// NewAutoClient wraps a wire client with the retry policy
func NewAutoClient(logger *zap.Logger, wire domain.WireClient) *AutoClient {
	return &AutoClient{
		logger:  logger,
		wire:    wire,
		initial: initialBackoff,
		max:     maxBackoff,
		stop:    make(chan struct{}),
	}
}

// Login starts the handshake in the background. onReady fires at most
// once, after the first successful attempt.
func (c *AutoClient) Login(identity string, onReady func(domain.UserIdentity)) {
	go c.loginLoop(identity, onReady)
}

func (c *AutoClient) loginLoop(identity string, onReady func(domain.UserIdentity)) {
	delay := c.initial
	for attempt := 1; ; attempt++ {
		c.mu.Lock()
		dead := c.destroyed
		c.mu.Unlock()
		if dead {
			return
		}

		user, err := c.wire.Login(identity)
		if err == nil {
			c.logger.Info("Presence session authenticated",
				zap.String("identity", identity),
				zap.Int("attempts", attempt))
			if onReady != nil {
				onReady(user)
			}
			return
		}

		c.logger.Warn("Presence login attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("next_in", delay),
			zap.Error(err))

		select {
		case <-c.stop:
			return
		case <-time.After(delay):
		}
		if delay *= 2; delay > c.max {
			delay = c.max
		}
	}
}

// SetActivity pushes a presence payload over the wire
func (c *AutoClient) SetActivity(p domain.PresencePayload) error {
	return c.wire.SetActivity(p)
}

// ClearActivity removes the published presence
func (c *AutoClient) ClearActivity() error {
	return c.wire.ClearActivity()
}

// Destroy stops any in-flight login retry and closes the wire. Safe to
// call more than once.
func (c *AutoClient) Destroy() {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	c.destroyed = true
	close(c.stop)
	c.mu.Unlock()

	c.wire.Close()
}
