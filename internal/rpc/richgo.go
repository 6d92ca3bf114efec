package rpc

import (
	"fmt"
	"sync"
	"time"

	"github.com/hugolgst/rich-go/client"
	"go.uber.org/zap"

	"github.com/soundlink/presenced/internal/domain"
)

// RichWire adapts the rich-go library to domain.WireClient. rich-go
// keeps a single process-wide IPC connection, which matches the one
// session at a time the manager maintains.
type RichWire struct {
	logger *zap.Logger

	mu       sync.Mutex
	loggedIn bool
	identity string
}

// NewRichWire creates the wire adapter
func NewRichWire(logger *zap.Logger) *RichWire {
	return &RichWire{logger: logger}
}

// Login performs a single handshake attempt against the local presence
// service socket. rich-go does not surface account details, so the
// returned identity carries the application id only.
func (w *RichWire) Login(identity string) (domain.UserIdentity, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := client.Login(identity); err != nil {
		return domain.UserIdentity{}, fmt.Errorf("presence handshake failed: %w", err)
	}
	w.loggedIn = true
	w.identity = identity
	return domain.UserIdentity{ID: identity}, nil
}

// SetActivity pushes a payload, re-establishing the session first if a
// previous ClearActivity dropped it
func (w *RichWire) SetActivity(p domain.PresencePayload) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.loggedIn {
		if w.identity == "" {
			return fmt.Errorf("set activity before login")
		}
		if err := client.Login(w.identity); err != nil {
			return fmt.Errorf("presence re-login failed: %w", err)
		}
		w.loggedIn = true
	}

	act := client.Activity{
		Details:    p.Details,
		State:      p.State,
		LargeImage: p.LargeImageKey,
		LargeText:  p.LargeImageText,
		SmallImage: p.SmallImageKey,
		SmallText:  p.SmallImageText,
	}
	if p.StartTimestamp != 0 || p.EndTimestamp != 0 {
		ts := &client.Timestamps{}
		if p.StartTimestamp != 0 {
			start := time.UnixMilli(p.StartTimestamp)
			ts.Start = &start
		}
		if p.EndTimestamp != 0 {
			end := time.UnixMilli(p.EndTimestamp)
			ts.End = &end
		}
		act.Timestamps = ts
	}
	for _, b := range p.Buttons {
		act.Buttons = append(act.Buttons, &client.Button{Label: b.Label, Url: b.URL})
	}

	if err := client.SetActivity(act); err != nil {
		return fmt.Errorf("set activity failed: %w", err)
	}
	return nil
}

// ClearActivity removes the presence. rich-go has no dedicated clear
// call, so the session is logged out; the next SetActivity re-logs in.
func (w *RichWire) ClearActivity() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.loggedIn {
		return nil
	}
	client.Logout()
	w.loggedIn = false
	return nil
}

// Close releases the wire connection
func (w *RichWire) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.loggedIn {
		client.Logout()
		w.loggedIn = false
	}
}
