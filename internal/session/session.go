// Package session implements the admin sign-in gate: a single configured
// identity, opaque bearer tokens with an expiry, and listeners notified of
// sign-in and sign-out.
//
// The gate only decides whether a token is active. It never touches the
// document store; routing decides which requests require a session.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkordes/hotel-admin/backend/internal/metrics"
)

// ErrInvalidCredentials is returned by SignIn for an unknown email or a wrong
// password alike.
var ErrInvalidCredentials = errors.New("invalid credentials")

// EventKind says what happened to a session.
type EventKind string

const (
	SignedIn  EventKind = "signed_in"
	SignedOut EventKind = "signed_out"
)

// Event is delivered to every subscribed listener.
type Event struct {
	Kind  EventKind
	Email string
	At    time.Time
}

// Session is an issued bearer token.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Gate issues and checks admin sessions. The zero value is not usable; call New.
type Gate struct {
	email        string
	passwordHash []byte
	ttl          time.Duration
	now          func() time.Time

	mu        sync.Mutex
	sessions  map[string]Session
	listeners map[int]func(Event)
	nextID    int
}

// Option customises a Gate.
type Option func(*Gate)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Gate) { g.now = now }
}

// New returns a Gate accepting email with the bcrypt passwordHash.
// Sessions expire ttl after sign-in.
func New(email, passwordHash string, ttl time.Duration, opts ...Option) *Gate {
	g := &Gate{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		ttl:          ttl,
		now:          time.Now,
		sessions:     make(map[string]Session),
		listeners:    make(map[int]func(Event)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// HashPassword returns the bcrypt hash to configure as ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// SignIn verifies the credentials and issues a new session.
func (g *Gate) SignIn(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != g.email || bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) != nil {
		metrics.SessionEventsTotal.WithLabelValues("rejected").Inc()
		slog.WarnContext(ctx, "sign-in rejected", "email", email)
		return Session{}, ErrInvalidCredentials
	}

	now := g.now()
	s := Session{
		Token:     uuid.NewString(),
		Email:     g.email,
		ExpiresAt: now.Add(g.ttl),
	}

	g.mu.Lock()
	g.pruneLocked(now)
	g.sessions[s.Token] = s
	metrics.ActiveSessions.Set(float64(len(g.sessions)))
	g.mu.Unlock()

	metrics.SessionEventsTotal.WithLabelValues(string(SignedIn)).Inc()
	g.publish(Event{Kind: SignedIn, Email: s.Email, At: now})
	return s, nil
}

// Active reports whether token belongs to an unexpired session.
func (g *Gate) Active(token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[token]
	if !ok {
		return false
	}
	if !g.now().Before(s.ExpiresAt) {
		delete(g.sessions, token)
		metrics.ActiveSessions.Set(float64(len(g.sessions)))
		return false
	}
	return true
}

// SignOut ends the session. Unknown or expired tokens are ignored.
func (g *Gate) SignOut(token string) {
	g.mu.Lock()
	s, ok := g.sessions[token]
	delete(g.sessions, token)
	metrics.ActiveSessions.Set(float64(len(g.sessions)))
	g.mu.Unlock()

	if !ok {
		return
	}
	metrics.SessionEventsTotal.WithLabelValues(string(SignedOut)).Inc()
	g.publish(Event{Kind: SignedOut, Email: s.Email, At: g.now()})
}

// Subscribe registers fn for every future event. Calling the returned
// function unregisters it; calling it again is a no-op.
func (g *Gate) Subscribe(fn func(Event)) (unsubscribe func()) {
	g.mu.Lock()
	id := g.nextID
	g.nextID++
	g.listeners[id] = fn
	g.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.listeners, id)
			g.mu.Unlock()
		})
	}
}

// publish calls listeners outside the lock so they may call back into the gate.
func (g *Gate) publish(ev Event) {
	g.mu.Lock()
	fns := make([]func(Event), 0, len(g.listeners))
	for _, fn := range g.listeners {
		fns = append(fns, fn)
	}
	g.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (g *Gate) pruneLocked(now time.Time) {
	for token, s := range g.sessions {
		if !now.Before(s.ExpiresAt) {
			delete(g.sessions, token)
		}
	}
}
