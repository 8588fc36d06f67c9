// Package session holds the authentication token for the running client.
//
// The token is the only durable client-side state: one plain-text file.
// An absent file means logged out. The Store is injected into everything
// that reads auth state; Set and Clear are the only mutation entry points,
// and crossing the logged-in/out boundary notifies subscribers so the host
// can flip between the auth flow and the dashboard.
package session

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/dmitrijs2005/goldtrack/internal/filex"
	"github.com/dmitrijs2005/goldtrack/internal/logging"
)

// Store keeps the current bearer token in memory and mirrors it to disk.
type Store struct {
	path string
	log  logging.Logger

	mu          sync.Mutex
	token       string
	subscribers []func(loggedIn bool)
}

// New loads any persisted token from path. A missing or unreadable file is
// treated as logged out, not as an error.
func New(path string, log logging.Logger) *Store {
	s := &Store{path: path, log: log}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		s.token = strings.TrimSpace(string(data))
	case errors.Is(err, fs.ErrNotExist):
		// first run
	default:
		log.Warn(context.Background(), "cannot read persisted token, starting logged out",
			"path", path, "error", err)
	}
	return s
}

// Subscribe registers fn to run whenever the session crosses the
// login/logout boundary. fn runs synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn func(loggedIn bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// LoggedIn reports whether a token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// Set stores the token in memory and on disk. A failed write keeps the
// in-memory session usable for this process; it just won't survive a
// restart.
func (s *Store) Set(ctx context.Context, token string) {
	s.mu.Lock()
	wasLoggedIn := s.token != ""
	s.token = token
	subs := s.notifiable(wasLoggedIn)
	s.mu.Unlock()

	if err := filex.EnsureParentDir(s.path); err != nil {
		s.log.Warn(ctx, "cannot create session dir", "error", err)
	} else if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		s.log.Warn(ctx, "cannot persist token", "path", s.path, "error", err)
	}

	for _, fn := range subs {
		fn(token != "")
	}
}

// Clear wipes the token from memory and disk. Clearing an already-empty
// store is a no-op and does not notify.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	subs := s.notifiable(true)
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.log.Warn(ctx, "cannot remove persisted token", "path", s.path, "error", err)
	}

	for _, fn := range subs {
		fn(false)
	}
}

// notifiable returns the subscriber list when the boundary flipped, nil
// otherwise. Call with s.mu held.
func (s *Store) notifiable(wasLoggedIn bool) []func(bool) {
	if wasLoggedIn == (s.token != "") {
		return nil
	}
	return append(([]func(bool))(nil), s.subscribers...)
}
