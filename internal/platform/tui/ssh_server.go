package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

const (
	defaultHostKeyPath = "~/.invasion/host_key"
	shutdownTimeout    = 10 * time.Second
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	Address     string        // host:port to listen on
	HostKeyPath string        // generated on first start; ~ is expanded
	DBPath      string        // scores shared by every session
	IdleTimeout time.Duration // idle sessions are closed after this
	TickRate    int           // simulation rate for every session

	// Logger receives server and session events. Defaults to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns the settings used by `invasion serve`.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		HostKeyPath: defaultHostKeyPath,
		DBPath:      "~/.invasion/scores.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    60,
	}
}

// SSHServer serves the invasion menu to every SSH session. Sessions share
// one scores database and one per-mode high score.
type SSHServer struct {
	cfg      SSHServerConfig
	server   *ssh.Server
	store    *storage.Store
	log      *log.Logger
	sessions atomic.Int64
}

// NewSSHServer prepares the host key and scores database and builds the
// Wish server. A database that cannot be opened only disables scores.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	s := &SSHServer{cfg: cfg, log: cfg.Logger}
	if s.log == nil {
		s.log = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	}
	s.log = s.log.WithPrefix("invasion-ssh")

	hostKey, err := prepareHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	if store, err := storage.Open(cfg.DBPath); err != nil {
		s.log.Warn("scores disabled", "db", cfg.DBPath, "error", err)
	} else {
		s.store = store
	}

	s.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(s.newSession),
			s.requirePTY,
			s.trackSession,
		),
	)
	if err != nil {
		s.closeStore()
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}
	return s, nil
}

// prepareHostKey expands path and creates its directory. Wish generates
// the key itself when the file is missing.
func prepareHostKey(path string) (string, error) {
	if path == "" {
		path = defaultHostKeyPath
	}
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot resolve host key path: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("tui: cannot create host key directory: %w", err)
	}
	return path, nil
}

// newSession builds the menu/game/scoreboard model for one player.
func (s *SSHServer) newSession(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	runtime := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.cfg.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	return NewSessionModel(s.store, runtime, sess.User(), s.log), []tea.ProgramOption{tea.WithAltScreen()}
}

// requirePTY turns away sessions without a terminal before the game starts.
func (s *SSHServer) requirePTY(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		if _, _, ok := sess.Pty(); !ok {
			s.log.Warn("rejected session without PTY", "user", sess.User())
			wish.Fatalln(sess, "Alien Invasion needs a terminal. Try: ssh -t")
			return
		}
		next(sess)
	}
}

// trackSession logs each session with the number of players online.
func (s *SSHServer) trackSession(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		user, remote := sess.User(), sess.RemoteAddr().String()

		s.log.Info("player joined", "user", user, "remote", remote, "online", s.sessions.Add(1))
		defer func() {
			s.log.Info("player left",
				"user", user,
				"remote", remote,
				"played", time.Since(start).Round(time.Second),
				"online", s.sessions.Add(-1),
			)
		}()

		next(sess)
	}
}

// Sessions returns the number of connected players.
func (s *SSHServer) Sessions() int64 {
	return s.sessions.Load()
}

// ListenAndServe serves until ctx is canceled or the listener fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.log.Info("listening", "address", s.cfg.Address, "tick_rate", s.cfg.TickRate)

	errCh := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, ssh.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if err != nil {
			s.log.Error("server stopped", "error", err)
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down", "online", s.Sessions())
		return s.Shutdown()
	}
}

// Shutdown stops accepting players, waits for open sessions, and closes the store.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	s.closeStore()
	return err
}

func (s *SSHServer) closeStore() {
	if s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.log.Warn("could not close scores database", "error", err)
	}
	s.store = nil
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.cfg.Address
}
