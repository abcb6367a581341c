// Package session bundles the state one player's game runs against.
package session

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/vvka-141/bytecrawl/internal/logging"
	"github.com/vvka-141/bytecrawl/internal/player"
	"github.com/vvka-141/bytecrawl/internal/shop"
	"github.com/vvka-141/bytecrawl/internal/vfs"
	"github.com/vvka-141/bytecrawl/pkg/bytecrawl"
)

// Config holds the optional parts of a session.
type Config struct {
	// Debug enables the privileged debug commands.
	Debug bool

	// Out receives everything commands and programs print. Defaults to io.Discard.
	Out io.Writer

	// Logger receives diagnostics. Defaults to a NullLogger.
	Logger bytecrawl.Logger

	// ID identifies the session. A fresh one is generated when zero.
	ID uuid.UUID
}

// Session is the explicit replacement for process-wide game state: the
// filesystem (which carries the current directory), the player, the shops
// and the output stream, threaded through every command.
type Session struct {
	ID     uuid.UUID
	FS     *vfs.FileSystem
	Player *player.Player
	Shops  *shop.Registry
	Out    io.Writer
	Debug  bool
	Logger bytecrawl.Logger
}

// New creates a session, generating an ID unless cfg carries one.
func New(fsys *vfs.FileSystem, p *player.Player, shops *shop.Registry, cfg Config) *Session {
	s := &Session{
		ID:     cfg.ID,
		FS:     fsys,
		Player: p,
		Shops:  shops,
		Out:    cfg.Out,
		Debug:  cfg.Debug,
		Logger: cfg.Logger,
	}
	if s.Out == nil {
		s.Out = io.Discard
	}
	if s.Logger == nil {
		s.Logger = logging.NewNullLogger()
	}
	if s.Shops == nil {
		s.Shops = shop.NewRegistry()
	}
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return s
}

// ShortID is the first block of id, used to tag log lines.
func ShortID(id uuid.UUID) string {
	return id.String()[:8]
}

// ShortID is the first block of the session ID.
func (s *Session) ShortID() string {
	return ShortID(s.ID)
}

// SyncStats rewrites the stats file with the player's current stats.
func (s *Session) SyncStats() error {
	if err := s.FS.EditFile(bytecrawl.StatsFilePath, vfs.Text{Body: s.Player.String()}); err != nil {
		return fmt.Errorf("couldn't write stats to file: %w", err)
	}
	return nil
}
