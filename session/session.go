// Package session owns the per-game state around a piece randomizer: the
// randomizer itself and the player settings that screens share.
package session

import (
	"io"
	"log/slog"
	"sync"

	"github.com/plus3/piecebag/piece"
)

const (
	DefaultPet = "FIRE"
	DefaultMap = "MYSTICAL HEART"
)

// Settings is the player state shared by every screen of one session.
type Settings struct {
	MusicMuted bool
	SoundMuted bool
	Pet        string
	Map        string
}

// DefaultSettings returns unmuted audio and the starter pet and map.
func DefaultSettings() Settings {
	return Settings{Pet: DefaultPet, Map: DefaultMap}
}

// Session serializes access to a randomizer so a render loop can preview
// pieces while the game loop spawns them.
type Session struct {
	mu       sync.Mutex
	pieces   *piece.Randomizer
	settings Settings
	logger   *slog.Logger
}

type Option func(*Session)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithSettings(settings Settings) Option {
	return func(s *Session) {
		s.settings = settings
	}
}

// New wraps pieces. The session becomes the randomizer's only owner.
func New(pieces *piece.Randomizer, opts ...Option) *Session {
	s := &Session{
		pieces:   pieces,
		settings: DefaultSettings(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Spawn advances the randomizer and returns the new active piece.
func (s *Session) Spawn() piece.Piece {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.pieces.Advance()
	s.logger.Debug("piece spawned",
		"shape", p.Shape.String(),
		"color", p.Color.String(),
		"next_shape", s.pieces.PeekNext().Shape.String(),
		"spawned", s.pieces.Draws(),
	)
	return p
}

// Active returns the piece in play. ok is false before the first Spawn.
func (s *Session) Active() (piece.Piece, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pieces.PeekCurrent()
}

// Preview returns the piece the next Spawn will produce.
func (s *Session) Preview() piece.Piece {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pieces.PeekNext()
}

// Spawned returns how many pieces this session has produced.
func (s *Session) Spawned() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pieces.Draws()
}

func (s *Session) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings applies fn to the settings under the session lock.
func (s *Session) UpdateSettings(fn func(*Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.settings)
	s.logger.Debug("settings updated",
		"music_muted", s.settings.MusicMuted,
		"sound_muted", s.settings.SoundMuted,
		"pet", s.settings.Pet,
		"map", s.settings.Map,
	)
}
