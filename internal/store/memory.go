// internal/store/memory.go
//
// In-memory registry of bowling games.
// The scoring engine does no locking of its own, so this is where callers
// that share a game get their access serialized.
//
// Characteristics:
//   - Stores *game.Game objects keyed by a random hex ID.
//   - Concurrency-safe via RWMutex (scoring shares a read lock, rolls are exclusive).
//   - State is lost when the process restarts.
//   - Unknown IDs return ErrNotFound; engine errors pass through unchanged.

package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bowling/internal/game"
)

// ErrNotFound is returned for a game ID the store does not hold.
var ErrNotFound = errors.New("not found")

// Store defines the operations a host performs on shared games.
type Store interface {
	// Create registers a new empty game and returns its ID.
	Create(ctx context.Context) (string, error)

	// Roll records one throw on the game.
	Roll(ctx context.Context, id string, pins int) error

	// Score returns the game's total, or game.ErrIncompleteGame.
	Score(ctx context.Context, id string) (int, error)

	// Frames returns the game's frame breakdown, or game.ErrIncompleteGame.
	Frames(ctx context.Context, id string) ([]game.Frame, error)

	// Delete drops the game.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games and every game in it
	games map[string]*game.Game // keyed by ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Create(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := randomID()
	for _, taken := m.games[id]; taken; _, taken = m.games[id] {
		id = randomID()
	}
	m.games[id] = game.New()
	log.Debug().Str("game_id", id).Msg("game created")
	return id, nil
}

func (m *memory) Roll(ctx context.Context, id string, pins int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	g.Roll(pins)
	log.Debug().Str("game_id", id).Int("pins", pins).Ints("rolls", g.Rolls()).Msg("roll recorded")
	return nil
}

func (m *memory) Score(ctx context.Context, id string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return 0, ErrNotFound
	}
	return g.Score()
}

func (m *memory) Frames(ctx context.Context, id string) ([]game.Frame, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g.Frames()
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	log.Debug().Str("game_id", id).Msg("game deleted")
	return nil
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
