package state

import (
	"sync"
	"time"

	"github.com/rook-computer/postermaker/internal/config"
	"github.com/rook-computer/postermaker/internal/poster"
)

// State is what the web server renders with. It is replaced wholesale on
// config reload and never mutated in place.
type State struct {
	Config   config.Config
	Composer *poster.Composer
	Source   string
	LoadedAt time.Time
	Reloads  int
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(initial State) *Store {
	if initial.Composer == nil {
		initial.Composer = poster.New()
	}
	if initial.LoadedAt.IsZero() {
		initial.LoadedAt = time.Now()
	}
	return &Store{state: initial}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

// Replace swaps in a new configuration and composer.
func (store *Store) Replace(cfg config.Config, composer *poster.Composer) {
	store.mu.Lock()
	store.state.Config = cfg
	store.state.Composer = composer
	store.state.LoadedAt = time.Now()
	store.state.Reloads++
	store.mu.Unlock()
}
