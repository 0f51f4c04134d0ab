// Package registry provides a global registry for strategy factories.
// Strategies register themselves in init() functions, allowing the CLI
// and the SSH server to discover and instantiate them without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/auto2048/internal/board"
)

// Strategy decides the agent's next move for a board position.
// Implementations must not mutate the board they are given; they work
// on copies when they need to test a move.
type Strategy interface {
	// Name returns the registry id of the strategy (e.g. "lookahead").
	Name() string

	// NextMove returns the chosen direction and the score the strategy
	// assigned to it. ok is false when no legal move exists; the score
	// is meaningful only for searching strategies and is 0 otherwise.
	NextMove(b board.Board) (dir board.Direction, score float64, ok bool)
}

// Options carries the tunables a strategy factory may honor.
// Strategies ignore fields that do not apply to them.
type Options struct {
	Depth    int   // lookahead depth in plies
	Parallel bool  // evaluate root subtrees concurrently
	Memo     bool  // memoize search nodes within one move decision
	Seed     int64 // RNG seed for randomized strategies
}

// Info contains metadata about a registered strategy.
type Info struct {
	ID          string
	Description string
}

// Factory is a function that creates a new strategy instance.
type Factory func(opts Options) Strategy

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Typically called from a strategy's init() function.
// Panics if a strategy with the same ID is already registered.
func Register(id, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", id))
	}

	factories[id] = f
	descriptions[id] = description
}

// List returns information about all registered strategies, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:          id,
			Description: descriptions[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new strategy by its ID.
// Returns an error if the strategy ID is not registered.
func Create(id string, opts Options) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", id)
	}

	return f(opts), nil
}

// Exists checks if a strategy with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
