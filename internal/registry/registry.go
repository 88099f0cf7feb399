// Package registry provides a global registry for frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Frontend drives a game: it owns the loop, supplies pointer events and
// draws the game's surface.
type Frontend interface {
	// Name returns a unique identifier used on the command line (e.g., "tui").
	Name() string

	// Description returns a one-line summary for `breakout frontends`.
	Description() string

	// Run steps the game until it is done, the user quits or ctx is
	// cancelled. Failures to set up or draw are returned as
	// *breakout.RenderError.
	Run(ctx context.Context, game *breakout.Game, cfg core.RuntimeConfig) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new frontend instance.
type Factory func() Frontend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered frontends, sorted by name.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, FrontendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a frontend by name.
// Returns an error if the name is not registered.
func Create(name string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", name)
	}

	return f(), nil
}

// Exists checks if a frontend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
