// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/zhang722/command-line-go/internal/issue"
)

// DefaultRegistry holds every tool in this package. Tools register
// themselves from init functions.
var DefaultRegistry = NewRegistry()

// Registry maps tool names to their implementations.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry.
// Panics if a command with the same name is already registered.
func (r *Registry) Register(cmd Command) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := cmd.Name()
	if name == "" {
		panic("coreutils: cannot register command with empty name")
	}
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("coreutils: command %q already registered", name))
	}
	r.commands[name] = cmd
}

// Lookup retrieves a command by name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[name]
	return cmd, ok
}

// Names returns the names of all registered commands in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run executes a command by name. args[0] should be the command name.
func (r *Registry) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := r.Lookup(name)
	if !ok {
		return issue.NewErrorContext().
			WithOperation("run command").
			WithResource(name).
			WithIssue(issue.CommandNotFoundId).
			Wrap(ErrCommandNotFound).
			BuildError()
	}
	return cmd.Run(ctx, args)
}

// RegisterDefault registers a command in the DefaultRegistry.
func RegisterDefault(cmd Command) {
	DefaultRegistry.Register(cmd)
}
