package command

import (
	"fmt"
	"sort"
)

// Registry stores commands by name. It is constructed explicitly at startup
// and handed to the dispatcher, so tests can run against a fake population.
// Read-only after startup; no locking needed.
type Registry struct {
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command, applying middlewares with the first in the list
// outermost. A duplicate name is a fatal misconfiguration and returns an
// error for the caller to abort on.
func (r *Registry) Register(c Command, mws ...Middleware) error {
	name := c.Name()
	if _, exists := r.commands[name]; exists {
		return fmt.Errorf("command %q is already registered", name)
	}
	r.commands[name] = Apply(c, mws...)
	return nil
}

// Get returns the command with the given name.
func (r *Registry) Get(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// All returns every registered command, sorted by name.
func (r *Registry) All() []Command {
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
