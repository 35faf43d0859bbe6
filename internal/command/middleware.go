package command

import (
	"github.com/bwmarrin/discordgo"
)

// Middleware wraps a command (logging, panic recovery, metrics). The wrapped
// value still satisfies Command and keeps the inner slash definition visible.
type Middleware func(Command) Command

// Wrapped delegates everything to the inner command except Run.
type Wrapped struct {
	Command
	RunFunc func(ctx interface{}) error
}

func (w *Wrapped) Run(ctx interface{}) error {
	if w.RunFunc != nil {
		return w.RunFunc(ctx)
	}
	return w.Command.Run(ctx)
}

// SlashDefinition delegates to the inner command; without this the interface
// assertion in the runtime would miss wrapped commands.
func (w *Wrapped) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// Apply applies middlewares in order; the first in the list is the outermost.
func Apply(c Command, mws ...Middleware) Command {
	for i := len(mws) - 1; i >= 0; i-- {
		c = mws[i](c)
	}
	return c
}
