package middleware

import (
	"log"

	"faucet-bot/internal/command"
)

// WithCommandLogger wraps a command to log each invocation and its outcome.
func WithCommandLogger() command.Middleware {
	return func(c command.Command) command.Command {
		return &command.Wrapped{
			Command: c,
			RunFunc: func(ctx interface{}) error {
				err := c.Run(ctx)

				if v, ok := ctx.(*command.SlashInteractionContext); ok {
					if err != nil {
						log.Printf("[ERR] /%s by %s (%s) failed: %v", c.Name(), v.Caller.DisplayName, v.Caller.ID, err)
					} else {
						log.Printf("[INFO] /%s by %s (%s)", c.Name(), v.Caller.DisplayName, v.Caller.ID)
					}
				}
				return err
			},
		}
	}
}
