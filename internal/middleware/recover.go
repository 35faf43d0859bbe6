package middleware

import (
	"log"

	"faucet-bot/internal/bot"
	"faucet-bot/internal/command"
	"faucet-bot/internal/embeds"
)

// WithRecovery converts a panicking handler into a logged error and a terminal
// reply, so one bad interaction can never take the process down or leave the
// caller hanging.
func WithRecovery() command.Middleware {
	return func(c command.Command) command.Command {
		return &command.Wrapped{
			Command: c,
			RunFunc: func(ctx interface{}) (err error) {
				defer func() {
					r := recover()
					if r == nil {
						return
					}

					v, ok := ctx.(*command.SlashInteractionContext)
					if !ok {
						log.Printf("[ERR] Panic in command /%s: %v", c.Name(), r)
						return
					}
					log.Printf("[ERR] Panic in command /%s (user %s): %v", c.Name(), v.Caller.ID, r)

					e := embeds.Error("Command Error", "An unexpected error occurred while processing your request.")
					// The interaction may already be acknowledged; try the
					// followup path first, then a direct response.
					if ferr := bot.FollowupEmbedEphemeral(v.Session, v.Event, e); ferr != nil {
						if rerr := bot.RespondEmbedEphemeral(v.Session, v.Event, e); rerr != nil {
							log.Printf("[WARN] Failed to deliver error reply for /%s: %v", c.Name(), rerr)
						}
					}
				}()
				return c.Run(ctx)
			},
		}
	}
}
