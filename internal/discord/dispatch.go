package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"faucet-bot/internal/bot"
	"faucet-bot/internal/command"
	"faucet-bot/internal/embeds"
	"faucet-bot/internal/permission"
)

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()
	if data.CommandType != discordgo.ChatApplicationCommand {
		return
	}

	caller := permission.CallerFromInteraction(i)
	runCtx := &command.SlashInteractionContext{
		Session: s,
		Event:   i,
		Caller:  caller,
		Deps:    b.deps,
	}

	err := Dispatch(b.registry, b.deps.Resolver, data.Name, caller, runCtx, func(e *discordgo.MessageEmbed) error {
		return bot.RespondEmbedEphemeral(s, i, e)
	})
	if err != nil {
		log.Printf("[ERR] Error running slash command /%s: %v", data.Name, err)
		if rerr := bot.RespondEmbedEphemeral(s, i, embeds.Error("Command Error", "There was an error while executing this command.")); rerr != nil {
			log.Printf("[WARN] Failed to deliver error reply for /%s: %v", data.Name, rerr)
		}
	}
}

// Dispatch looks up a command by name, enforces its minimum tier, and runs
// it. An unknown name is logged and dropped without a reply: command caches
// go briefly out of sync with the registry during redeploys, and answering
// would only confuse the caller. A caller below the required tier gets an
// immediate (non-deferred) permission-denied reply and the handler is never
// invoked. The caller's tier is resolved fresh on every interaction.
func Dispatch(
	registry *command.Registry,
	resolver *permission.Resolver,
	name string,
	caller permission.Caller,
	runCtx interface{},
	reply func(*discordgo.MessageEmbed) error,
) error {
	cmd, ok := registry.Get(name)
	if !ok {
		log.Printf("[WARN] Unknown command: %s", name)
		return nil
	}

	if !resolver.HasAccess(caller, cmd.MinTier()) {
		if err := reply(embeds.PermissionDenied(cmd.MinTier())); err != nil {
			log.Printf("[WARN] Failed to deliver permission-denied reply for /%s: %v", name, err)
		}
		return nil
	}

	return cmd.Run(runCtx)
}
