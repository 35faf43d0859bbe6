package core

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"faucet-bot/internal/bot"
	"faucet-bot/internal/command"
	"faucet-bot/internal/embeds"
	"faucet-bot/internal/permission"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Show help information about the faucet bot" }
func (c *HelpCommand) Group() string       { return "core" }
func (c *HelpCommand) Category() string    { return "🕯️ Information" }

func (c *HelpCommand) MinTier() permission.Tier { return permission.TierUser }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	if err := bot.RespondEmbedEphemeral(slash.Session, slash.Event, embeds.Help()); err != nil {
		log.Printf("[WARN] Failed to deliver help reply: %v", err)
	}
	return nil
}
