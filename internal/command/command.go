// Package command defines the command contract and the registry the
// dispatcher reads. Commands declare their minimum permission tier; the
// dispatcher enforces it before Run is ever called.
package command

import (
	"github.com/bwmarrin/discordgo"

	"faucet-bot/internal/config"
	"faucet-bot/internal/faucet"
	"faucet-bot/internal/permission"
)

type Command interface {
	Name() string
	Description() string
	Group() string
	Category() string
	MinTier() permission.Tier
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands that register a slash definition
// with Discord.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// Deps carries the services handlers need. Built once at startup and shared
// read-only between concurrent invocations.
type Deps struct {
	Config   *config.Config
	Client   *faucet.Client
	Resolver *permission.Resolver
}

// SlashInteractionContext is what the runtime passes to Run for a slash
// command interaction.
type SlashInteractionContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Caller  permission.Caller
	Deps    *Deps
}

// OptionString returns the string value of a named option, or "".
func OptionString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
