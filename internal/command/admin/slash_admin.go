package admin

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"faucet-bot/internal/bot"
	"faucet-bot/internal/command"
	"faucet-bot/internal/embeds"
	api "faucet-bot/internal/faucet"
	"faucet-bot/internal/permission"
)

// AdminCommand manages the faucet backend. The command itself is open to
// moderators (analytics); the configuration subcommands re-check for the
// admin tier inside the handler.
type AdminCommand struct{}

func (c *AdminCommand) Name() string        { return "admin" }
func (c *AdminCommand) Description() string { return "Admin commands for faucet management" }
func (c *AdminCommand) Group() string       { return "admin" }
func (c *AdminCommand) Category() string    { return "⚙️ Administration" }

func (c *AdminCommand) MinTier() permission.Tier { return permission.TierModerator }

func (c *AdminCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "analytics",
				Description: "View faucet statistics and analytics",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "config",
				Description: "View faucet configuration settings",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "update-config",
				Description: "Update faucet configuration settings",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "cooldown_seconds",
						Description: "Cooldown period in seconds (optional)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionNumber,
						Name:        "faucet_amount",
						Description: "Amount of SUI per request (optional)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "max_requests_per_ip",
						Description: "Maximum requests per IP (optional)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "max_requests_per_wallet",
						Description: "Maximum requests per wallet (optional)",
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "enabled",
						Description: "Enable or disable the faucet (optional)",
					},
				},
			},
		},
	}
}

func (c *AdminCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	if err := bot.RespondDeferredEphemeral(s, e); err != nil {
		return fmt.Errorf("failed to defer reply: %w", err)
	}

	data := e.ApplicationCommandData()
	if len(data.Options) == 0 {
		return reply(s, e, embeds.Error("Unknown Subcommand", "No subcommand provided."))
	}

	sub := data.Options[0]
	switch sub.Name {
	case "analytics":
		return c.runAnalytics(slash)
	case "config":
		return c.runConfig(slash)
	case "update-config":
		return c.runUpdateConfig(slash, sub)
	default:
		return reply(s, e, embeds.Error("Unknown Subcommand", fmt.Sprintf("Unknown subcommand: %s", sub.Name)))
	}
}

func (c *AdminCommand) runAnalytics(slash *command.SlashInteractionContext) error {
	s, e := slash.Session, slash.Event

	snap, err := slash.Deps.Client.Analytics(context.Background())
	if err != nil {
		return reply(s, e, apiErrorEmbed("Failed to fetch analytics", err))
	}
	return reply(s, e, embeds.Analytics(snap))
}

func (c *AdminCommand) runConfig(slash *command.SlashInteractionContext) error {
	s, e := slash.Session, slash.Event

	if !slash.Deps.Resolver.HasAccess(slash.Caller, permission.TierAdmin) {
		return reply(s, e, embeds.PermissionDenied(permission.TierAdmin))
	}

	snap, err := slash.Deps.Client.Config(context.Background())
	if err != nil {
		return reply(s, e, apiErrorEmbed("Failed to fetch configuration", err))
	}
	return reply(s, e, embeds.Config(snap))
}

func (c *AdminCommand) runUpdateConfig(slash *command.SlashInteractionContext, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	s, e := slash.Session, slash.Event

	if !slash.Deps.Resolver.HasAccess(slash.Caller, permission.TierAdmin) {
		return reply(s, e, embeds.PermissionDenied(permission.TierAdmin))
	}

	// Discord only sends the options the caller actually filled in, so
	// collecting them preserves the omitted-vs-explicit distinction.
	var update api.ConfigUpdate
	for _, opt := range sub.Options {
		switch opt.Name {
		case "cooldown_seconds":
			v := int(opt.IntValue())
			update.CooldownSeconds = &v
		case "faucet_amount":
			v := opt.FloatValue()
			update.FaucetAmount = &v
		case "max_requests_per_ip":
			v := int(opt.IntValue())
			update.MaxRequestsPerIP = &v
		case "max_requests_per_wallet":
			v := int(opt.IntValue())
			update.MaxRequestsPerWallet = &v
		case "enabled":
			v := opt.BoolValue()
			update.Enabled = &v
		}
	}

	if update.IsEmpty() {
		return reply(s, e, embeds.Error(
			"No Configuration Provided",
			"Please provide at least one configuration option to update.",
		))
	}

	if err := slash.Deps.Client.UpdateConfig(context.Background(), update); err != nil {
		return reply(s, e, apiErrorEmbed("Failed to update configuration", err))
	}
	return reply(s, e, embeds.ConfigUpdated(update.Fields()))
}

// apiErrorEmbed distinguishes a missing shared secret (a bot deployment
// problem) from backend failures.
func apiErrorEmbed(title string, err error) *discordgo.MessageEmbed {
	if errors.Is(err, api.ErrSecretMissing) {
		return embeds.Error("Configuration Error",
			"The bot's shared secret is not configured, so this command is unavailable. Set `DISCORD_BOT_SECRET` and try again.")
	}
	return embeds.Error(title, err.Error())
}

func reply(s *discordgo.Session, e *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	if err := bot.EditResponseEmbed(s, e, embed); err != nil {
		log.Printf("[WARN] Failed to deliver reply: %v", err)
	}
	return nil
}
