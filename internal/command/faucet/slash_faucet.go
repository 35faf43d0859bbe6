package faucet

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"time"

	"github.com/bwmarrin/discordgo"

	"faucet-bot/internal/bot"
	"faucet-bot/internal/command"
	"faucet-bot/internal/embeds"
	api "faucet-bot/internal/faucet"
	"faucet-bot/internal/permission"
)

// walletAddressRE matches a 32-byte hex address with the 0x prefix.
var walletAddressRE = regexp.MustCompile(`^0x[a-fA-F0-9]{64}$`)

var timeNow = time.Now

// ValidWalletAddress reports whether s is a well-formed wallet address.
func ValidWalletAddress(s string) bool {
	return walletAddressRE.MatchString(s)
}

type FaucetCommand struct{}

func (c *FaucetCommand) Name() string        { return "faucet" }
func (c *FaucetCommand) Description() string { return "Request SUI testnet tokens" }
func (c *FaucetCommand) Group() string       { return "faucet" }
func (c *FaucetCommand) Category() string    { return "🚰 Faucet" }

func (c *FaucetCommand) MinTier() permission.Tier { return permission.TierUser }

func (c *FaucetCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "request",
				Description: "Request SUI testnet tokens",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "wallet_address",
						Description: "Your Sui wallet address (0x...)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "status",
				Description: "Check whether the faucet backend is up",
			},
		},
	}
}

func (c *FaucetCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	// Ack first; everything after this may hit the network.
	if err := bot.RespondDeferredEphemeral(s, e); err != nil {
		return fmt.Errorf("failed to defer reply: %w", err)
	}

	data := e.ApplicationCommandData()
	if len(data.Options) == 0 {
		return reply(s, e, embeds.Error("Unknown Subcommand", "No subcommand provided."))
	}

	sub := data.Options[0]
	switch sub.Name {
	case "request":
		return c.runRequest(slash, sub)
	case "status":
		return c.runStatus(slash)
	default:
		return reply(s, e, embeds.Error("Unknown Subcommand", fmt.Sprintf("Unknown subcommand: %s", sub.Name)))
	}
}

func (c *FaucetCommand) runRequest(slash *command.SlashInteractionContext, sub *discordgo.ApplicationCommandInteractionDataOption) error {
	s := slash.Session
	e := slash.Event

	walletAddress := command.OptionString(sub.Options, "wallet_address")
	if !ValidWalletAddress(walletAddress) {
		return reply(s, e, embeds.Error(
			"Invalid Wallet Address",
			"Please provide a valid Sui wallet address in the format: `0x` followed by 64 hexadecimal characters.\n\n"+
				"Example: `0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef`",
		))
	}

	res := slash.Deps.Client.RequestTokens(context.Background(), walletAddress, slash.Caller.ID)

	switch res.Kind {
	case api.ResultSuccess:
		return reply(s, e, embeds.Success(res, walletAddress))
	case api.ResultRateLimited:
		return reply(s, e, embeds.RateLimited(res, timeNow()))
	default:
		return reply(s, e, embeds.Error("Request Failed", res.Message))
	}
}

func (c *FaucetCommand) runStatus(slash *command.SlashInteractionContext) error {
	s := slash.Session
	e := slash.Event
	client := slash.Deps.Client

	healthy := client.HealthCheck(context.Background())

	// Config details are a bonus; they need the shared secret, which some
	// deployments never configure.
	var cfg *api.ConfigSnapshot
	if healthy {
		if snap, err := client.Config(context.Background()); err == nil {
			cfg = snap
		}
	}

	return reply(s, e, embeds.Status(healthy, cfg))
}

// reply delivers the terminal response for a deferred interaction. A failed
// delivery (expired or already-answered interaction) is logged, never fatal.
func reply(s *discordgo.Session, e *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	if err := bot.EditResponseEmbed(s, e, embed); err != nil {
		log.Printf("[WARN] Failed to deliver reply: %v", err)
	}
	return nil
}
