package core

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"faucet-bot/internal/bot"
	"faucet-bot/internal/command"
	"faucet-bot/internal/embeds"
	"faucet-bot/internal/permission"
)

// DebugCommand lets any caller inspect their resolved tier and lets admins
// copy role ids into the bot configuration.
type DebugCommand struct{}

func (c *DebugCommand) Name() string        { return "debug" }
func (c *DebugCommand) Description() string { return "Inspect permissions and roles" }
func (c *DebugCommand) Group() string       { return "core" }
func (c *DebugCommand) Category() string    { return "🛠️ Maintenance" }

func (c *DebugCommand) MinTier() permission.Tier { return permission.TierUser }

func (c *DebugCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "permissions",
				Description: "Show your current permissions and role info",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "roles",
				Description: "List all server roles with their ids",
			},
		},
	}
}

func (c *DebugCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*command.SlashInteractionContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	s := slash.Session
	e := slash.Event

	data := e.ApplicationCommandData()
	if len(data.Options) == 0 {
		return respond(s, e, embeds.Error("Unknown Subcommand", "No subcommand provided."))
	}

	switch data.Options[0].Name {
	case "permissions":
		tier := slash.Deps.Resolver.Resolve(slash.Caller)
		return respond(s, e, embeds.PermissionInfo(slash.Caller, tier))

	case "roles":
		if e.GuildID == "" {
			return respond(s, e, embeds.Error("Server Only", "This command can only be used in a server."))
		}
		return respond(s, e, rolesEmbed(s, e.GuildID))

	default:
		return respond(s, e, embeds.Error("Unknown Subcommand", "Unknown subcommand."))
	}
}

func rolesEmbed(s *discordgo.Session, guildID string) *discordgo.MessageEmbed {
	guild, err := s.State.Guild(guildID)
	if err != nil || guild == nil {
		guild, err = s.Guild(guildID)
		if err != nil || guild == nil {
			return embeds.Error("Lookup Failed", "Could not fetch the server's roles.")
		}
	}

	roles := make([]*discordgo.Role, len(guild.Roles))
	copy(roles, guild.Roles)
	sort.Slice(roles, func(i, j int) bool { return roles[i].Position > roles[j].Position })

	lines := make([]string, 0, len(roles))
	for _, r := range roles {
		lines = append(lines, fmt.Sprintf("**%s**: `%s`", r.Name, r.ID))
	}
	desc := strings.Join(lines, "\n")
	if desc == "" {
		desc = "No roles found"
	}

	return &discordgo.MessageEmbed{
		Title:       "📋 Server Roles",
		Description: desc,
		Color:       embeds.ColorInfo,
	}
}

func respond(s *discordgo.Session, e *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	if err := bot.RespondEmbedEphemeral(s, e, embed); err != nil {
		log.Printf("[WARN] Failed to deliver debug reply: %v", err)
	}
	return nil
}
