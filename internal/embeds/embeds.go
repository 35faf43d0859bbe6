// Package embeds turns API results and snapshots into Discord embeds. All
// constructors are pure: they take data in and return a ready-to-send embed,
// so they can be tested without a session.
package embeds

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"faucet-bot/internal/faucet"
	"faucet-bot/internal/permission"
)

const (
	ColorSuccess   = 0x4ECDC4
	ColorError     = 0xFF6B6B
	ColorAnalytics = 0x9B59B6
	ColorInfo      = 0x3498DB
)

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Success renders a completed token request.
func Success(res faucet.Result, walletAddress string) *discordgo.MessageEmbed {
	desc := res.Message
	if desc == "" {
		desc = "Your testnet tokens have been sent!"
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Wallet Address", Value: fmt.Sprintf("`%s`", walletAddress)},
	}
	if res.TxHash != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Transaction Hash",
			Value: fmt.Sprintf("`%s`", res.TxHash),
		})
	}

	return &discordgo.MessageEmbed{
		Title:       "✅ Tokens Requested Successfully",
		Description: desc,
		Color:       ColorSuccess,
		Fields:      fields,
		Timestamp:   timestamp(),
	}
}

// RateLimited renders a 429 outcome with the absolute next-claim time and a
// countdown. The remaining time clamps to zero when RetryAt is already past.
func RateLimited(res faucet.Result, now time.Time) *discordgo.MessageEmbed {
	desc := res.Message
	if desc == "" {
		desc = "Rate limit exceeded. Please try again later."
	}

	return &discordgo.MessageEmbed{
		Title:       "⏰ Rate Limited",
		Description: desc,
		Color:       ColorError,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Next Claim Available",
				Value:  fmt.Sprintf("<t:%d:F>", res.RetryAt.Unix()),
				Inline: true,
			},
			{
				Name:   "Time Remaining",
				Value:  FormatDuration(res.RetryAt.Sub(now)),
				Inline: true,
			},
		},
		Timestamp: timestamp(),
	}
}

// Error renders a generic failure.
func Error(title, description string) *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetColor(ColorError).
		SetTitle("❌ " + title).
		SetDescription(description)
	e.MessageEmbed.Timestamp = timestamp()
	return e.MessageEmbed
}

// Analytics renders the backend's request statistics.
func Analytics(a *faucet.AnalyticsSnapshot) *discordgo.MessageEmbed {
	t := a.Totals
	return &discordgo.MessageEmbed{
		Title:       "📊 Faucet Analytics",
		Description: "Current statistics for the testnet faucet.",
		Color:       ColorAnalytics,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Total Requests", Value: fmt.Sprintf("%d", t.Requests), Inline: true},
			{Name: "Successful", Value: fmt.Sprintf("%d", t.Success), Inline: true},
			{Name: "Failed", Value: fmt.Sprintf("%d", t.Failed), Inline: true},
			{Name: "Tokens Dispensed", Value: FormatTokens(t.TokensDispensed) + " SUI", Inline: true},
			{Name: "Success Rate", Value: FormatSuccessRate(t.Success, t.Requests), Inline: true},
			{Name: "Recent Entries", Value: fmt.Sprintf("%d", len(a.Recent)), Inline: true},
		},
		Timestamp: timestamp(),
	}
}

// Config renders the backend's current faucet settings.
func Config(c *faucet.ConfigSnapshot) *discordgo.MessageEmbed {
	status := "🔴 Disabled"
	if c.Enabled {
		status = "🟢 Enabled"
	}
	return &discordgo.MessageEmbed{
		Title:       "⚙️ Faucet Configuration",
		Description: "Current faucet settings and status.",
		Color:       ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Available Balance", Value: fmt.Sprintf("%.2f SUI", c.AvailableBalance), Inline: true},
			{Name: "Amount per Request", Value: fmt.Sprintf("%g SUI", c.FaucetAmount), Inline: true},
			{Name: "Cooldown Period", Value: fmt.Sprintf("%d seconds", c.CooldownSeconds), Inline: true},
			{Name: "Max Requests per Wallet", Value: fmt.Sprintf("%d", c.MaxRequestsPerWallet), Inline: true},
			{Name: "Max Requests per IP", Value: fmt.Sprintf("%d", c.MaxRequestsPerIP), Inline: true},
			{Name: "Status", Value: status, Inline: true},
		},
		Timestamp: timestamp(),
	}
}

// ConfigUpdated confirms a successful partial update.
func ConfigUpdated(fields []string) *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetColor(ColorSuccess).
		SetTitle("✅ Configuration Updated").
		SetDescription("Faucet configuration has been updated successfully.").
		AddField("Updated Fields", strings.Join(fields, ", "))
	e.MessageEmbed.Timestamp = timestamp()
	return e.MessageEmbed
}

// Status renders the backend reachability check, with config details when the
// shared secret is available.
func Status(healthy bool, cfg *faucet.ConfigSnapshot) *discordgo.MessageEmbed {
	color := ColorSuccess
	desc := "🟢 The faucet backend is reachable."
	if !healthy {
		color = ColorError
		desc = "🔴 The faucet backend is not responding. Please try again later."
	}

	e := &discordgo.MessageEmbed{
		Title:       "🚰 Faucet Status",
		Description: desc,
		Color:       color,
		Timestamp:   timestamp(),
	}
	if cfg != nil {
		e.Fields = []*discordgo.MessageEmbedField{
			{Name: "Amount per Request", Value: fmt.Sprintf("%g SUI", cfg.FaucetAmount), Inline: true},
			{Name: "Cooldown Period", Value: fmt.Sprintf("%d seconds", cfg.CooldownSeconds), Inline: true},
		}
	}
	return e
}

// PermissionDenied names the tier a command requires.
func PermissionDenied(required permission.Tier) *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetColor(ColorError).
		SetTitle("❌ Permission Denied").
		SetDescription(fmt.Sprintf("You need %s permissions to use this command.", required))
	e.MessageEmbed.Timestamp = timestamp()
	return e.MessageEmbed
}

// PermissionInfo shows a caller their resolved tier and roles.
func PermissionInfo(c permission.Caller, tier permission.Tier) *discordgo.MessageEmbed {
	roles := "No roles"
	if len(c.RoleIDs) > 0 {
		roles = "`" + strings.Join(c.RoleIDs, "`, `") + "`"
	}
	return &discordgo.MessageEmbed{
		Title: "🔐 Your Permission Information",
		Color: ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "User", Value: fmt.Sprintf("%s (%s)", c.DisplayName, c.ID)},
			{Name: "Roles", Value: roles},
			{Name: "Permission Level", Value: tier.String(), Inline: true},
			{Name: "Level Number", Value: fmt.Sprintf("%d", int(tier)), Inline: true},
			{Name: "Available Commands", Value: availableCommands(tier)},
		},
		Timestamp: timestamp(),
	}
}

func availableCommands(tier permission.Tier) string {
	cmds := []string{
		"`/help` - Show help",
		"`/faucet request` - Request tokens",
		"`/faucet status` - Check faucet status",
	}
	if tier >= permission.TierModerator {
		cmds = append(cmds, "`/admin analytics` - View statistics")
	}
	if tier >= permission.TierAdmin {
		cmds = append(cmds,
			"`/admin config` - View configuration",
			"`/admin update-config` - Update configuration",
		)
	}
	return strings.Join(cmds, "\n")
}

// Help lists every command with its required tier.
func Help() *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetColor(ColorInfo).
		SetTitle("🤖 Faucet Bot Help").
		SetDescription("Request testnet SUI tokens and manage the faucet.").
		AddField("Request Tokens",
			"`/faucet request <wallet_address>` - Request testnet tokens\n"+
				"Example: `/faucet request 0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef`").
		AddField("Faucet Status", "`/faucet status` - Check whether the faucet is up").
		AddField("Your Permissions", "`/debug permissions` - Show your access tier").
		AddField("Moderation", "`/admin analytics` - View faucet statistics (moderators and up)").
		AddField("Administration",
			"`/admin config` - View faucet settings (admins)\n"+
				"`/admin update-config` - Update faucet settings (admins)")
	e.MessageEmbed.Timestamp = timestamp()
	return e.MessageEmbed
}
