package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	// t.Setenv registers the restore; Unsetenv then makes the variable
	// genuinely absent so envDefault values apply.
	for _, key := range []string{
		"DISCORD_TOKEN", "API_BASE_URL", "DISCORD_BOT_SECRET",
		"ADMIN_ROLE_ID", "MODERATOR_ROLE_ID", "ADMIN_USER_IDS",
		"MODERATOR_USER_IDS", "INIT_SLASH_COMMANDS", "HEALTH_ADDR",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := New()

	assert.Equal(t, "http://localhost:5001/api", cfg.APIBaseURL)
	assert.True(t, cfg.InitSlashCommands)
	assert.Empty(t, cfg.DiscordToken)
	assert.Empty(t, cfg.AdminUserIDs)
}

func TestNewFromEnvironment(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("API_BASE_URL", "https://faucet.example.com/api")
	t.Setenv("ADMIN_USER_IDS", "111,222,333")
	t.Setenv("MODERATOR_USER_IDS", "444")
	t.Setenv("INIT_SLASH_COMMANDS", "false")
	t.Setenv("HEALTH_ADDR", ":8080")

	cfg := New()

	assert.Equal(t, "token-123", cfg.DiscordToken)
	assert.Equal(t, "https://faucet.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, []string{"111", "222", "333"}, cfg.AdminUserIDs)
	assert.Equal(t, []string{"444"}, cfg.ModeratorUserIDs)
	assert.False(t, cfg.InitSlashCommands)
	assert.Equal(t, ":8080", cfg.HealthAddr)
}

func TestGetReadsFresh(t *testing.T) {
	t.Setenv("DISCORD_BOT_SECRET", "first")
	assert.Equal(t, "first", Get("DISCORD_BOT_SECRET"))

	t.Setenv("DISCORD_BOT_SECRET", "rotated")
	assert.Equal(t, "rotated", Get("DISCORD_BOT_SECRET"))
}
