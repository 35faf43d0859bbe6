package config

import (
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, falling back to system environment variables")
	}
}

// Get returns the raw environment value for key. Used by callers that need a
// fresh read on every access (e.g. the faucet client's shared secret).
func Get(key string) string {
	return os.Getenv(key)
}

type Config struct {
	DiscordToken      string   `env:"DISCORD_TOKEN"`
	APIBaseURL        string   `env:"API_BASE_URL" envDefault:"http://localhost:5001/api"`
	BotSecret         string   `env:"DISCORD_BOT_SECRET"`
	AdminRoleID       string   `env:"ADMIN_ROLE_ID"`
	ModeratorRoleID   string   `env:"MODERATOR_ROLE_ID"`
	AdminUserIDs      []string `env:"ADMIN_USER_IDS" envSeparator:","`
	ModeratorUserIDs  []string `env:"MODERATOR_USER_IDS" envSeparator:","`
	InitSlashCommands bool     `env:"INIT_SLASH_COMMANDS" envDefault:"true"`
	HealthAddr        string   `env:"HEALTH_ADDR"`
}

// New reads configuration from the environment. It never fails: parse errors
// are logged and the zero value is kept, so permission lookups that re-read
// config per interaction can not take the process down. Required values are
// validated once at startup by the caller.
func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Printf("[ERR] Failed to parse environment config: %v", err)
	}
	return cfg
}

// WarnMissingRoles logs startup warnings for absent role configuration.
// Missing role ids are not an error: the matching tier rule simply never
// fires and only the explicit id allow-lists remain.
func (c *Config) WarnMissingRoles() {
	if c.AdminRoleID == "" {
		log.Println("[WARN] ADMIN_ROLE_ID is not set; admin tier is only reachable via ADMIN_USER_IDS")
	}
	if c.ModeratorRoleID == "" {
		log.Println("[WARN] MODERATOR_ROLE_ID is not set; moderator tier is only reachable via MODERATOR_USER_IDS")
	}
}
