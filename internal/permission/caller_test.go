package permission

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func interaction(i discordgo.Interaction) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &i}
}

func TestCallerFromGuildInteraction(t *testing.T) {
	c := CallerFromInteraction(interaction(discordgo.Interaction{
		Member: &discordgo.Member{
			Nick:  "nickname",
			Roles: []string{"r1", "r2"},
			User:  &discordgo.User{ID: "u1", Username: "alice", GlobalName: "Alice"},
		},
	}))

	assert.Equal(t, Caller{ID: "u1", DisplayName: "nickname", RoleIDs: []string{"r1", "r2"}}, c)
}

func TestCallerNameFallbacks(t *testing.T) {
	noNick := CallerFromInteraction(interaction(discordgo.Interaction{
		Member: &discordgo.Member{
			User: &discordgo.User{ID: "u1", Username: "alice", GlobalName: "Alice"},
		},
	}))
	assert.Equal(t, "Alice", noNick.DisplayName)

	noGlobal := CallerFromInteraction(interaction(discordgo.Interaction{
		Member: &discordgo.Member{
			User: &discordgo.User{ID: "u1", Username: "alice"},
		},
	}))
	assert.Equal(t, "alice", noGlobal.DisplayName)
}

func TestCallerFromDMInteraction(t *testing.T) {
	c := CallerFromInteraction(interaction(discordgo.Interaction{
		User: &discordgo.User{ID: "u2", Username: "bob"},
	}))

	assert.Equal(t, "u2", c.ID)
	assert.Empty(t, c.RoleIDs, "DM callers carry no roles")
}

func TestCallerFromDegenerateInteraction(t *testing.T) {
	assert.Equal(t, Caller{}, CallerFromInteraction(nil))
	assert.Equal(t, Caller{}, CallerFromInteraction(interaction(discordgo.Interaction{})))
	assert.Equal(t, Caller{}, CallerFromInteraction(interaction(discordgo.Interaction{
		Member: &discordgo.Member{},
	})))
}
