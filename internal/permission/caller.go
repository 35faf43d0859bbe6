package permission

import (
	"github.com/bwmarrin/discordgo"
)

// CallerFromInteraction builds a Caller snapshot from an interaction event.
// Guild interactions carry a member with roles; DM interactions only carry a
// user, which resolves with no roles at all.
func CallerFromInteraction(e *discordgo.InteractionCreate) Caller {
	if e == nil {
		return Caller{}
	}

	if e.Member != nil && e.Member.User != nil {
		name := e.Member.Nick
		if name == "" {
			name = displayName(e.Member.User)
		}
		return Caller{
			ID:          e.Member.User.ID,
			DisplayName: name,
			RoleIDs:     e.Member.Roles,
		}
	}

	if e.User != nil {
		return Caller{
			ID:          e.User.ID,
			DisplayName: displayName(e.User),
		}
	}

	return Caller{}
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
