package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faucet-bot/internal/config"
)

func fixedSource(cfg *config.Config) Source {
	return func() *config.Config { return cfg }
}

func testResolver() *Resolver {
	return NewResolver(fixedSource(&config.Config{
		AdminRoleID:      "role-admin",
		ModeratorRoleID:  "role-mod",
		AdminUserIDs:     []string{"user-admin-1", "user-admin-2"},
		ModeratorUserIDs: []string{"user-mod-1"},
	}))
}

func TestResolveOrder(t *testing.T) {
	r := testResolver()

	tests := []struct {
		name   string
		caller Caller
		want   Tier
	}{
		{"admin role", Caller{ID: "u1", RoleIDs: []string{"role-admin"}}, TierAdmin},
		{"admin allow-list", Caller{ID: "user-admin-1"}, TierAdmin},
		{"moderator role", Caller{ID: "u2", RoleIDs: []string{"role-mod"}}, TierModerator},
		{"moderator allow-list", Caller{ID: "user-mod-1"}, TierModerator},
		{"plain user", Caller{ID: "u3", RoleIDs: []string{"role-other"}}, TierUser},
		{"admin list beats moderator role", Caller{ID: "user-admin-2", RoleIDs: []string{"role-mod"}}, TierAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.caller))
		})
	}
}

func TestResolveNeverFails(t *testing.T) {
	r := testResolver()
	assert.Equal(t, TierUser, r.Resolve(Caller{}))

	nilCfg := NewResolver(fixedSource(nil))
	assert.Equal(t, TierUser, nilCfg.Resolve(Caller{ID: "user-admin-1"}))
}

func TestResolveMissingRoleConfigDegrades(t *testing.T) {
	r := NewResolver(fixedSource(&config.Config{}))
	assert.Equal(t, TierUser, r.Resolve(Caller{ID: "u1", RoleIDs: []string{"role-admin"}}))
}

// An empty configured role id must not match a caller with an empty role
// entry; the rule is skipped entirely.
func TestResolveEmptyRoleIDNeverMatches(t *testing.T) {
	r := NewResolver(fixedSource(&config.Config{ModeratorRoleID: ""}))
	assert.Equal(t, TierUser, r.Resolve(Caller{ID: "u1", RoleIDs: []string{""}}))
}

func TestHasAccessMonotonic(t *testing.T) {
	r := testResolver()

	admin := Caller{ID: "user-admin-1"}
	require.True(t, r.HasAccess(admin, TierAdmin))
	assert.True(t, r.HasAccess(admin, TierModerator))
	assert.True(t, r.HasAccess(admin, TierUser))

	mod := Caller{ID: "u1", RoleIDs: []string{"role-mod"}}
	require.True(t, r.HasAccess(mod, TierModerator))
	assert.True(t, r.HasAccess(mod, TierUser))
	assert.False(t, r.HasAccess(mod, TierAdmin))
}

func TestHasAccessMatchesResolve(t *testing.T) {
	r := testResolver()
	callers := []Caller{
		{ID: "user-admin-1"},
		{ID: "u1", RoleIDs: []string{"role-admin"}},
		{ID: "u2", RoleIDs: []string{"role-mod"}},
		{ID: "user-mod-1"},
		{ID: "u3"},
		{},
	}
	tiers := []Tier{TierUser, TierModerator, TierAdmin}

	for _, c := range callers {
		for _, tier := range tiers {
			assert.Equal(t, r.Resolve(c) >= tier, r.HasAccess(c, tier),
				"caller %q tier %v", c.ID, tier)
		}
	}
}

func TestTierString(t *testing.T) {
	assert.Equal(t, "User", TierUser.String())
	assert.Equal(t, "Moderator", TierModerator.String())
	assert.Equal(t, "Admin", TierAdmin.String())
	assert.Equal(t, "Unknown", Tier(42).String())
}
