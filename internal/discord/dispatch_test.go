package discord

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faucet-bot/internal/command"
	"faucet-bot/internal/config"
	"faucet-bot/internal/permission"
)

type fakeCommand struct {
	name string
	tier permission.Tier
	runs int
	err  error
}

func (c *fakeCommand) Name() string              { return c.name }
func (c *fakeCommand) Description() string       { return "fake" }
func (c *fakeCommand) Group() string             { return "fake" }
func (c *fakeCommand) Category() string          { return "fake" }
func (c *fakeCommand) MinTier() permission.Tier  { return c.tier }
func (c *fakeCommand) Run(ctx interface{}) error { c.runs++; return c.err }

func dispatchFixture(t *testing.T, cmds ...*fakeCommand) (*command.Registry, *permission.Resolver) {
	t.Helper()
	registry := command.NewRegistry()
	for _, c := range cmds {
		require.NoError(t, registry.Register(c))
	}
	resolver := permission.NewResolver(func() *config.Config {
		return &config.Config{AdminRoleID: "role-admin", ModeratorRoleID: "role-mod"}
	})
	return registry, resolver
}

func countingReply(replies *int) func(*discordgo.MessageEmbed) error {
	return func(*discordgo.MessageEmbed) error { *replies++; return nil }
}

func TestDispatchUnknownCommandIsDropped(t *testing.T) {
	registry, resolver := dispatchFixture(t)
	replies := 0

	err := Dispatch(registry, resolver, "ghost", permission.Caller{ID: "u1"}, nil, countingReply(&replies))

	require.NoError(t, err)
	assert.Zero(t, replies, "unknown commands get no reply")
}

func TestDispatchBelowTier(t *testing.T) {
	cmd := &fakeCommand{name: "admin", tier: permission.TierAdmin}
	registry, resolver := dispatchFixture(t, cmd)
	replies := 0

	err := Dispatch(registry, resolver, "admin", permission.Caller{ID: "u1"}, nil, countingReply(&replies))

	require.NoError(t, err)
	assert.Equal(t, 1, replies, "exactly one permission-denied reply")
	assert.Zero(t, cmd.runs, "handler must never run below tier")
}

func TestDispatchAllowed(t *testing.T) {
	cmd := &fakeCommand{name: "admin", tier: permission.TierAdmin}
	registry, resolver := dispatchFixture(t, cmd)
	replies := 0

	caller := permission.Caller{ID: "u1", RoleIDs: []string{"role-admin"}}
	err := Dispatch(registry, resolver, "admin", caller, nil, countingReply(&replies))

	require.NoError(t, err)
	assert.Equal(t, 1, cmd.runs)
	assert.Zero(t, replies, "the handler owns the reply once dispatched")
}

func TestDispatchTierIsResolvedPerCall(t *testing.T) {
	cmd := &fakeCommand{name: "admin", tier: permission.TierModerator}
	registry, resolver := dispatchFixture(t, cmd)
	replies := 0

	plain := permission.Caller{ID: "u1"}
	require.NoError(t, Dispatch(registry, resolver, "admin", plain, nil, countingReply(&replies)))
	assert.Zero(t, cmd.runs)

	promoted := permission.Caller{ID: "u1", RoleIDs: []string{"role-mod"}}
	require.NoError(t, Dispatch(registry, resolver, "admin", promoted, nil, countingReply(&replies)))
	assert.Equal(t, 1, cmd.runs)
}

func TestDispatchPropagatesRunError(t *testing.T) {
	boom := errors.New("boom")
	cmd := &fakeCommand{name: "faucet", tier: permission.TierUser, err: boom}
	registry, resolver := dispatchFixture(t, cmd)

	err := Dispatch(registry, resolver, "faucet", permission.Caller{ID: "u1"}, nil, countingReply(new(int)))
	assert.ErrorIs(t, err, boom)
}
