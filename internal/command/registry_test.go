package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faucet-bot/internal/permission"
)

type stubCommand struct {
	name string
	tier permission.Tier
	runs int
}

func (c *stubCommand) Name() string              { return c.name }
func (c *stubCommand) Description() string       { return "stub" }
func (c *stubCommand) Group() string             { return "stub" }
func (c *stubCommand) Category() string          { return "stub" }
func (c *stubCommand) MinTier() permission.Tier  { return c.tier }
func (c *stubCommand) Run(ctx interface{}) error { c.runs++; return nil }

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "alpha"}))

	got, ok := r.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", got.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistryDuplicateName(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&stubCommand{name: "alpha"}))

	err := r.Register(&stubCommand{name: "alpha"})
	assert.EqualError(t, err, `command "alpha" is already registered`)
}

func TestRegistryAllSorted(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(&stubCommand{name: name}))
	}

	var names []string
	for _, c := range r.All() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(label string) Middleware {
		return func(next Command) Command {
			return &Wrapped{Command: next, RunFunc: func(ctx interface{}) error {
				order = append(order, label)
				return next.Run(ctx)
			}}
		}
	}

	inner := &stubCommand{name: "alpha"}
	r := NewRegistry()
	require.NoError(t, r.Register(inner, mw("outer"), mw("inner")))

	c, ok := r.Get("alpha")
	require.True(t, ok)
	require.NoError(t, c.Run(nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, inner.runs)
}

func TestWrappedKeepsMetadata(t *testing.T) {
	inner := &stubCommand{name: "alpha", tier: permission.TierAdmin}
	wrapped := Apply(inner, func(next Command) Command {
		return &Wrapped{Command: next}
	})

	assert.Equal(t, "alpha", wrapped.Name())
	assert.Equal(t, permission.TierAdmin, wrapped.MinTier())

	// A wrapped command without a slash definition yields nil, not a panic.
	sp, ok := wrapped.(SlashProvider)
	require.True(t, ok)
	assert.Nil(t, sp.SlashDefinition())
}
