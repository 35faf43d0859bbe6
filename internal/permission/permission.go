// Package permission maps Discord callers to the bot's access tiers.
// Tiers form a total order: a higher tier may run everything a lower one can.
package permission

import (
	"slices"

	"faucet-bot/internal/config"
)

type Tier int

const (
	TierUser Tier = iota
	TierModerator
	TierAdmin
)

func (t Tier) String() string {
	switch t {
	case TierAdmin:
		return "Admin"
	case TierModerator:
		return "Moderator"
	case TierUser:
		return "User"
	default:
		return "Unknown"
	}
}

// Caller is a per-interaction snapshot of the user issuing a command. It is
// built once at the interaction boundary so the core never touches the raw
// Discord member object.
type Caller struct {
	ID          string
	DisplayName string
	RoleIDs     []string
}

// Source supplies the configuration a resolution reads. The default re-reads
// the environment on every call, so role ids and allow-lists can be rotated
// without restarting the bot.
type Source func() *config.Config

type Resolver struct {
	source Source
}

func NewResolver(source Source) *Resolver {
	if source == nil {
		source = config.New
	}
	return &Resolver{source: source}
}

// Resolve returns the caller's tier. First match wins, highest tier first:
// admin role, admin id allow-list, moderator role, moderator id allow-list,
// then user. It never fails; missing configuration or an empty caller just
// falls through to TierUser.
func (r *Resolver) Resolve(c Caller) Tier {
	cfg := r.source()
	if cfg == nil || c.ID == "" {
		return TierUser
	}

	if cfg.AdminRoleID != "" && slices.Contains(c.RoleIDs, cfg.AdminRoleID) {
		return TierAdmin
	}
	if slices.Contains(cfg.AdminUserIDs, c.ID) {
		return TierAdmin
	}
	if cfg.ModeratorRoleID != "" && slices.Contains(c.RoleIDs, cfg.ModeratorRoleID) {
		return TierModerator
	}
	if slices.Contains(cfg.ModeratorUserIDs, c.ID) {
		return TierModerator
	}
	return TierUser
}

// HasAccess reports whether the caller's resolved tier is at least required.
func (r *Resolver) HasAccess(c Caller, required Tier) bool {
	return r.Resolve(c) >= required
}
