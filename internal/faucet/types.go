package faucet

import "time"

// ResultKind tags the outcome of a token request.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultRateLimited
	ResultError
)

// Result is the normalized outcome of a faucet token request. Handlers never
// see transport-level errors; the client folds every failure class into one
// of these.
type Result struct {
	Kind    ResultKind
	Message string

	// TxHash is set on success when the backend reports a transaction.
	TxHash string

	// RetryAt is the absolute time the caller may claim again. Only set for
	// ResultRateLimited.
	RetryAt time.Time
}

// ConfigSnapshot mirrors the backend's faucet configuration. It is fetched
// fresh on every admin command and never cached.
type ConfigSnapshot struct {
	AvailableBalance     float64 `json:"availableBalance"`
	FaucetAmount         float64 `json:"faucetAmount"`
	CooldownSeconds      int     `json:"cooldownSeconds"`
	MaxRequestsPerWallet int     `json:"maxRequestsPerWallet"`
	MaxRequestsPerIP     int     `json:"maxRequestsPerIp"`
	Enabled              bool    `json:"enabled"`
}

type AnalyticsTotals struct {
	Requests int64 `json:"requests"`
	Success  int64 `json:"success"`
	Failed   int64 `json:"failed"`

	// TokensDispensed is in the chain's minor unit (1e9 per whole token).
	TokensDispensed int64 `json:"tokensDispensed"`
}

type AnalyticsEntry struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

// AnalyticsSnapshot mirrors the backend's request analytics. Same no-cache
// policy as ConfigSnapshot.
type AnalyticsSnapshot struct {
	Totals AnalyticsTotals  `json:"totals"`
	Recent []AnalyticsEntry `json:"recent"`
}

// ConfigUpdate carries only the fields the caller explicitly set. Pointer
// fields keep "omitted" distinguishable from an explicit zero/false.
type ConfigUpdate struct {
	CooldownSeconds      *int     `json:"cooldownSeconds,omitempty"`
	FaucetAmount         *float64 `json:"faucetAmount,omitempty"`
	MaxRequestsPerIP     *int     `json:"maxRequestsPerIp,omitempty"`
	MaxRequestsPerWallet *int     `json:"maxRequestsPerWallet,omitempty"`
	Enabled              *bool    `json:"enabled,omitempty"`
}

func (u ConfigUpdate) IsEmpty() bool {
	return u.CooldownSeconds == nil &&
		u.FaucetAmount == nil &&
		u.MaxRequestsPerIP == nil &&
		u.MaxRequestsPerWallet == nil &&
		u.Enabled == nil
}

// Fields lists the names of the fields that are set, for display in the
// update confirmation.
func (u ConfigUpdate) Fields() []string {
	var fields []string
	if u.CooldownSeconds != nil {
		fields = append(fields, "cooldownSeconds")
	}
	if u.FaucetAmount != nil {
		fields = append(fields, "faucetAmount")
	}
	if u.MaxRequestsPerIP != nil {
		fields = append(fields, "maxRequestsPerIp")
	}
	if u.MaxRequestsPerWallet != nil {
		fields = append(fields, "maxRequestsPerWallet")
	}
	if u.Enabled != nil {
		fields = append(fields, "enabled")
	}
	return fields
}
