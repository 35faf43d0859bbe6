// Package version carries app identity. BuildDate and GoVersion are injected
// at build time via -ldflags.
package version

var (
	AppName        = "Faucet Bot"
	AppDescription = "A Discord bot that dispenses SUI testnet tokens through a remote faucet service"
	BuildDate      string
	GoVersion      string
)
