package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"faucet-bot/internal/command"
	admincmd "faucet-bot/internal/command/admin"
	"faucet-bot/internal/command/core"
	faucetcmd "faucet-bot/internal/command/faucet"
	"faucet-bot/internal/config"
	"faucet-bot/internal/discord"
	"faucet-bot/internal/faucet"
	"faucet-bot/internal/health"
	"faucet-bot/internal/middleware"
	"faucet-bot/internal/permission"
	v "faucet-bot/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v...", v.AppName)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.New()
	if cfg.DiscordToken == "" {
		log.Fatal("DISCORD_TOKEN is not set")
	}
	cfg.WarnMissingRoles()

	client := faucet.NewClient(cfg.APIBaseURL)
	resolver := permission.NewResolver(nil)

	deps := &command.Deps{
		Config:   cfg,
		Client:   client,
		Resolver: resolver,
	}

	registry := command.NewRegistry()
	mws := []command.Middleware{
		middleware.WithRecovery(),
		middleware.WithCommandLogger(),
	}
	cmds := []command.Command{
		&faucetcmd.FaucetCommand{},
		&admincmd.AdminCommand{},
		&core.HelpCommand{},
		&core.DebugCommand{},
	}
	for _, c := range cmds {
		if err := registry.Register(c, mws...); err != nil {
			log.Fatal(err)
		}
	}

	if cfg.HealthAddr != "" {
		go health.RunServer(ctx, cfg.HealthAddr, client)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := discord.StartBot(ctx, cfg, registry, deps); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
