package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"paycalc/internal/app/server"
	"paycalc/internal/domain/auth"
	"paycalc/internal/platform/config"
	"paycalc/internal/platform/logger"
)

func main() {
	issueToken := flag.String("issue-token", "", "print a bearer token for this subject and exit")
	tokenPerms := flag.String("perms", strings.Join(auth.DefaultPermissions, ","), "comma separated permissions for -issue-token")
	tokenTTL := flag.Duration("ttl", 24*time.Hour, "lifetime of the token printed by -issue-token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if *issueToken != "" {
		if cfg.JWTSecret == "" {
			fmt.Fprintln(os.Stderr, "JWT_SECRET is required to issue tokens")
			os.Exit(1)
		}
		token, err := auth.GenerateToken(cfg.JWTSecret, *issueToken, strings.Split(*tokenPerms, ","), *tokenTTL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	log, err := logger.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	app, err := server.New(cfg, log)
	if err != nil {
		log.Fatal("server setup failed", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatal("server failed", "err", err)
	}
}
