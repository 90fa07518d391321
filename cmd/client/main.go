// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-quote-keeper/internal/client"
	"github.com/MKhiriev/go-quote-keeper/internal/config"
	"github.com/MKhiriev/go-quote-keeper/internal/logger"
	"github.com/MKhiriev/go-quote-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	client.RegisterCommands(subcommands.DefaultCommander)

	cfg, err := config.GetClientConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error getting configs:", err)
		return int(subcommands.ExitUsageError)
	}

	log, err := logger.NewClientLogger("quote-client", cfg.Log.File).WithLevel(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error setting log level:", err)
		return int(subcommands.ExitUsageError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	env := &client.Env{
		Config: cfg,
		Build:  build,
		Out:    os.Stdout,
		Logger: log,
	}

	status := subcommands.Execute(ctx, env)
	log.Debug().Str("func", "main").Int("status", int(status)).Msg("client finished")
	return int(status)
}
