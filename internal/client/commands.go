// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/MKhiriev/go-quote-keeper/internal/service"
	"github.com/MKhiriev/go-quote-keeper/internal/tui"
	"github.com/MKhiriev/go-quote-keeper/models"
)

const (
	groupInteractive = "interactive"
	groupQuotes      = "quotes"
	groupSync        = "sync"
)

// RegisterCommands adds every client command to cdr. Each command receives
// env as its first Execute argument.
func RegisterCommands(cdr *subcommands.Commander) {
	cdr.Register(cdr.HelpCommand(), "")
	cdr.Register(cdr.FlagsCommand(), "")
	cdr.Register(cdr.CommandsCommand(), "")

	cdr.Register(&tuiCmd{}, groupInteractive)

	cdr.Register(&addCmd{}, groupQuotes)
	cdr.Register(&importCmd{}, groupQuotes)
	cdr.Register(&exportCmd{}, groupQuotes)
	cdr.Register(&randomCmd{}, groupQuotes)
	cdr.Register(&listCmd{}, groupQuotes)
	cdr.Register(&categoriesCmd{}, groupQuotes)

	cdr.Register(&syncCmd{}, groupSync)
	cdr.Register(&versionCmd{}, "")
}

func envFrom(args []any) (*Env, bool) {
	if len(args) == 0 {
		return nil, false
	}
	env, ok := args[0].(*Env)
	return env, ok && env != nil
}

// withApp runs fn against a freshly loaded App reporting to a logSink.
func withApp(ctx context.Context, args []any, fn func(*Env, *App) error) subcommands.ExitStatus {
	env, ok := envFrom(args)
	if !ok {
		fmt.Fprintln(os.Stderr, "client: missing environment")
		return subcommands.ExitFailure
	}

	app, err := NewApp(ctx, env, newLogSink(env.Out, env.Logger))
	if err != nil {
		fmt.Fprintln(env.Out, err)
		return subcommands.ExitFailure
	}
	defer func() {
		if err := app.Close(); err != nil {
			env.Logger.Err(err).Str("func", "client.withApp").Msg("close app")
		}
	}()

	if err = fn(env, app); err != nil {
		fmt.Fprintln(env.Out, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// reconcileAfterMutation pushes a local change before the process exits.
// A failed pass is reported by the sink but does not fail the command: the
// change stays pending locally.
func reconcileAfterMutation(ctx context.Context, env *Env, app *App, skip bool) {
	if skip {
		return
	}
	if _, err := app.Services.Quotes.Reconcile(ctx); err != nil {
		env.Logger.Warn().Err(err).Str("func", "client.reconcileAfterMutation").Msg("change kept pending")
	}
}

// ── tui ──────────────────────────────────────────────────────────────────────

type tuiCmd struct{}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "start the interactive quote browser" }
func (*tuiCmd) Usage() string    { return "tui:\n  Browse, add, import, export and sync quotes interactively.\n" }
func (*tuiCmd) SetFlags(*flag.FlagSet) {}

func (*tuiCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	env, ok := envFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}

	sink := tui.NewSink()
	app, err := NewApp(ctx, env, sink)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	if err = app.ShowStartup(ctx); err != nil {
		env.Logger.Warn().Err(err).Str("func", "tuiCmd.Execute").Msg("startup view")
	}

	app.Workers.Run(ctx)
	defer app.Workers.Stop()

	if err = tui.New(app.Services.Quotes, sink, env.Logger).Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// ── add ──────────────────────────────────────────────────────────────────────

type addCmd struct {
	category string
	noSync   bool
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a quote" }
func (*addCmd) Usage() string {
	return "add -category <category> <text...>:\n  Append a quote and push it to the remote store.\n"
}

func (c *addCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.category, "category", "", "quote category")
	fs.BoolVar(&c.noSync, "no-sync", false, "keep the change pending instead of reconciling")
}

func (c *addCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	text := strings.Join(fs.Args(), " ")
	return withApp(ctx, args, func(env *Env, app *App) error {
		q, err := app.Services.Quotes.AddQuote(ctx, text, c.category)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "Added quote to %s.\n", q.Category)
		reconcileAfterMutation(ctx, env, app, c.noSync)
		return nil
	})
}

// ── import ───────────────────────────────────────────────────────────────────

type importCmd struct {
	noSync bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import quotes from a JSON file" }
func (*importCmd) Usage() string {
	return "import <file.json>:\n  Merge a JSON array of {text, category} objects into the collection.\n"
}

func (c *importCmd) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.noSync, "no-sync", false, "keep the change pending instead of reconciling")
}

func (c *importCmd) Execute(ctx context.Context, fs *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	return withApp(ctx, args, func(env *Env, app *App) error {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()

		result, err := app.Services.Quotes.ImportJSON(ctx, f)
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "Imported %d new quote(s) of %d.\n", result.Added, result.Total)
		reconcileAfterMutation(ctx, env, app, c.noSync)
		return nil
	})
}

// ── export ───────────────────────────────────────────────────────────────────

type exportCmd struct {
	stdout bool
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the collection as JSON" }
func (*exportCmd) Usage() string {
	return "export [-stdout]:\n  Write quotes_<timestamp>.json to the export location.\n"
}

func (c *exportCmd) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.stdout, "stdout", false, "print the JSON instead of writing a file")
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return withApp(ctx, args, func(env *Env, app *App) error {
		if c.stdout {
			data, err := app.Services.Quotes.ExportSnapshot(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(env.Out, string(data))
			return nil
		}

		location, err := app.Services.Quotes.Export(ctx, env.now())
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "Exported to %s\n", location)
		return nil
	})
}

// ── random ───────────────────────────────────────────────────────────────────

type randomCmd struct {
	category string
}

func (*randomCmd) Name() string     { return "random" }
func (*randomCmd) Synopsis() string { return "show a random quote" }
func (*randomCmd) Usage() string {
	return "random [-category <category>]:\n  Show a random quote, optionally from one category.\n"
}

func (c *randomCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.category, "category", models.AllCategories, "category filter")
}

func (c *randomCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return withApp(ctx, args, func(_ *Env, app *App) error {
		_, err := app.Services.Quotes.SelectRandom(ctx, c.category)
		if errors.Is(err, service.ErrEmptySelection) {
			// already rendered by the sink
			return nil
		}
		return err
	})
}

// ── list ─────────────────────────────────────────────────────────────────────

type listCmd struct {
	category string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list quotes" }
func (*listCmd) Usage() string {
	return "list [-category <category>]:\n  List quotes and remember the category as the filter.\n"
}

func (c *listCmd) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.category, "category", "", "category filter (default: last used)")
}

func (c *listCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return withApp(ctx, args, func(_ *Env, app *App) error {
		category := c.category
		if category == "" {
			category = app.Services.Quotes.LastFilter(ctx)
		}
		_, err := app.Services.Quotes.Filter(ctx, category)
		return err
	})
}

// ── categories ───────────────────────────────────────────────────────────────

type categoriesCmd struct{}

func (*categoriesCmd) Name() string           { return "categories" }
func (*categoriesCmd) Synopsis() string       { return "list categories" }
func (*categoriesCmd) Usage() string          { return "categories:\n  Print each category once, in first-seen order.\n" }
func (*categoriesCmd) SetFlags(*flag.FlagSet) {}

func (*categoriesCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return withApp(ctx, args, func(env *Env, app *App) error {
		for _, category := range app.Services.Quotes.ListCategories() {
			fmt.Fprintln(env.Out, category)
		}
		return nil
	})
}

// ── sync ─────────────────────────────────────────────────────────────────────

type syncCmd struct{}

func (*syncCmd) Name() string           { return "sync" }
func (*syncCmd) Synopsis() string       { return "reconcile with the remote store once" }
func (*syncCmd) Usage() string          { return "sync:\n  Run one reconcile pass and report its outcome.\n" }
func (*syncCmd) SetFlags(*flag.FlagSet) {}

func (*syncCmd) Execute(ctx context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	return withApp(ctx, args, func(env *Env, app *App) error {
		report, err := app.Services.Quotes.Reconcile(ctx)
		if err != nil {
			return err
		}
		env.Logger.Info().Str("outcome", report.Outcome.String()).Int("added", report.Added).Int("pushed", report.Pushed).Msg("sync finished")
		return nil
	})
}

// ── version ──────────────────────────────────────────────────────────────────

type versionCmd struct{}

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "print build information" }
func (*versionCmd) Usage() string          { return "version:\n  Print the client version and build metadata.\n" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, _ *flag.FlagSet, args ...any) subcommands.ExitStatus {
	env, ok := envFrom(args)
	if !ok {
		return subcommands.ExitFailure
	}

	if env.Config.App.Version != "" {
		fmt.Fprintf(env.Out, "Client version: %s\n", env.Config.App.Version)
	}
	fmt.Fprint(env.Out, env.Build.String())
	return subcommands.ExitSuccess
}
