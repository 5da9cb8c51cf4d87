package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/iw2rmb/livemark"
	"github.com/iw2rmb/livemark/internal/config"
)

const appName = "livemark"

// initializeAppContext runs after the command line is parsed and before
// any command.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		return ctx, nil
	}

	e := envFromContext(ctx)

	configFile := cmd.String("config")
	if e.Cfg, err = config.Load(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if e.Log, e.closeLog, err = config.Logger(cmd.String("log"), cmd.Bool("debug")); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}

	e.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", livemark.Version()), zap.String("runtime", runtime.Version()))
	if len(configFile) == 0 {
		e.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	e := envFromContext(ctx)

	e.Log.Debug("Program ended", zap.Duration("elapsed", e.uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	if e.closeLog == nil {
		return nil
	}
	if err := e.closeLog(); err != nil {
		return fmt.Errorf("unable to close log file: %w", err)
	}
	return nil
}

// errors from commands are reported once, here or by main
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	e := envFromContext(ctx)
	if e.closeLog != nil {
		e.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "live preview of Markdoc documents in the terminal",
		Version:         livemark.FullVersion() + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.StringFlag{Name: "log", Usage: "write program log to `FILE`"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log at debug level"},
		},
		Commands: []*cli.Command{
			{
				Name:         "view",
				Usage:        "Opens an interactive preview of a document",
				ArgsUsage:    "FILE",
				OnUsageError: usageErrorHandler,
				Action:       runView,
			},
			{
				Name:         "decorations",
				Usage:        "Prints the decorations computed for a cursor position",
				ArgsUsage:    "FILE",
				OnUsageError: usageErrorHandler,
				Action:       runDecorations,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "cursor", Usage: "cursor byte `OFFSET`"},
				},
			},
			{
				Name:         "render",
				Usage:        "Prints the HTML of a whole document",
				ArgsUsage:    "FILE",
				OnUsageError: usageErrorHandler,
				Action:       runRender,
			},
			{
				Name:         "dumpconfig",
				Usage:        "Dumps the active configuration (YAML)",
				OnUsageError: usageErrorHandler,
				Action:       runDumpConfig,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(contextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	var err error
	// os.Exit skips deferred calls, keep this the only one
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = newApp().Run(ctx, os.Args)
}
