// ABOUTME: CLI entry point for kilo-go with terminal crash recovery
// ABOUTME: Parses flags, loads config, acquires the raw-mode session, and runs the editor loop

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mauromedda/kilo-go/internal/config"
	"github.com/mauromedda/kilo-go/internal/document"
	"github.com/mauromedda/kilo-go/internal/editor"
	kilolog "github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "kilo-go: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("kilo-go %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "kilo-go: %v\n", err)
		os.Exit(1)
	}
}

func run(args cliArgs) error {
	settings, err := loadSettings(args)
	if err != nil {
		return err
	}
	quit, err := settings.QuitChord()
	if err != nil {
		return err
	}

	level, _ := kilolog.ParseLevel(settings.LogLevel)
	if args.verbose {
		level = kilolog.LevelDebug
	}
	kilolog.SetLevel(level)

	// Nothing may reach the terminal while the screen is drawn except frames.
	if settings.LogFile != "" {
		restoreLog, err := kilolog.OpenFile(settings.LogFile)
		if err != nil {
			return err
		}
		defer restoreLog()
	} else {
		prev := kilolog.SetOutput(io.Discard)
		defer kilolog.SetOutput(prev)
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	sess, err := terminal.Acquire(os.Stdin, os.Stdout, terminal.WithReadTimeout(settings.ReadTimeoutTenths()))
	if err != nil {
		return err
	}
	defer sess.Restore()
	defer terminal.RestoreOnPanic(sess)

	resizeCh, stopResize := terminal.WatchResize()
	defer stopResize()

	var docOpts []document.Option
	docOpts = append(docOpts, document.WithMarker(settings.Placeholder))
	if settings.WelcomeEnabled() {
		docOpts = append(docOpts, document.WithWelcome(version))
	}

	kilolog.Info("kilo-go %s starting, quit with %s", version, quit)
	loop := editor.New(sess, document.New(docOpts...),
		editor.WithQuitChord(quit),
		editor.WithSyncOutput(settings.SyncOutputEnabled()),
		editor.WithResizeSignal(resizeCh),
	)
	return loop.Run(ctx)
}

// loadSettings reads the config files and applies flag overrides.
func loadSettings(args cliArgs) (*config.Settings, error) {
	var (
		settings *config.Settings
		err      error
	)
	if args.configPath != "" {
		settings, err = config.LoadFile(args.configPath)
	} else {
		cwd, _ := os.Getwd()
		settings, err = config.Load(cwd)
	}
	if err != nil {
		return nil, err
	}

	if args.logFile != "" {
		settings.LogFile = args.logFile
	}
	if args.quitKey != "" {
		settings.QuitKey = args.quitKey
	}
	if args.syncOutput {
		settings.SyncOutput = &args.syncOutput
	}
	if args.noWelcome {
		welcome := false
		settings.Welcome = &welcome
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}

// notifyContext returns a context cancelled by SIGTERM, SIGHUP or an
// interrupt, with the signal recorded as the cancellation cause.
func notifyContext(parent context.Context) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGHUP, os.Interrupt)

	go func() {
		select {
		case sig := <-sigCh:
			cancel(fmt.Errorf("received signal: %v", sig))
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigCh)
		cancel(nil)
	}
}
