package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rdrive/internal/app"
	"github.com/kk-code-lab/rdrive/internal/config"
	"github.com/kk-code-lab/rdrive/internal/logging"
	"github.com/kk-code-lab/rdrive/internal/shellsetup"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func printHelp() {
	fmt.Print(`rdrive - Terminal-based drive and directory browser

USAGE:
    rdrive [OPTIONS]

OPTIONS:
    -h, --help            Show this help message and exit
    -v, --version         Show version and exit
        --log FILE        Write logs to FILE
        --timeout DUR     Give up on a directory listing after DUR (default 5s)
        --cd-file FILE    Write the directory shown at exit to FILE
    -s, --setup [SHELL]   Output shell integration snippet (optionally force SHELL)

ENVIRONMENT:
    RDRIVE_LIST_TIMEOUT   Same as --timeout
    RDRIVE_LOG_FILE       Same as --log
    RDRIVE_LOG_LEVEL      debug, info, warn or error (default info)
    RDRIVE_LOG_FORMAT     json or console (default json)
`)
}

func main() {
	os.Exit(run())
}

func run() int {
	// Set UTF-8 as fallback encoding for maximum compatibility
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rdrive: %v\n", err)
		printHelp()
		return 2
	}
	if cfg.ShowHelp {
		printHelp()
		return 0
	}
	if cfg.ShowVersion {
		fmt.Println("rdrive", version)
		return 0
	}
	if cfg.Setup {
		return printSetup(cfg.SetupShell)
	}

	if err := logging.Init(cfg.Log); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		return 1
	}
	defer func() {
		_ = logging.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("starting", logging.String("version", version), logging.Duration("list_timeout", cfg.ListTimeout))

	app, err := apppkg.NewApplication(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		return 1
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run(ctx)

	if cfg.CdFile != "" {
		if err := app.WriteLastDir(cfg.CdFile); err != nil {
			logging.Warn("could not record last directory", logging.Err(err))
		}
	}
	return 0
}

func printSetup(shell string) int {
	exe, err := os.Executable()
	if err != nil {
		exe = "rdrive"
	}
	err = shellsetup.WriteSetup(os.Stdout, exe, shellsetup.Config{
		Shell:        shell,
		Getenv:       os.Getenv,
		DetectParent: shellsetup.DetectParentShellName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "rdrive: %v\n", err)
		return 1
	}
	return 0
}
