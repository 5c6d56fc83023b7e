// Package config loads settings from environment variables and the command line.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kk-code-lab/rdrive/internal/logging"
	"github.com/kk-code-lab/rdrive/internal/state"
)

// Config holds everything the application needs at startup.
type Config struct {
	// ListTimeout bounds each directory listing; a slow read surfaces as a
	// timed-out listing error instead of freezing the UI.
	ListTimeout time.Duration

	Log logging.Config

	// CdFile receives the final directory on exit, for shell wrappers.
	CdFile string

	// Setup prints the shell wrapper for SetupShell (detected when empty).
	Setup      bool
	SetupShell string

	ShowHelp    bool
	ShowVersion bool
}

// Load reads RDRIVE_* variables through getenv, then applies args (without
// the program name). Command-line values win.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ListTimeout: state.DefaultListTimeout,
		Log: logging.Config{
			Level:      envOr(getenv, "RDRIVE_LOG_LEVEL", "info"),
			Format:     envOr(getenv, "RDRIVE_LOG_FORMAT", "json"),
			OutputPath: envOr(getenv, "RDRIVE_LOG_FILE", ""),
		},
	}

	if raw := getenv("RDRIVE_LIST_TIMEOUT"); raw != "" {
		d, err := parseTimeout(raw)
		if err != nil {
			return nil, fmt.Errorf("RDRIVE_LIST_TIMEOUT: %w", err)
		}
		cfg.ListTimeout = d
	}

	if err := cfg.parseArgs(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) parseArgs(args []string) error {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			cfg.ShowHelp = true
		case arg == "-v" || arg == "--version":
			cfg.ShowVersion = true
		case arg == "--log":
			if i+1 >= len(args) {
				return fmt.Errorf("--log requires a file path")
			}
			i++
			cfg.Log.OutputPath = args[i]
		case strings.HasPrefix(arg, "--log="):
			cfg.Log.OutputPath = strings.TrimPrefix(arg, "--log=")
		case arg == "--cd-file":
			if i+1 >= len(args) {
				return fmt.Errorf("--cd-file requires a file path")
			}
			i++
			cfg.CdFile = args[i]
		case strings.HasPrefix(arg, "--cd-file="):
			cfg.CdFile = strings.TrimPrefix(arg, "--cd-file=")
		case arg == "-s" || arg == "--setup":
			cfg.Setup = true
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				i++
				cfg.SetupShell = args[i]
			}
		case strings.HasPrefix(arg, "--setup="):
			cfg.Setup = true
			cfg.SetupShell = strings.TrimPrefix(arg, "--setup=")
		case arg == "--timeout":
			if i+1 >= len(args) {
				return fmt.Errorf("--timeout requires a duration")
			}
			i++
			d, err := parseTimeout(args[i])
			if err != nil {
				return fmt.Errorf("--timeout: %w", err)
			}
			cfg.ListTimeout = d
		case strings.HasPrefix(arg, "--timeout="):
			d, err := parseTimeout(strings.TrimPrefix(arg, "--timeout="))
			if err != nil {
				return fmt.Errorf("--timeout: %w", err)
			}
			cfg.ListTimeout = d
		default:
			return fmt.Errorf("unknown argument %q", arg)
		}
	}
	return nil
}

func parseTimeout(raw string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", d)
	}
	return d, nil
}

func envOr(getenv func(string) string, key, fallback string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return fallback
}
