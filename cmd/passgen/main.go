// Package main provides the passgen terminal password generator.
// Adjust the length, toggle numbers and special characters, and the password
// is regenerated on every change; press c to copy it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/entrhq/passgen/pkg/clipboard"
	appconfig "github.com/entrhq/passgen/pkg/config"
	"github.com/entrhq/passgen/pkg/executor/tui"
	"github.com/entrhq/passgen/pkg/generator"
	"github.com/entrhq/passgen/pkg/logging"
	"github.com/entrhq/passgen/pkg/session"
	"golang.org/x/term"
)

const version = "0.1.0" // Version of passgen

// Config holds the command line options
type Config struct {
	ConfigPath  string
	ShowVersion bool
}

func main() {
	config := parseFlags(flag.CommandLine, os.Args[1:])

	if config.ShowVersion {
		fmt.Printf("passgen v%s\n", version)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("passgen is interactive and needs a terminal on stdout")
	}

	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if runErr := run(ctx, config); runErr != nil {
		cancel()
		log.Fatalf("Application error: %v", runErr)
	}
	cancel()
}

// parseFlags parses command line flags
func parseFlags(fs *flag.FlagSet, args []string) *Config {
	config := &Config{}

	fs.StringVar(&config.ConfigPath, "config", "", "Path to the YAML config file (default: $PASSGEN_CONFIG or ~/.config/passgen/config.yaml)")
	fs.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "passgen - a terminal password generator\n\n")
		fmt.Fprintf(fs.Output(), "Usage: passgen [options]\n\n")
		fmt.Fprintf(fs.Output(), "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), "\nKeys: ←/→ length • d numbers • s special characters • c copy • ? help • q quit\n")
	}

	_ = fs.Parse(args)
	return config
}

// run loads configuration and runs the TUI until the user quits
func run(ctx context.Context, config *Config) error {
	cfg, err := appconfig.Load(config.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.NewLogger("passgen", cfg.Logging.Options())
	if err != nil {
		// The fallback logger writes to stderr, which the TUI is about to take over.
		logger = logging.Discard()
	}
	defer logger.Close()

	logger.Infof("passgen v%s starting", version)

	sess := session.New(cfg.Generator.Options(), generator.DefaultSource())
	writer := newClipboardWriter(cfg.Clipboard, logger.With("clipboard"))

	executor := tui.NewExecutor(sess, writer, logger.With("tui"))
	return executor.Run(ctx)
}

// newClipboardWriter builds the copy pipeline selected by the clipboard mode.
func newClipboardWriter(section *appconfig.ClipboardSection, logger *logging.Logger) *clipboard.Writer {
	opts := []clipboard.Option{clipboard.WithLogger(logger)}

	if !section.UseSystem() {
		opts = append(opts, clipboard.WithPrimary(nil))
	}
	if section.UseTerminal() {
		opts = append(opts, clipboard.WithFallback(clipboard.NewTerminalFallback(clipboard.WithTTY(section.TTY))))
	} else {
		opts = append(opts, clipboard.WithFallback(nil))
	}

	return clipboard.NewWriter(opts...)
}
