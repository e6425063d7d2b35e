// Package cmd implements the gro command line application to manage a pantry.
package cmd

import (
	"bytes"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/pantry"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists all the subcommands of the application, main registers them.
var Commands = []subcommands.Command{
	&listCmd{},
	&searchCmd{},
	&expiredCmd{},
	&valueCmd{},
	&availableCmd{},
	&recipeCmd{},
	&exportCmd{},
	&topicCmd{},
	&shellCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the TOML configuration file (default ~/.config/pantry/config.toml)")
var seedFile = flag.String("seed", "", "Path to a JSONL file of groceries loaded at startup")
var cookbookFile = flag.String("cookbook", "", "Path to a TOML cookbook (default: the built-in one)")
var currencyCode = flag.String("currency", "", "Currency of the inventory (default EUR)")
var verbose = flag.Bool("v", false, "Log debug messages")

//go:embed cookbook.toml
var defaultCookbook []byte

// app holds everything a command needs, built from config and flags.
type app struct {
	cfg    Config
	logger *zap.Logger
	store  *pantry.Inventory
	book   pantry.Cookbook
}

// currentConfig reads the configuration file then applies the flags over it.
func currentConfig() (Config, error) {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		return cfg, err
	}
	if *seedFile != "" {
		cfg.Seed = *seedFile
	}
	if *cookbookFile != "" {
		cfg.Cookbook = *cookbookFile
	}
	if *currencyCode != "" {
		cfg.Currency = *currencyCode
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newApp loads the configuration, then the seed and the cookbook.
func newApp() (*app, error) {
	cfg, err := currentConfig()
	if err != nil {
		return nil, err
	}
	return openApp(cfg)
}

func openApp(cfg Config) (*app, error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{
		cfg:    cfg,
		logger: logger,
		store:  pantry.NewInventory(pantry.WithCurrency(cfg.Currency), pantry.WithLogger(logger)),
	}
	if err := a.loadSeed(); err != nil {
		return nil, err
	}
	if a.book, err = a.loadCookbook(); err != nil {
		return nil, err
	}
	return a, nil
}

// close flushes the logger.
func (a *app) close() {
	_ = a.logger.Sync()
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func (a *app) loadSeed() error {
	if a.cfg.Seed == "" {
		return nil
	}
	f, err := os.Open(a.cfg.Seed)
	if err != nil {
		return fmt.Errorf("cannot open seed file: %w", err)
	}
	defer f.Close()

	n, err := pantry.Import(a.store, f)
	if err != nil {
		return fmt.Errorf("cannot load seed file %q: %w", a.cfg.Seed, err)
	}
	a.logger.Info("inventory seeded", zap.String("file", a.cfg.Seed), zap.Int("groceries", n), zap.Int("lots", a.store.Len()))
	return nil
}

func (a *app) loadCookbook() (pantry.Cookbook, error) {
	if a.cfg.Cookbook == "" {
		return pantry.DecodeCookbook(bytes.NewReader(defaultCookbook))
	}
	f, err := os.Open(a.cfg.Cookbook)
	if err != nil {
		a.logger.Warn("cookbook not available, using the built-in one", zap.String("file", a.cfg.Cookbook), zap.Error(err))
		return pantry.DecodeCookbook(bytes.NewReader(defaultCookbook))
	}
	defer f.Close()
	book, err := pantry.DecodeCookbook(f)
	if err != nil {
		return nil, fmt.Errorf("cannot load cookbook %q: %w", a.cfg.Cookbook, err)
	}
	a.logger.Debug("cookbook loaded", zap.String("file", a.cfg.Cookbook), zap.Int("recipes", len(book)))
	return book, nil
}

// printMarkdown writes md to w, rendered for the terminal unless raw.
func printMarkdown(w io.Writer, md string, raw bool) error {
	if raw {
		_, err := io.WriteString(w, md)
		return err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// failure reports err on stderr and returns the matching exit status.
func failure(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	if errors.Is(err, pantry.ErrValidation) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}
