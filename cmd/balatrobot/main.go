package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/balatrobot/internal/config"
	"github.com/lox/balatrobot/internal/report"
)

// version is set by ldflags during build
var version = "dev"

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `short:"c" default:"balatrobot.hcl" help:"Path to HCL configuration file"`
	LogLevel string `short:"l" name:"log-level" help:"Log level (overrides config)"`
	NoColor  bool   `name:"no-color" help:"Disable styled output"`
}

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate a hand against every category"`
	Plan    PlanCmd          `cmd:"" help:"Decide which cards to play or discard"`
	Deal    DealCmd          `cmd:"" help:"Deal and evaluate a random hand"`
	Batch   BatchCmd         `cmd:"" help:"Evaluate a file of hands, one per line"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("balatrobot"),
		kong.Description("Poker hand evaluator and play planner for Balatro"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

// env is what every command needs once flags and the config file are merged.
type env struct {
	cfg    *config.Config
	logger *log.Logger
}

func (g *Globals) setup(logOut io.Writer) (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", g.Config, err)
	}

	// Apply command line overrides
	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	report.SetColor(!g.NoColor)

	logger, err := newLogger(logOut, cfg.Log)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded config", "path", g.Config, "play_at_least", cfg.Strategy.PlayAtLeast, "workers", cfg.Batch.Workers)
	return &env{cfg: cfg, logger: logger}, nil
}

func newLogger(w io.Writer, settings *config.LogSettings) (*log.Logger, error) {
	level, err := log.ParseLevel(settings.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", settings.Level, err)
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "balatrobot",
	})
	if settings.JSON {
		logger.SetFormatter(log.JSONFormatter)
	}
	return logger, nil
}

