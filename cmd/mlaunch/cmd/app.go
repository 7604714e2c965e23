package cmd

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/mLaunch/foundation/cmdline"
	"github.com/msto63/mLaunch/internal/journal"
	"github.com/msto63/mLaunch/internal/launcher"
	"github.com/msto63/mLaunch/pkg/core/config"
	"github.com/msto63/mLaunch/pkg/core/logging"
)

// app bundles what a command needs: configuration, logger, resources and
// the optional journal
type app struct {
	cfg       *config.Config
	requestID string
	logger    *logging.Logger
	res       *launcher.Resources
	journal   journal.Store
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadOrDefault()
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.General.LogLevel
	if verbose {
		level = "debug"
	}

	a := &app{cfg: cfg, requestID: uuid.NewString()}
	a.logger = logging.Wrap(logging.NewLogger(logging.LoggerConfig{
		ServiceName: cfg.General.Name,
		Level:       level,
		Format:      cfg.General.LogFormat,
		RequestID:   a.requestID,
	}), "mlaunch")

	var engine launcher.Engine
	if dryRun || cfg.Launch.DryRun {
		engine = launcher.NewPlanEngine(os.Stdout)
	} else {
		exec := launcher.NewExecEngine(cfg.Launch.Timeout.Duration)
		exec.Quote = cfg.Parser.QuoteByte()
		engine = exec
	}

	a.res, err = launcher.NewResources(launcher.Options{
		ShortcutsFile:    cfg.Resources.ShortcutsFile,
		TranslationsFile: cfg.Resources.TranslationsFile,
		Tokenizer:        newTokenizer(cfg),
		Engine:           engine,
		Logger:           a.logger,
	})
	if err != nil {
		return nil, err
	}

	if cfg.Journal.Enabled {
		store, err := journal.Open(journal.Config{Path: cfg.Journal.Path})
		if err != nil {
			return nil, err
		}
		a.journal = store

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if n, err := store.Prune(ctx, cfg.Journal.Retention.Duration); err != nil {
			a.logger.Warn("Journal prune failed", "error", err)
		} else if n > 0 {
			a.logger.Debug("Journal pruned", "deleted", n)
		}
	}

	a.logger.Debug("mLaunch initialized",
		"environment", cfg.General.Environment,
		"shortcuts", a.res.ShortcutsFile(),
		"journal", cfg.Journal.Enabled)
	return a, nil
}

func newTokenizer(cfg *config.Config) *cmdline.Tokenizer {
	return &cmdline.Tokenizer{
		Prefixes:     cfg.Parser.Prefixes,
		Separators:   cfg.Parser.Separators,
		Quote:        cfg.Parser.QuoteByte(),
		ParamOptions: cfg.Parser.ParamOptions,
	}
}

// record writes the outcome to the journal, if enabled
func (a *app) record(ctx context.Context, out launcher.Outcome) {
	if a.journal == nil {
		return
	}
	entry := entryFromOutcome(out)
	if err := a.journal.Record(ctx, entry); err != nil {
		a.logger.Warn("Failed to record launch", "request_id", out.RequestID, "error", err)
	}
}

func (a *app) Close() {
	if a.journal != nil {
		a.journal.Close()
	}
}

func entryFromOutcome(out launcher.Outcome) *journal.Entry {
	var options map[string]string
	if len(out.Result.Options) > 0 {
		options = make(map[string]string, len(out.Result.Options))
		for k, v := range out.Result.Options {
			options[k] = v
		}
	}
	return &journal.Entry{
		RequestID:   out.RequestID,
		Application: out.Result.Application,
		Options:     options,
		Command:     out.Command,
		Unresolved:  out.Unresolved,
		Message:     out.Message.String(),
		ExitCode:    out.ExitCode,
	}
}
