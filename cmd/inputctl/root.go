package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/nerrad567/gray-logic-input/internal/infrastructure/config"
	"github.com/nerrad567/gray-logic-input/internal/infrastructure/database"
	"github.com/nerrad567/gray-logic-input/internal/infrastructure/logging"
	"github.com/nerrad567/gray-logic-input/internal/processor"
	"github.com/nerrad567/gray-logic-input/internal/processor/builtin"
	"github.com/nerrad567/gray-logic-input/internal/profile"
	"github.com/nerrad567/gray-logic-input/migrations"
)

const (
	flagConfig = "config"

	// configEnv names a config file when --config is not given.
	configEnv = "INPUTCTL_CONFIG"
)

// app holds the state shared by all subcommands once configuration is
// loaded.
type app struct {
	cfg      *config.Config
	log      *logging.Logger
	registry *processor.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "inputctl",
		Short:         "Configure and test input processor pipelines.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString(flagConfig)
			return a.init(path)
		},
		DisableAutoGenTag: true,
	}

	cmd.PersistentFlags().String(flagConfig, "", "path to config.yaml (default $"+configEnv+", then built-in defaults)")

	cmd.AddCommand(
		newProcessorsCmd(a),
		newProcessCmd(a),
		newProfileCmd(a),
	)
	return cmd
}

// init loads configuration and builds the logger and registry.
func (a *app) init(path string) error {
	if path == "" {
		path = os.Getenv(configEnv)
	}

	var err error
	if path != "" {
		a.cfg, err = config.Load(path)
	} else {
		a.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	a.log = logging.New(a.cfg.Logging, version)

	a.registry, err = newRegistry(a.cfg.Registry, a.log)
	if err != nil {
		return err
	}
	return nil
}

// newRegistry builds the processor registry described by cfg.
func newRegistry(cfg config.RegistryConfig, log *logging.Logger) (*processor.Registry, error) {
	reg := processor.NewRegistry()
	reg.SetLogger(log.With("component", "registry"))

	if cfg.Builtins {
		if err := builtin.Register(reg); err != nil {
			return nil, fmt.Errorf("registering built-in processors: %w", err)
		}
	}

	aliases := make([]string, 0, len(cfg.Aliases))
	for alias := range cfg.Aliases {
		aliases = append(aliases, alias)
	}
	slices.Sort(aliases)
	for _, alias := range aliases {
		if err := reg.Alias(alias, cfg.Aliases[alias]); err != nil {
			return nil, fmt.Errorf("registry.aliases: %w", err)
		}
	}

	log.Debug("processor registry ready", "processors", reg.Len())
	return reg, nil
}

// openProfiles opens the profile database, applies migrations and seeds the
// profiles listed in the configuration. The returned close function must be
// called when done.
func (a *app) openProfiles(ctx context.Context) (*profile.Manager, func(), error) {
	db, err := database.Open(ctx, database.Config{
		Path:        a.cfg.Database.Path,
		WALMode:     a.cfg.Database.WALMode,
		BusyTimeout: a.cfg.Database.BusyTimeout,
	})
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			a.log.Error("error closing database", "error", err)
		}
	}

	if err := db.Migrate(ctx, migrations.FS); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	mgr := profile.NewManager(profile.NewSQLiteRepository(db.DB), a.registry)
	mgr.SetLogger(a.log.With("component", "profile"))

	if _, err := mgr.Seed(ctx, seedProfiles(a.cfg.Profiles)); err != nil {
		closeDB()
		return nil, nil, err
	}
	return mgr, closeDB, nil
}

func seedProfiles(cfgs []config.ProfileConfig) []profile.Profile {
	profiles := make([]profile.Profile, len(cfgs))
	for i, c := range cfgs {
		profiles[i] = profile.Profile{
			Control:     c.Control,
			ValueType:   c.ValueType,
			Processors:  c.Processors,
			Description: c.Description,
		}
	}
	return profiles
}
