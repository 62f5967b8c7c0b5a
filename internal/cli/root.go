// Package cli implements chiefctl, the operator command line for the site:
// seeding, editorial validation, sitemap and statistics inspection, and page
// cache maintenance.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	infraconfig "github.com/Londondannyboy/thechief-quest/infrastructure/config"
	"github.com/Londondannyboy/thechief-quest/infrastructure/logger"
	"github.com/Londondannyboy/thechief-quest/internal/bootstrap"
	"github.com/Londondannyboy/thechief-quest/internal/cache"
	"github.com/Londondannyboy/thechief-quest/internal/config"
	"github.com/Londondannyboy/thechief-quest/internal/metrics"
	"github.com/Londondannyboy/thechief-quest/internal/store"
)

// Version is overridden at build time with -ldflags.
var Version = "1.0.0"

// Flag and viper keys.
const (
	keyConfig  = "config"
	keyBackend = "backend"
	keyDebug   = "debug"
)

type storeOpener func(ctx context.Context, cfg *config.Config, log logger.Logger) (store.Backend, error)

type cacheOpener func(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log logger.Logger) (*cache.PageCache, error)

// app holds what every command shares. Tests swap the openers.
type app struct {
	v         *viper.Viper
	openStore storeOpener
	openCache cacheOpener
}

func newApp() *app {
	return &app{
		v:         viper.New(),
		openStore: bootstrap.OpenStore,
		openCache: bootstrap.SetupCache,
	}
}

// Execute runs chiefctl.
func Execute() error {
	// Load .env early so environment variables are visible to viper
	_ = godotenv.Load()

	return NewRootCommand().ExecuteContext(context.Background())
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	return newApp().rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "chiefctl",
		Short:        "Operate the TheChief.quest site",
		Long:         `Seed content, validate editorial rules, inspect the sitemap and statistics, and manage the page cache.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (default is $CONFIG_PATH or ./config.yml)")
	flags.String(keyBackend, "", "override store.backend (sanity, elasticsearch, memory)")
	flags.Bool(keyDebug, false, "enable debug logging")
	for _, key := range []string{keyConfig, keyBackend, keyDebug} {
		_ = a.v.BindPFlag(key, flags.Lookup(key))
	}

	a.v.SetEnvPrefix("CHIEFCTL")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.seedCommand(),
		a.validateCommand(),
		a.sitemapCommand(),
		a.statsCommand(),
		a.cacheCommand(),
		versionCommand(),
	)
	return root
}

// commandDeps are the loaded configuration and logger for one command.
type commandDeps struct {
	Config *config.Config
	Logger logger.Logger
}

// deps loads the site configuration, applies flag overrides, validates it
// and builds a stderr console logger.
func (a *app) deps() (*commandDeps, error) {
	path := a.v.GetString(keyConfig)
	if path == "" {
		path = infraconfig.GetConfigPath(config.DefaultPath)
	}

	cfg, err := infraconfig.LoadWithDefaults[config.Config](path, config.SetDefaults)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if backend := a.v.GetString(keyBackend); backend != "" {
		cfg.Store.Backend = backend
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level := "warn"
	if a.v.GetBool(keyDebug) {
		level = "debug"
	}
	log, err := logger.New(logger.Config{
		Level:       level,
		Format:      logger.FormatConsole,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &commandDeps{Config: cfg, Logger: log}, nil
}

// backend loads the configuration and opens the content store.
func (a *app) backend(ctx context.Context) (store.Backend, *commandDeps, error) {
	deps, err := a.deps()
	if err != nil {
		return nil, nil, err
	}
	b, err := a.openStore(ctx, deps.Config, deps.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open content store: %w", err)
	}
	return b, deps, nil
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chiefctl version %s\n", Version)
		},
	}
}
