// Package cli implements the gamebot CLI commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rcliao/gamebot/internal/bot"
	"github.com/rcliao/gamebot/internal/catalog"
	"github.com/rcliao/gamebot/internal/config"
	"github.com/rcliao/gamebot/internal/logging"
	"github.com/rcliao/gamebot/internal/store"
)

var (
	v          = viper.New()
	configPath string
	cfg        *config.Config
	logger     = zap.NewNop()
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "gamebot",
	Short: "A chatbot that talks about video games",
	Long:  "A small rule-based game chatbot. Recommendations, game info, reviews, tips and trivia from a local catalog.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(v, configPath)
		if err != nil {
			return err
		}
		logger, err = logging.New(cfg.LogLevel)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	SilenceUsage: true,
}

func init() {
	config.SetDefaults(v)

	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ~/.gamebot/config.yaml)")
	flags.StringP("db", "d", "", "Catalog database path (default: $GAMEBOT_DB or ~/.gamebot/catalog.db)")
	flags.String("catalog", "", "YAML catalog file; overrides the database")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.Int64("seed", 0, "Seed for random choices (0 = clock)")
	flags.IntP("count", "c", 0, "Games per recommendation")

	for key, flag := range map[string]string{
		"db":        "db",
		"catalog":   "catalog",
		"log_level": "log-level",
		"seed":      "seed",
		"count":     "count",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(cfg.DB)
}

// loadCatalog resolves the catalog: YAML file, then database, then built-in.
func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	if cfg.Catalog != "" {
		f, err := os.Open(cfg.Catalog)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		c, err := catalog.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", cfg.Catalog, err)
		}
		logger.Debug("catalog loaded from file", zap.String("path", cfg.Catalog), zap.Int("games", c.Size()))
		return c, nil
	}

	if _, err := os.Stat(cfg.DB); err == nil {
		s, err := openStore()
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		defer s.Close()
		c, err := s.Catalog(ctx)
		switch {
		case err == nil:
			logger.Debug("catalog loaded from database", zap.String("db", cfg.DB), zap.Int("games", c.Size()))
			return c, nil
		case errors.Is(err, catalog.ErrEmpty):
			logger.Warn("catalog database is empty, using built-in catalog", zap.String("db", cfg.DB))
		default:
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}

	return catalog.Default(), nil
}

// botFactory returns a constructor for independent conversations over c.
// With a fixed seed, the n-th conversation always gets the same sequence.
func botFactory(c *catalog.Catalog) func() (*bot.Bot, error) {
	var n atomic.Int64
	return func() (*bot.Bot, error) {
		opts := []bot.Option{
			bot.WithLogger(logger),
			bot.WithCount(cfg.Count),
			bot.WithPlatformCount(cfg.PlatformCount),
		}
		if cfg.Seed != 0 {
			seed := cfg.Seed + n.Add(1) - 1
			opts = append(opts, bot.WithRand(rand.New(rand.NewSource(seed))))
		}
		return bot.New(c, opts...)
	}
}

func newBot(ctx context.Context) (*bot.Bot, error) {
	c, err := loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	return botFactory(c)()
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
