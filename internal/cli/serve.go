package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rcliao/gamebot/internal/server"
)

const serveLong = `Serve the chat HTTP API. Requests to /chat and /sessions must carry the
configured key in the X-API-Key header.

Each request without X-Session-ID starts a conversation held in memory.
Conversations idle longer than --session-idle (default 30m) are dropped;
a negative value keeps them until DELETE /sessions/:id.`

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the chat HTTP API",
		Long:  serveLong,
		Run:   runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default :8000)")
	cmd.Flags().String("api-key", "", "API key clients must send (env: GAMEBOT_API_KEY)")
	cmd.Flags().Duration("session-idle", 0, "Drop conversations idle this long (env: GAMEBOT_SESSION_IDLE)")
	_ = v.BindPFlag("addr", cmd.Flags().Lookup("addr"))
	_ = v.BindPFlag("api_key", cmd.Flags().Lookup("api-key"))
	_ = v.BindPFlag("session_idle", cmd.Flags().Lookup("session-idle"))

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	if cfg.APIKey == "" {
		exitErr("serve", errors.New("api_key is not configured (set --api-key or GAMEBOT_API_KEY)"))
	}

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		exitErr("load catalog", err)
	}

	srv := server.New(server.Options{
		APIKey:      cfg.APIKey,
		NewBot:      botFactory(c),
		Logger:      logger,
		IdleTimeout: cfg.SessionIdle,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("serving", zap.String("addr", cfg.Addr), zap.Int("games", c.Size()))
	if err := srv.Run(ctx, cfg.Addr); err != nil {
		exitErr("serve", err)
	}
}
