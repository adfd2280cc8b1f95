package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cobra "github.com/spf13/cobra"

	config "github.com/inference-gateway/drawbot/config"
	container "github.com/inference-gateway/drawbot/internal/container"
	logger "github.com/inference-gateway/drawbot/internal/logger"
	web "github.com/inference-gateway/drawbot/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form that accepts drawing commands",
	Long: `Start an HTTP server with a single form. Each submitted prompt is queued and
drawn in the target paint application, one command at a time.

Endpoints:
  GET  /         the command form
  POST /command  run the prompt in the "prompt" form field
  GET  /health   display and storage status
  GET  /history  recent commands of the caller's session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		port, _ := cmd.Flags().GetInt("port")
		host, _ := cmd.Flags().GetString("host")
		if port != 0 {
			cfg.Server.Port = port
		}
		if host != "" {
			cfg.Server.Host = host
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return startServer(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().Int("port", 0, "server port (default: 5000)")
	serveCmd.Flags().String("host", "", "server host (default: 127.0.0.1)")
}

func startServer(ctx context.Context, cfg *config.Config) error {
	services, err := container.NewServiceContainer(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.Warn("Failed to release services", "error", err)
		}
	}()

	if err := services.GetStateStore().Health(ctx); err != nil {
		logger.Warn("State store health check failed", "error", err)
		fmt.Println(errorStyle.Render(fmt.Sprintf("Warning: state store may not be available: %v", err)))
	}

	server, err := web.NewServer(
		cfg,
		services.GetInterpreter(),
		services.GetQueue(),
		services.GetRateLimiter(),
		services.GetStateStore(),
		services.GetDisplayName(),
	)
	if err != nil {
		return err
	}

	fmt.Printf("\n%s http://%s\n", titleStyle.Render("drawbot is listening on"), server.Addr())
	fmt.Println(dimStyle.Render(fmt.Sprintf("   drawing in %s through the %s display. Press Ctrl+C to stop.", cfg.Target.AppName, services.GetDisplayName())))

	if err := server.Start(ctx); err != nil {
		return err
	}

	fmt.Println(dimStyle.Render("drawbot stopped"))
	return nil
}
