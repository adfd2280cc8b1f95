package cmd

import (
	"errors"
	"fmt"
	"os"

	cobra "github.com/spf13/cobra"
	gotenv "github.com/subosito/gotenv"

	config "github.com/inference-gateway/drawbot/config"
	logger "github.com/inference-gateway/drawbot/internal/logger"
)

var loadedConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "drawbot",
	Short: "Draw pictures in a paint application from short text commands",
	Long: `drawbot turns short commands such as "draw scene", "house" or "tree" into
synthetic mouse drags that make an unmodified paint application draw the picture
with its own freehand tool.

Run 'drawbot serve' for the web form or 'drawbot draw <prompt>' for a single command.`,
	SilenceUsage: true,
}

func Execute() {
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", fmt.Sprintf("config file (default is %s)", config.DefaultConfigPath))
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	cobra.OnInitialize(initConfig)
}

func initConfig() {
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	configPath, _ := rootCmd.PersistentFlags().GetString("config")

	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	v, err := config.NewViper()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(v, configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	loadedConfig = cfg
	logger.Init(verbose, cfg)
}

// loadDotEnv exports the variables in path without overriding ones that are
// already set. A missing file is ignored.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return gotenv.Load(path)
}

func getConfigFromViper() (*config.Config, error) {
	if loadedConfig == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return loadedConfig, nil
}
