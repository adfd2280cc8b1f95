package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	cobra "github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	config "github.com/inference-gateway/drawbot/config"
)

const maskedSecret = "********"

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage drawbot configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long: fmt.Sprintf(`Write the default configuration to %s, or to the file given with --config.
Every value can also be overridden with %s_* environment variables, for
example %s_TARGET_APP_NAME or %s_STORAGE_TYPE.`,
		config.DefaultConfigPath, config.EnvPrefix, config.EnvPrefix, config.EnvPrefix),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		overwrite, _ := cmd.Flags().GetBool("overwrite")

		if err := writeDefaultConfig(path, overwrite); err != nil {
			return err
		}
		if path == "" {
			path = config.DefaultConfigPath
		}
		fmt.Println(okStyle.Render("Configuration written to " + path))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		out, err := renderConfig(cfg)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("overwrite", false, "overwrite an existing configuration file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func writeDefaultConfig(path string, overwrite bool) error {
	if path == "" {
		path = config.DefaultConfigPath
	}

	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists, use --overwrite to replace it", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	return config.DefaultConfig().SaveConfig(path)
}

// renderConfig returns cfg as YAML with passwords masked
func renderConfig(cfg *config.Config) (string, error) {
	masked := *cfg
	if masked.Storage.Postgres.Password != "" {
		masked.Storage.Postgres.Password = maskedSecret
	}
	if masked.Storage.Redis.Password != "" {
		masked.Storage.Redis.Password = maskedSecret
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&masked); err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("failed to close YAML encoder: %w", err)
	}
	return buf.String(), nil
}
