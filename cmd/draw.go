package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cobra "github.com/spf13/cobra"

	config "github.com/inference-gateway/drawbot/config"
	container "github.com/inference-gateway/drawbot/internal/container"
	domain "github.com/inference-gateway/drawbot/internal/domain"
	logger "github.com/inference-gateway/drawbot/internal/logger"
	preview "github.com/inference-gateway/drawbot/internal/preview"
)

type drawOptions struct {
	dryRun    bool
	preview   string
	sessionID string
	verbose   bool
}

var drawCmd = &cobra.Command{
	Use:   "draw <prompt...>",
	Short: "Run a single drawing command",
	Long: `Run one prompt, for example 'drawbot draw draw scene' or 'drawbot draw tree'.

With --dry-run nothing touches the desktop: the strokes are recorded instead and
can be written as an SVG with --preview.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		opts := drawOptions{}
		opts.dryRun, _ = cmd.Flags().GetBool("dry-run")
		opts.preview, _ = cmd.Flags().GetString("preview")
		opts.sessionID, _ = cmd.Flags().GetString("session")
		opts.verbose, _ = cmd.Flags().GetBool("verbose")

		return runDraw(cmd.Context(), os.Stdout, cfg, strings.Join(args, " "), opts)
	},
}

func init() {
	rootCmd.AddCommand(drawCmd)

	drawCmd.Flags().Bool("dry-run", false, "record the strokes instead of moving the mouse")
	drawCmd.Flags().String("preview", "", "write the recorded strokes to this SVG file (implies --dry-run)")
	drawCmd.Flags().String("session", "cli", "session id whose last house is used and updated")
}

func runDraw(ctx context.Context, out io.Writer, cfg *config.Config, prompt string, opts drawOptions) error {
	if strings.TrimSpace(prompt) == "" {
		return domain.ErrEmptyPrompt
	}

	var containerOpts []container.Option
	if opts.dryRun || opts.preview != "" {
		containerOpts = append(containerOpts, container.WithProvider(container.NewDryRunProvider(cfg)))
	}

	services, err := container.NewServiceContainer(cfg, containerOpts...)
	if err != nil {
		return err
	}
	defer func() {
		if err := services.Close(); err != nil {
			logger.Warn("Failed to release services", "error", err)
		}
	}()

	res, err := services.GetInterpreter().Run(ctx, opts.sessionID, prompt)
	if err != nil {
		return err
	}

	status := fmt.Sprintf("[%s] -> %s", strings.TrimSpace(prompt), res.Status)
	fmt.Fprintln(out, statusStyle(res.Status).Render(status))

	if opts.verbose || res.Command.Ambiguous() {
		matched := make([]string, len(res.Command.Matched))
		for i, k := range res.Command.Matched {
			matched[i] = k.String()
		}
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("   kind: %s  matched: %s  primitives: %d",
			res.Command.Kind, strings.Join(matched, ","), res.Ops)))
	}

	if opts.preview != "" {
		rec := services.GetRecorder()
		if err := preview.New(cfg.Preview).WriteFile(opts.preview, rec.Strokes()); err != nil {
			return err
		}
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf("   preview written to %s (%d strokes)", opts.preview, len(rec.Strokes()))))
	}

	return nil
}
