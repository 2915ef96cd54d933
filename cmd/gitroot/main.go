package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gitwrap/internal/config"
	"gitwrap/internal/render"
	"gitwrap/internal/repo"
	"gitwrap/internal/resolve"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		if !errors.Is(err, resolve.ErrUnresolved) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitroot [path...]",
		Short:         "gitroot - print the repository root containing each path",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args = []string{"."}
			}

			logger := buildLogger(cfg.Verbose)
			defer func() { _ = logger.Sync() }()

			locator := repo.NewLocator(repo.WithLogger(logger))

			if cfg.JSON {
				result, runErr := resolve.NewResolver(locator, nil, logger, cfg).Run(args)
				payload, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return runErr
			}

			renderer := render.NewStdoutRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg.Verbose, cfg.Quiet)
			_, runErr := resolve.NewResolver(locator, renderer, logger, cfg).Run(args)
			_ = renderer.Close()
			return runErr
		},
	}

	cmd.Flags().Bool("json", false, "Output JSON only")
	cmd.Flags().Bool("verbose", false, "Enable verbose logging and probe tracing")
	cmd.Flags().Bool("quiet", false, "Suppress failure messages; rely on the exit status")
	cmd.Flags().Bool("fallback", false, "Print the absolute input path when no repository is found")
	cmd.Flags().Bool("absolute", false, "Print absolute workdirs")

	return cmd
}

func buildLogger(verbose bool) *zap.Logger {
	if verbose {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
