// Package main provides the skillmatch CLI. It wires the serve, analyze and
// skills subcommands, loads configuration and initializes logging.
package main

import (
	"context"
	"fmt"
	"os"
	"skillmatch/internal/analyzer"
	"skillmatch/internal/config"
	"skillmatch/pkg/catalog"
	"skillmatch/pkg/document"
	"skillmatch/pkg/logger"
	"skillmatch/pkg/similarity/editdistance"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared by subcommands once the root command has loaded it.
type app struct {
	configPath string
	cfg        *config.Config
}

func newAnalyzer() (analyzer.Analyzer, error) {
	a, err := analyzer.New(document.New(), editdistance.New(), catalog.Default(), analyzer.NewOptions())
	if err != nil {
		return nil, fmt.Errorf("could not create analyzer: %w", err)
	}

	return a, nil
}

func newRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "skillmatch",
		Short:         "Matches résumé skills against a job description",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if err := logger.Setup(cfg.Environment); err != nil {
				return err
			}
			a.cfg = cfg

			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "config.yml", "Config File Path")

	rootCmd.AddCommand(
		serveCommand(a),
		analyzeCommand(),
		skillsCommand(),
	)

	return rootCmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			logger.Sync()

			panic(p)
		}
	}()

	err := newRootCommand().ExecuteContext(ctx)
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1) //nolint: gocritic
	}
}
