// Package main is the entry point for the drape command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/drape/internal/config"
	"github.com/Faultbox/drape/internal/logger"
)

var (
	flags *config.Flags
	cfg   *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "drape",
	Short: "Fold and drape garment panels",
	Long: `drape runs the mesh deformation core of the pattern visualizer headless:
it folds a sheet along cut lines, hangs it from pinned vertices and steps the
cloth solver, printing per-frame statistics or exporting the result as OBJ.`,
	Version:       "0.3.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flags)
		if err != nil {
			return err
		}
		if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		logger.Sugar.Debugf("config: %+v", cfg)
		return nil
	},
}

func init() {
	flags = config.BindFlags(rootCmd.PersistentFlags())
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}
