package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/drape/internal/logger"
	"github.com/Faultbox/drape/internal/watcher"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch scene.yaml",
	Short: "Re-run a scene every time its file changes",
	Long:  "Simulate the scene, then rebuild the sheet from scratch and simulate again whenever the file is saved.",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "Wait this long after the last write")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rerun := func() {
		sc, err := loadScene(path)
		if err != nil {
			logger.Error("scene reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		sess, err := openSession(sc)
		if err != nil {
			logger.Error("scene rebuild failed", zap.String("path", path), zap.Error(err))
			return
		}
		if err := simulate(cmd, sc.Name, sess, sc.Steps); err != nil {
			logger.Error("simulation failed", zap.Error(err))
		}
	}

	fw, err := watcher.New(watchDebounce, logger.Named("watch"))
	if err != nil {
		return err
	}
	defer fw.Close()

	// Callbacks fire on timer goroutines; funnel them onto this one so
	// only one session exists at a time.
	changes := make(chan struct{}, 1)
	if err := fw.Watch([]string{path}, func(string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	fw.Start()

	rerun()
	logger.Info("watching scene", zap.String("path", path))
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			rerun()
		}
	}
}
