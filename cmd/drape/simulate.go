package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/drape/internal/logger"
	"github.com/Faultbox/drape/internal/sim"
)

var (
	simSteps  int
	simEvery  int
	simOBJ    string
	simFoldIn bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [scene.yaml]",
	Short: "Fold a sheet and step the cloth solver",
	Long:  "Build the scene's sheet, apply its folds, then advance the cloth solver for a fixed number of steps.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().IntVarP(&simSteps, "steps", "n", 0, "Number of steps (overrides the scene)")
	simulateCmd.Flags().IntVar(&simEvery, "every", 50, "Print statistics every N steps (0 for final only)")
	simulateCmd.Flags().StringVarP(&simOBJ, "obj", "o", "", "Write the final mesh to this OBJ file")
	simulateCmd.Flags().BoolVar(&simFoldIn, "animate-folds", false, "Swing folds in before simulating")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	sc, err := loadScene(path)
	if err != nil {
		return err
	}
	if simFoldIn {
		cfg.Fold.Animate = true
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	sess, err := openSession(sc)
	if err != nil {
		return err
	}

	if cfg.Fold.Animate {
		for {
			moved, err := sess.AnimateFolds(cfg.Cloth.Timestep, cfg.Fold.Speed)
			if err != nil {
				return err
			}
			if !moved {
				break
			}
		}
	}

	steps := sc.Steps
	if simSteps > 0 {
		steps = simSteps
	}
	return simulate(cmd, sc.Name, sess, steps)
}

// simulate steps sess and reports progress to the command output.
func simulate(cmd *cobra.Command, name string, sess *sim.Session, steps int) error {
	out := cmd.OutOrStdout()
	topo := sess.Topology()
	fmt.Fprintf(out, "Scene %s: %d vertices, %d triangles, %d pins, %d folds\n",
		name, topo.VertexCount(), topo.TriangleCount(), topo.Pins.Len(), len(sess.Folds()))
	fmt.Fprintf(out, "%-8s %-12s %-12s %-12s\n", "Frame", "Min Y", "Max Y", "Stretch")

	report := func() {
		st := sess.Stats()
		fmt.Fprintf(out, "%-8d %-12.4f %-12.4f %-12.4f\n", st.Frame, st.MinY, st.MaxY, st.MaxStretch)
	}

	for i := 1; i <= steps; i++ {
		if err := sess.Step(); err != nil {
			return err
		}
		if simEvery > 0 && i%simEvery == 0 {
			report()
		}
	}
	if simEvery == 0 || steps%simEvery != 0 {
		report()
	}

	logger.Info("simulation finished", zap.String("scene", name), zap.Int("steps", steps))

	if simOBJ != "" {
		if err := writeOBJ(simOBJ, name, sess, false); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", simOBJ)
	}
	return nil
}
