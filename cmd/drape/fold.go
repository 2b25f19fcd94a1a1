package main

import (
	"fmt"
	gomath "math"

	"github.com/spf13/cobra"
)

var foldOBJ string

var foldCmd = &cobra.Command{
	Use:   "fold [scene.yaml]",
	Short: "Apply a scene's folds and report the rest pose",
	Long:  "Partition the sheet along each fold line in order and print which vertices every fold lifts.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFold,
}

func init() {
	rootCmd.AddCommand(foldCmd)

	foldCmd.Flags().StringVarP(&foldOBJ, "obj", "o", "", "Write the folded rest pose to this OBJ file")
}

func runFold(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) > 0 {
		path = args[0]
	}
	sc, err := loadScene(path)
	if err != nil {
		return err
	}
	sess, err := openSession(sc)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	folds := sess.Folds()
	fmt.Fprintf(out, "Scene %s: %d folds\n", sc.Name, len(folds))
	fmt.Fprintf(out, "%-4s %-18s %-18s %-9s %-9s %s\n", "ID", "Origin", "Axis", "Angle", "Members", "Inverted")
	for _, f := range folds {
		fmt.Fprintf(out, "%-4d (%6.3f, %6.3f)   (%6.3f, %6.3f)   %-9.1f %-9d %v\n",
			f.ID, f.Origin.X, f.Origin.Y, f.Axis.X, f.Axis.Y,
			float64(f.Angle)*180/gomath.Pi, f.Members.Len(), f.Inverted)
	}

	if foldOBJ != "" {
		if err := writeOBJ(foldOBJ, sc.Name, sess, true); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s\n", foldOBJ)
	}
	return nil
}
