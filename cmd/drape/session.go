package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/drape/internal/logger"
	"github.com/Faultbox/drape/internal/mesh"
	"github.com/Faultbox/drape/internal/scene"
	"github.com/Faultbox/drape/internal/sim"
)

// defaultScene is a skirt panel hanging from its waistband.
func defaultScene() *scene.Scene {
	return &scene.Scene{
		Name: "panel",
		Grid: scene.Grid{
			Cols:    9,
			Rows:    12,
			Spacing: 0.1,
			Origin:  [3]float32{-0.4, 0, 0},
		},
		PinTopRow: true,
		Steps:     300,
	}
}

// loadScene reads path, or returns the default scene for an empty path.
func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return defaultScene(), nil
	}
	return scene.Load(path)
}

// openSession builds a session from sc using the loaded config.
func openSession(sc *scene.Scene) (*sim.Session, error) {
	topo, err := sc.Topology()
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", sc.Name, err)
	}
	opts := append(cfg.SessionOptions(), sim.WithLogger(logger.Named("sim")))
	sess, err := sim.New(cfg.SimSettings(), topo, opts...)
	if err != nil {
		return nil, err
	}
	if err := sc.Apply(sess); err != nil {
		return nil, fmt.Errorf("scene %s: %w", sc.Name, err)
	}
	return sess, nil
}

// writeOBJ exports the current positions of sess to path.
func writeOBJ(path, name string, sess *sim.Session, rest bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	positions := sess.Positions()
	if rest {
		positions = sess.RestPose()
	}
	if err := mesh.WriteOBJ(f, name, positions, sess.Topology().Indices); err != nil {
		return err
	}
	return f.Close()
}
