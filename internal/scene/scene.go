// Package scene reads YAML descriptions of a sheet, its pins, folds and
// forces, and replays them onto a session.
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/drape/internal/mesh"
	"github.com/Faultbox/drape/internal/sim"
	"github.com/Faultbox/drape/pkg/math"
)

// Scene is one reproducible setup.
type Scene struct {
	Name      string  `yaml:"name"`
	Grid      Grid    `yaml:"grid"`
	Pins      []int   `yaml:"pins"`
	PinTopRow bool    `yaml:"pin_top_row"`
	Folds     []Fold  `yaml:"folds"`
	Forces    *Forces `yaml:"forces"` // Nil keeps the config's forces
	Drag      *Drag   `yaml:"drag"`
	Steps     int     `yaml:"steps"`
}

// Grid describes the sheet.
type Grid struct {
	Cols           int        `yaml:"cols"`
	Rows           int        `yaml:"rows"`
	Spacing        float32    `yaml:"spacing"`
	Origin         [3]float32 `yaml:"origin"`
	Plane          string     `yaml:"plane"` // "xy" (default) or "xz"
	StructuralOnly bool       `yaml:"structural_only"`
}

// Fold is a crease. Seed is a drafting-plane point; the nearest vertex
// seeds the partition.
type Fold struct {
	Origin   [2]float32 `yaml:"origin"`
	Axis     [2]float32 `yaml:"axis"`
	Seed     [2]float32 `yaml:"seed"`
	Angle    float32    `yaml:"angle"`
	Inverted bool       `yaml:"inverted"`
}

// Forces overrides wind and gravity.
type Forces struct {
	Wind    [3]float32 `yaml:"wind"`
	Gravity float32    `yaml:"gravity"`
}

// Drag holds one vertex at a fixed target for the whole run.
type Drag struct {
	Vertex int        `yaml:"vertex"`
	Target [3]float32 `yaml:"target"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene document.
func Parse(data []byte) (*Scene, error) {
	s := &Scene{Steps: 100}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the parts a topology cannot catch.
func (s *Scene) Validate() error {
	switch s.Grid.Plane {
	case "", "xy", "xz":
	default:
		return fmt.Errorf("unknown grid plane %q", s.Grid.Plane)
	}
	if s.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", s.Steps)
	}
	for i, f := range s.Folds {
		if f.Axis == [2]float32{} {
			return fmt.Errorf("fold %d has a zero axis", i)
		}
	}
	return nil
}

// GridSpec converts the grid description.
func (s *Scene) GridSpec() mesh.GridSpec {
	spec := mesh.GridSpec{
		Cols:           s.Grid.Cols,
		Rows:           s.Grid.Rows,
		Spacing:        s.Grid.Spacing,
		Origin:         vec3(s.Grid.Origin),
		StructuralOnly: s.Grid.StructuralOnly,
		Pins:           append([]int(nil), s.Pins...),
	}
	if s.Grid.Plane == "xz" {
		spec.Plane = mesh.PlaneXZ
	}
	if s.PinTopRow {
		spec.Pins = append(spec.Pins, spec.TopRow()...)
	}
	return spec
}

// Topology builds the sheet.
func (s *Scene) Topology() (*mesh.Topology, error) {
	return mesh.NewGrid(s.GridSpec())
}

// Apply replays forces, folds and the drag onto sess, in file order.
func (s *Scene) Apply(sess *sim.Session) error {
	if s.Forces != nil {
		sess.SetForces(vec3(s.Forces.Wind), s.Forces.Gravity)
	}
	base := sess.Topology().Positions
	for i, f := range s.Folds {
		seed := mesh.NearestVertex(base, vec2(f.Seed))
		if _, err := sess.Fold(vec2(f.Origin), vec2(f.Axis), seed, f.Angle, f.Inverted); err != nil {
			return fmt.Errorf("fold %d: %w", i, err)
		}
	}
	if s.Drag != nil {
		if err := sess.StartDrag(s.Drag.Vertex, vec3(s.Drag.Target)); err != nil {
			return err
		}
	}
	return nil
}

func vec2(a [2]float32) math.Vec2 {
	return math.Vec2{X: a[0], Y: a[1]}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
