// Package scene drives the pair manager with a synthetic broad-phase
// workload: bodies bouncing around a box, with every begin/end of bounding
// box overlap reported to the manager.
package scene

import (
	"math/rand"

	"github.com/zeunio/reactphysics3d/internal/body"
	"github.com/zeunio/reactphysics3d/internal/broadphase"
)

// Params describes a scene workload. All values must be positive.
type Params struct {
	Bodies    int
	WorldSize float64 // half-extent of the cubic world
	MaxSpeed  float64
	BodySize  float64 // half-extent of each body's bounding box
	Seed      int64
	TableSize int // initial bucket count for the pair manager
}

func DefaultParams() Params {
	return Params{
		Bodies:    64,
		WorldSize: 10.0,
		MaxSpeed:  2.0,
		BodySize:  1.0,
		Seed:      1,
		TableSize: broadphase.DefaultTableSize,
	}
}

// Scene owns a set of moving bodies and the pair manager tracking their
// overlaps.
type Scene struct {
	bodies []*body.Body
	pairs  *broadphase.Manager
	bounds body.AABB
}

// New builds a scene with bodies placed and aimed by the seeded generator,
// so a given Params always produces the same trajectory.
func New(p Params) *Scene {
	rng := rand.New(rand.NewSource(p.Seed))
	half := body.Vector3{X: p.BodySize, Y: p.BodySize, Z: p.BodySize}

	s := &Scene{
		bodies: make([]*body.Body, p.Bodies),
		pairs:  broadphase.NewWithCapacity(p.TableSize),
		bounds: body.AABB{
			Min: body.Vector3{X: -p.WorldSize, Y: -p.WorldSize, Z: -p.WorldSize},
			Max: body.Vector3{X: p.WorldSize, Y: p.WorldSize, Z: p.WorldSize},
		},
	}

	span := 2 * p.WorldSize
	for i := range s.bodies {
		pos := body.Vector3{
			X: s.bounds.Min.X + rng.Float64()*span,
			Y: s.bounds.Min.Y + rng.Float64()*span,
			Z: s.bounds.Min.Z + rng.Float64()*span,
		}
		b := body.New(uint32(i), pos, half)
		b.Velocity = body.Vector3{
			X: (rng.Float64()*2 - 1) * p.MaxSpeed,
			Y: (rng.Float64()*2 - 1) * p.MaxSpeed,
			Z: (rng.Float64()*2 - 1) * p.MaxSpeed,
		}
		s.bodies[i] = b
	}
	s.syncPairs()
	return s
}

// Pairs exposes the scene's pair manager for lookups, iteration and listener
// registration.
func (s *Scene) Pairs() *broadphase.Manager {
	return s.pairs
}

// Bodies returns the scene's bodies. Callers must not mutate them.
func (s *Scene) Bodies() []*body.Body {
	return s.bodies
}

// Step integrates every body by dt, bounces them off the world bounds, and
// reports every overlap transition to the pair manager.
func (s *Scene) Step(dt float64) {
	for _, b := range s.bodies {
		b.Integrate(dt)
		s.bounce(b)
	}
	s.syncPairs()
}

// bounce reflects a body's velocity on any axis where it left the world.
func (s *Scene) bounce(b *body.Body) {
	if b.Position.X < s.bounds.Min.X || b.Position.X > s.bounds.Max.X {
		b.Velocity.X = -b.Velocity.X
	}
	if b.Position.Y < s.bounds.Min.Y || b.Position.Y > s.bounds.Max.Y {
		b.Velocity.Y = -b.Velocity.Y
	}
	if b.Position.Z < s.bounds.Min.Z || b.Position.Z > s.bounds.Max.Z {
		b.Velocity.Z = -b.Velocity.Z
	}
}

// syncPairs tests every body pair's bounding boxes and adds or removes the
// pair on each begin/end-overlap transition.
func (s *Scene) syncPairs() {
	for i := 0; i < len(s.bodies); i++ {
		bi := s.bodies[i]
		aabb := bi.AABB()
		for j := i + 1; j < len(s.bodies); j++ {
			bj := s.bodies[j]
			overlapping := aabb.Overlaps(bj.AABB())
			_, tracked := s.pairs.FindPair(bi.ID(), bj.ID())
			switch {
			case overlapping && !tracked:
				s.pairs.AddPair(bi, bj)
			case !overlapping && tracked:
				s.pairs.RemovePair(bi.ID(), bj.ID())
			}
		}
	}
}
