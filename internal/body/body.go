// Package body provides the rigid-body surface consumed by the broad-phase:
// a stable integer identity plus a moving axis-aligned bounding volume.
package body

// Body is a collision body tracked by the broad-phase. The identifier is
// assigned at construction and never changes; everything else may move every
// step.
type Body struct {
	id          uint32
	Position    Vector3
	Velocity    Vector3
	HalfExtents Vector3
}

func New(id uint32, position, halfExtents Vector3) *Body {
	return &Body{
		id:          id,
		Position:    position,
		HalfExtents: halfExtents,
	}
}

// ID returns the body's stable unique identifier.
func (b *Body) ID() uint32 {
	return b.id
}

// AABB returns the body's current bounding box.
func (b *Body) AABB() AABB {
	return AABB{
		Min: b.Position.Sub(b.HalfExtents),
		Max: b.Position.Add(b.HalfExtents),
	}
}

// Integrate advances the body's position by one explicit Euler step.
func (b *Body) Integrate(dt float64) {
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}
