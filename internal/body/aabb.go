package body

// AABB is an axis-aligned bounding box described by its two extreme corners.
type AABB struct {
	Min Vector3
	Max Vector3
}

// Overlaps reports whether the two boxes intersect. Boxes that merely touch
// on a face count as overlapping.
func (a AABB) Overlaps(b AABB) bool {
	if a.Max.X < b.Min.X || b.Max.X < a.Min.X {
		return false
	}
	if a.Max.Y < b.Min.Y || b.Max.Y < a.Min.Y {
		return false
	}
	if a.Max.Z < b.Min.Z || b.Max.Z < a.Min.Z {
		return false
	}
	return true
}

// Contains reports whether point p lies inside the box.
func (a AABB) Contains(p Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}
