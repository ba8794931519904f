package broadphase

// Body is the surface the pair manager needs from a collision body: a stable,
// unique integer identifier. Bodies are owned by the caller; the manager only
// keeps back-references.
type Body interface {
	ID() uint32
}

// Pair is one overlapping body pair. First always has the smaller identifier.
// Pairs are handed out by value; equality is defined by the identifier pair,
// and a Pair copy stays meaningful across later mutations of the manager.
type Pair struct {
	First  Body
	Second Body
}

// IDs returns the canonically ordered identifiers of the pair.
func (p Pair) IDs() (uint32, uint32) {
	return p.First.ID(), p.Second.ID()
}

// sortIDs orders two identifiers smallest first. Equal identifiers mean a
// body paired with itself, which the caller must never ask for.
func sortIDs(id1, id2 uint32) (uint32, uint32) {
	if id1 == id2 {
		panic("broadphase: body cannot pair with itself")
	}
	if id1 > id2 {
		return id2, id1
	}
	return id1, id2
}
