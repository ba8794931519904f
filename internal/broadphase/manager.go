package broadphase

// nilIndex marks an empty bucket or the end of a bucket chain.
const nilIndex = ^uint32(0)

// DefaultTableSize is the bucket count a zero-argument Manager starts with.
const DefaultTableSize = 16

// PairListener receives a copy of the affected pair. For removals the copy is
// all the listener gets: the record's slot is recycled by compaction right
// after the call returns.
type PairListener func(Pair)

// Manager is the overlapping-pair set. The zero value is not usable; create
// instances with New or NewWithCapacity.
type Manager struct {
	buckets []uint32 // chain heads, power-of-two length
	next    []uint32 // next[i] chains pairs[i] to the next pair in its bucket
	pairs   []Pair   // dense store, no holes
	mask    uint32   // len(buckets) - 1

	onAdded   PairListener
	onRemoved PairListener

	grows   int
	shrinks int
}

func New() *Manager {
	return NewWithCapacity(DefaultTableSize)
}

// NewWithCapacity creates a manager whose bucket table starts at the smallest
// power of two >= capacity.
func NewWithCapacity(capacity int) *Manager {
	if capacity < 1 {
		capacity = 1
	}
	size := nextPowerOfTwo(uint32(capacity))
	m := &Manager{
		buckets: make([]uint32, size),
		mask:    size - 1,
	}
	for i := range m.buckets {
		m.buckets[i] = nilIndex
	}
	return m
}

// PairCount returns the number of active pairs.
func (m *Manager) PairCount() int {
	return len(m.pairs)
}

// TableSize returns the current bucket count.
func (m *Manager) TableSize() int {
	return len(m.buckets)
}

// OnPairAdded registers fn to be called synchronously whenever a new pair is
// added. A second registration replaces the first; nil unregisters.
func (m *Manager) OnPairAdded(fn PairListener) {
	m.onAdded = fn
}

// OnPairRemoved registers fn to be called synchronously whenever a pair is
// removed. A second registration replaces the first; nil unregisters.
func (m *Manager) OnPairRemoved(fn PairListener) {
	m.onRemoved = fn
}

// FindPair looks up the pair for two body identifiers, in either order.
func (m *Manager) FindPair(id1, id2 uint32) (Pair, bool) {
	id1, id2 = sortIDs(id1, id2)
	index := m.lookFor(id1, id2, m.bucketOf(id1, id2))
	if index == nilIndex {
		return Pair{}, false
	}
	return m.pairs[index], true
}

// AddPair records that body1 and body2 overlap and returns the stored pair.
// Adding a pair that is already present is a no-op returning the existing
// record. The added listener fires once per pair actually inserted, after the
// table is consistent again.
func (m *Manager) AddPair(body1, body2 Body) Pair {
	id1, id2 := sortIDs(body1.ID(), body2.ID())
	if id1 != body1.ID() {
		body1, body2 = body2, body1
	}

	h := m.bucketOf(id1, id2)
	if index := m.lookFor(id1, id2, h); index != nilIndex {
		return m.pairs[index]
	}

	index := uint32(len(m.pairs))
	m.pairs = append(m.pairs, Pair{First: body1, Second: body2})
	m.next = append(m.next, m.buckets[h])
	m.buckets[h] = index

	// Keep average chain length near one. Growing rehashes every pair but
	// leaves dense-store indices untouched.
	if len(m.pairs) > len(m.buckets) {
		m.rebuild(nextPowerOfTwo(uint32(len(m.pairs))))
		m.grows++
	}

	added := m.pairs[index]
	if m.onAdded != nil {
		m.onAdded(added)
	}
	return added
}

// RemovePair removes the pair for two body identifiers, in either order.
// It reports whether a pair was actually removed; removing an absent pair
// changes nothing.
func (m *Manager) RemovePair(id1, id2 uint32) bool {
	id1, id2 = sortIDs(id1, id2)
	h := m.bucketOf(id1, id2)

	prev := nilIndex
	index := m.buckets[h]
	for index != nilIndex {
		p1, p2 := m.pairs[index].IDs()
		if p1 == id1 && p2 == id2 {
			break
		}
		prev = index
		index = m.next[index]
	}
	if index == nilIndex {
		return false
	}

	// Unlink first so a listener querying the manager sees every pair but
	// the one being removed.
	if prev != nilIndex {
		m.next[prev] = m.next[index]
	} else {
		m.buckets[h] = m.next[index]
	}

	if m.onRemoved != nil {
		m.onRemoved(m.pairs[index])
	}

	// Compact: the last pair takes over the freed slot, and whatever chain
	// link pointed at it is retargeted to its new index.
	last := uint32(len(m.pairs) - 1)
	if index != last {
		l1, l2 := m.pairs[last].IDs()
		lh := m.bucketOf(l1, l2)
		if m.buckets[lh] == last {
			m.buckets[lh] = index
		} else {
			cur := m.buckets[lh]
			for m.next[cur] != last {
				cur = m.next[cur]
			}
			m.next[cur] = index
		}
		m.pairs[index] = m.pairs[last]
		m.next[index] = m.next[last]
	}
	m.pairs = m.pairs[:last]
	m.next = m.next[:last]
	return true
}

// Shrink reduces the bucket table to the smallest power of two covering the
// current pair count. It is never called automatically; a broad-phase caller
// typically invokes it after bulk removals.
func (m *Manager) Shrink() {
	target := nextPowerOfTwo(uint32(len(m.pairs)))
	if int(target) >= len(m.buckets) {
		return
	}
	m.rebuild(target)
	m.shrinks++
}

// Each calls fn for every active pair in dense-store order until fn returns
// false. The order carries no meaning and is stable only until the next
// mutating call.
func (m *Manager) Each(fn func(Pair) bool) {
	for _, p := range m.pairs {
		if !fn(p) {
			return
		}
	}
}

func (m *Manager) bucketOf(id1, id2 uint32) uint32 {
	return hash32(pairKey(id1, id2)) & m.mask
}

// lookFor walks the chain of bucket h for the pair (id1,id2) and returns its
// dense-store index, or nilIndex.
func (m *Manager) lookFor(id1, id2, h uint32) uint32 {
	index := m.buckets[h]
	for index != nilIndex {
		p1, p2 := m.pairs[index].IDs()
		if p1 == id1 && p2 == id2 {
			return index
		}
		index = m.next[index]
	}
	return nilIndex
}

// rebuild reallocates the bucket table and chain array at the given
// power-of-two size and relinks every pair under the new mask. Dense-store
// indices are unchanged.
func (m *Manager) rebuild(size uint32) {
	m.buckets = make([]uint32, size)
	m.mask = size - 1
	for i := range m.buckets {
		m.buckets[i] = nilIndex
	}
	m.next = make([]uint32, len(m.pairs))
	for i := range m.pairs {
		id1, id2 := m.pairs[i].IDs()
		h := m.bucketOf(id1, id2)
		m.next[i] = m.buckets[h]
		m.buckets[h] = uint32(i)
	}
}
