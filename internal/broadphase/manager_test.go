package broadphase_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/zeunio/reactphysics3d/internal/broadphase"
)

type testBody struct {
	id uint32
}

func (b *testBody) ID() uint32 { return b.id }

// bodies hands out stable *testBody instances keyed by identifier.
type bodies map[uint32]*testBody

func (bs bodies) get(id uint32) *testBody {
	if b, ok := bs[id]; ok {
		return b
	}
	b := &testBody{id: id}
	bs[id] = b
	return b
}

var _ = Describe("Manager", func() {
	var (
		m  *broadphase.Manager
		bs bodies
	)

	add := func(id1, id2 uint32) broadphase.Pair {
		return m.AddPair(bs.get(id1), bs.get(id2))
	}

	pairIDs := func() [][2]uint32 {
		var out [][2]uint32
		m.Each(func(p broadphase.Pair) bool {
			id1, id2 := p.IDs()
			out = append(out, [2]uint32{id1, id2})
			return true
		})
		return out
	}

	BeforeEach(func() {
		m = broadphase.New()
		bs = bodies{}
	})

	Describe("AddPair", func() {
		It("canonicalizes so both argument orders yield the same record", func() {
			p1 := add(9, 4)
			p2 := add(4, 9)

			id1, id2 := p1.IDs()
			Expect(id1).To(Equal(uint32(4)))
			Expect(id2).To(Equal(uint32(9)))
			Expect(p2).To(Equal(p1))
			Expect(m.PairCount()).To(Equal(1))
		})

		It("keeps the smaller-ID body first in the record", func() {
			p := add(30, 7)
			Expect(p.First.ID()).To(Equal(uint32(7)))
			Expect(p.Second.ID()).To(Equal(uint32(30)))
		})

		It("is idempotent for duplicate pairs", func() {
			add(1, 2)
			before := m.PairCount()
			add(2, 1)
			Expect(m.PairCount()).To(Equal(before))
		})

		It("panics when a body is paired with itself", func() {
			Expect(func() { add(5, 5) }).To(PanicWith("broadphase: body cannot pair with itself"))
			Expect(m.PairCount()).To(Equal(0))
		})
	})

	Describe("FindPair", func() {
		It("finds an added pair under either ID order", func() {
			add(3, 8)

			p, ok := m.FindPair(3, 8)
			Expect(ok).To(BeTrue())
			rev, ok := m.FindPair(8, 3)
			Expect(ok).To(BeTrue())
			Expect(rev).To(Equal(p))
		})

		It("reports not-found without error", func() {
			_, ok := m.FindPair(100, 200)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("RemovePair", func() {
		It("removes an existing pair and decrements the count", func() {
			add(1, 2)
			add(3, 4)
			add(2, 3)
			Expect(m.PairCount()).To(Equal(3))

			Expect(m.RemovePair(3, 4)).To(BeTrue())
			Expect(m.PairCount()).To(Equal(2))

			_, ok := m.FindPair(3, 4)
			Expect(ok).To(BeFalse())
			_, ok = m.FindPair(1, 2)
			Expect(ok).To(BeTrue())
			_, ok = m.FindPair(2, 3)
			Expect(ok).To(BeTrue())
		})

		It("reports failure for an absent pair without mutating", func() {
			add(1, 2)
			Expect(m.RemovePair(7, 9)).To(BeFalse())
			Expect(m.PairCount()).To(Equal(1))
		})

		It("compacts by moving the last record into the freed slot", func() {
			// Five pairs, remove the middle one; the survivors must all
			// remain findable and the dense store gap-free.
			add(1, 2)
			add(3, 4)
			add(5, 6)
			add(7, 8)
			add(9, 10)

			Expect(m.RemovePair(5, 6)).To(BeTrue())
			Expect(m.PairCount()).To(Equal(4))
			Expect(pairIDs()).To(HaveLen(4))

			for _, ids := range [][2]uint32{{1, 2}, {3, 4}, {7, 8}, {9, 10}} {
				_, ok := m.FindPair(ids[0], ids[1])
				Expect(ok).To(BeTrue(), "pair (%d,%d) lost after compaction", ids[0], ids[1])
			}
		})
	})

	Describe("resizing", func() {
		It("grows to the smallest covering power of two and keeps every pair findable", func() {
			const n = 100
			for i := uint32(0); i < n; i++ {
				add(i, i+1000)
			}

			Expect(m.PairCount()).To(Equal(n))
			Expect(m.TableSize()).To(Equal(128))

			for i := uint32(0); i < n; i++ {
				_, ok := m.FindPair(i, i+1000)
				Expect(ok).To(BeTrue(), "pair (%d,%d) lost after growth", i, i+1000)
			}
		})

		It("shrinks on demand to the minimal power of two covering the count", func() {
			for i := uint32(0); i < 100; i++ {
				add(i, i+1000)
			}
			for i := uint32(5); i < 100; i++ {
				Expect(m.RemovePair(i, i+1000)).To(BeTrue())
			}
			Expect(m.TableSize()).To(Equal(128))

			m.Shrink()

			Expect(m.TableSize()).To(Equal(8))
			for i := uint32(0); i < 5; i++ {
				_, ok := m.FindPair(i, i+1000)
				Expect(ok).To(BeTrue())
			}
		})

		It("does nothing when the table already fits", func() {
			add(1, 2)
			m.Shrink()
			size := m.TableSize()
			m.Shrink()
			Expect(m.TableSize()).To(Equal(size))
		})
	})

	Describe("iteration", func() {
		It("enumerates exactly PairCount records, each canonical, no duplicates", func() {
			for i := uint32(0); i < 50; i++ {
				add(2*i, 2*i+1)
			}
			m.RemovePair(10, 11)
			m.RemovePair(40, 41)

			seen := map[[2]uint32]bool{}
			for _, ids := range pairIDs() {
				Expect(ids[0]).To(BeNumerically("<", ids[1]))
				Expect(seen[ids]).To(BeFalse(), "duplicate pair %v", ids)
				seen[ids] = true
			}
			Expect(seen).To(HaveLen(m.PairCount()))
		})

		It("stops early when the callback returns false", func() {
			add(1, 2)
			add(3, 4)
			add(5, 6)

			visited := 0
			m.Each(func(broadphase.Pair) bool {
				visited++
				return visited < 2
			})
			Expect(visited).To(Equal(2))
		})
	})

	Describe("listeners", func() {
		It("fires the added listener exactly once per new pair, before AddPair returns", func() {
			var got []broadphase.Pair
			m.OnPairAdded(func(p broadphase.Pair) {
				got = append(got, p)
			})

			add(7, 9)
			add(9, 7) // duplicate, no event

			Expect(got).To(HaveLen(1))
			id1, id2 := got[0].IDs()
			Expect(id1).To(Equal(uint32(7)))
			Expect(id2).To(Equal(uint32(9)))
		})

		It("hands the removed listener a copy that survives compaction", func() {
			add(1, 2)
			add(3, 4)
			add(5, 6)

			var got []broadphase.Pair
			m.OnPairRemoved(func(p broadphase.Pair) {
				got = append(got, p)
			})

			m.RemovePair(1, 2)
			m.RemovePair(9, 11) // absent, no event

			Expect(got).To(HaveLen(1))
			id1, id2 := got[0].IDs()
			Expect(id1).To(Equal(uint32(1)))
			Expect(id2).To(Equal(uint32(2)))
		})

		It("lets a removed listener query the manager without seeing the removed pair", func() {
			add(1, 2)
			add(3, 4)

			m.OnPairRemoved(func(p broadphase.Pair) {
				_, ok := m.FindPair(1, 2)
				Expect(ok).To(BeFalse())
				_, ok = m.FindPair(3, 4)
				Expect(ok).To(BeTrue())
			})
			Expect(m.RemovePair(1, 2)).To(BeTrue())
		})

		It("replaces a previous registration instead of stacking", func() {
			first, second := 0, 0
			m.OnPairAdded(func(broadphase.Pair) { first++ })
			m.OnPairAdded(func(broadphase.Pair) { second++ })

			add(1, 2)

			Expect(first).To(Equal(0))
			Expect(second).To(Equal(1))
		})

		It("unregisters on nil", func() {
			calls := 0
			m.OnPairAdded(func(broadphase.Pair) { calls++ })
			m.OnPairAdded(nil)

			add(1, 2)

			Expect(calls).To(Equal(0))
		})
	})

	Describe("Stats", func() {
		It("reflects occupancy and resize history", func() {
			for i := uint32(0); i < 20; i++ {
				add(i, i+100)
			}

			s := m.Stats()
			Expect(s.PairCount).To(Equal(20))
			Expect(s.TableSize).To(Equal(32))
			Expect(s.LoadFactor).To(BeNumerically("~", 20.0/32.0, 1e-12))
			Expect(s.Grows).To(Equal(1))
			Expect(s.LongestChain).To(BeNumerically(">=", 1))

			total := 0
			for n, c := range s.ChainLengths {
				total += n * c
			}
			Expect(total).To(Equal(20))
		})
	})
})
