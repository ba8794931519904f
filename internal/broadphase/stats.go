package broadphase

// TableStats is a point-in-time snapshot of the hash table's shape, used by
// the metrics and visualization layers.
type TableStats struct {
	PairCount    int
	TableSize    int
	LoadFactor   float64
	LongestChain int
	ChainLengths []int // histogram: ChainLengths[n] = buckets with chain length n
	Grows        int
	Shrinks      int
}

// Stats walks every bucket chain and summarizes the table.
func (m *Manager) Stats() TableStats {
	s := TableStats{
		PairCount: len(m.pairs),
		TableSize: len(m.buckets),
		Grows:     m.grows,
		Shrinks:   m.shrinks,
	}
	if s.TableSize > 0 {
		s.LoadFactor = float64(s.PairCount) / float64(s.TableSize)
	}

	counts := make(map[int]int)
	for _, head := range m.buckets {
		n := 0
		for index := head; index != nilIndex; index = m.next[index] {
			n++
		}
		counts[n]++
		if n > s.LongestChain {
			s.LongestChain = n
		}
	}
	s.ChainLengths = make([]int, s.LongestChain+1)
	for n, c := range counts {
		s.ChainLengths[n] = c
	}
	return s
}
