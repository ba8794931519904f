package broadphase

// pairKey packs two canonically ordered body identifiers into one 32-bit
// hash key. Identifiers are expected to fit in 16 bits each.
func pairKey(id1, id2 uint32) uint32 {
	return id1 | id2<<16
}

// hash32 mixes a 32-bit key with Thomas Wang's integer hash
// (www.concentric.net/~ttwang/tech/inthash.htm) so that nearby keys land in
// unrelated buckets. No data-dependent branches.
func hash32(key uint32) uint32 {
	key += ^(key << 15)
	key ^= key >> 10
	key += key << 3
	key ^= key >> 6
	key += ^(key << 11)
	key ^= key >> 16
	return key
}

// nextPowerOfTwo returns the smallest power of two >= n, treating 0 as 1.
func nextPowerOfTwo(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	return n + 1
}
