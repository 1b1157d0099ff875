package engine

// Seeded, non-cryptographic random source. Every draw takes the current seed
// and returns the next one, so the caller owns all random state.

const (
	seedXor  uint32 = 0x6d2b79f5
	seedMul  uint32 = 0x2c9277b5
	seedAdd  uint32 = 0x7ed55d16
	seedSpan        = float64(1 << 32)
)

// CreateSeed folds a millisecond timestamp into a usable seed.
// Zero is avoided so a fresh game never starts from the all-zero state.
func CreateSeed(ms int64) uint32 {
	s := uint32(ms)
	if s == 0 {
		return 1
	}
	return s
}

// NextSeed mixes a seed into the next one (multiply-xor-add, wrapping at 32 bits).
func NextSeed(seed uint32) uint32 {
	return (seed^seedXor)*seedMul + seedAdd
}

// RandomFromSeed returns a uniform value in [0, 1) and the advanced seed.
func RandomFromSeed(seed uint32) (float64, uint32) {
	next := NextSeed(seed)
	return float64(next) / seedSpan, next
}

// ShuffleWithSeed returns a Fisher-Yates shuffled copy of items.
// One draw is consumed per position, walking from the last index down to 1.
func ShuffleWithSeed[T any](items []T, seed uint32) ([]T, uint32) {
	out := make([]T, len(items))
	copy(out, items)

	next := seed
	for i := len(out) - 1; i > 0; i-- {
		var v float64
		v, next = RandomFromSeed(next)
		j := int(v * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out, next
}
