package engine

// GenerateBag returns a shuffled permutation of all seven pieces and the
// advanced seed. A shuffle that somehow loses pieces is repaired by appending
// the missing types before trimming to seven.
func GenerateBag(seed uint32) ([]PieceType, uint32) {
	shuffled, next := ShuffleWithSeed(PieceTypes[:], seed)

	bag := make([]PieceType, 0, len(PieceTypes))
	var seen [PieceZ + 1]bool
	for _, t := range shuffled {
		if t.Valid() && !seen[t] {
			seen[t] = true
			bag = append(bag, t)
		}
	}
	if len(bag) == len(PieceTypes) {
		return bag, next
	}

	for _, t := range PieceTypes {
		if !seen[t] {
			bag = append(bag, t)
		}
	}
	return bag[:len(PieceTypes)], next
}
