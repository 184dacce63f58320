package patricia

import (
	"github.com/hideo55/go-popcount"
)

// branchingBit returns a mask with only the highest bit at which the prefixes
// differ set. The prefixes must differ.
func branchingBit(prefix1, prefix2 uint64) uint64 {
	bit := prefix1 ^ prefix2
	if bit == 0 {
		panic("patricia: branching bit of equal prefixes")
	}
	// smear the highest set bit down to the lowest position
	bit |= bit >> 1
	bit |= bit >> 2
	bit |= bit >> 4
	bit |= bit >> 8
	bit |= bit >> 16
	bit |= bit >> 32
	// and keep the top one only
	return bit &^ (bit >> 1)
}

// maskToPrefix clears all the bits of prefix at and below the mask bit.
func maskToPrefix(prefix, mask uint64) uint64 {
	return prefix & (^(mask - 1) ^ mask)
}

// matches reports whether the key agrees with prefix above the mask bit.
func matches(key, prefix, mask uint64) bool {
	return maskToPrefix(key, mask) == prefix
}

// goesLeft reports whether the key bit at the mask bit is 0.
func goesLeft(key, mask uint64) bool {
	return key&mask == 0
}

// bitIndex returns the position [0..63] of the single bit set in mask.
func bitIndex(mask uint64) int {
	return int(popcount.Count(mask - 1))
}
