package dfa

import "sort"

// fnvOffset and fnvPrime are the FNV-1a 32-bit constants spec §4.4
// pins: seed 0x811c9dc5, multiplier 0x01000193.
const (
	fnvOffset uint32 = 0x811c9dc5
	fnvPrime  uint32 = 0x01000193
)

// fingerprint hashes the sorted list of NFA-state ids forming a DFA
// state's subset: FNV-1a over each id's little-endian uint32 bytes.
func fingerprint(ids []int) uint32 {
	sorted := append([]int(nil), ids...)
	sort.Ints(sorted)

	h := fnvOffset
	for _, id := range sorted {
		v := uint32(id)
		bs := [4]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
		for _, b := range bs {
			h ^= uint32(b)
			h *= fnvPrime
		}
	}
	return h
}
