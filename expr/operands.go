// Package expr - operand construction from a permutation and a split.
package expr

// BuildOperands slices perm into NumOperands contiguous digit runs according
// to split's cut points and converts each run to its decimal value
// (most-significant digit first: value = value*10 + digit).
//
// Contracts:
//   - len(perm) == NumDigits with digits in 1..9 (guaranteed by tables.New).
//   - split holds NumOperators strictly increasing cut points in [1,8];
//     the implicit boundaries 0 and NumDigits close the five groups.
//   - dst is an optional scratch slice; when cap(dst) ≥ NumOperands it is
//     reused, keeping the search hot loop allocation-free.
//
// The result is pure and deterministic; each operand is an exact integer in
// [1, 99999] represented in float64 (digits 1–9 exclude zero, so there is no
// leading-zero ambiguity).
//
// Complexity: O(NumDigits) time, zero allocations when dst is reused.
func BuildOperands(perm []uint8, split []int, dst []float64) []float64 {
	if cap(dst) < NumOperands {
		dst = make([]float64, NumOperands)
	}
	dst = dst[:NumOperands]

	var (
		group int     // operand index being filled
		cut   int     // exclusive end of the current digit run
		k     int     // digit cursor within the run
		prev  int     // inclusive start of the current digit run
		val   float64 // accumulated decimal value
	)
	for group = 0; group < NumOperands; group++ {
		// The final group runs to the end of the permutation.
		cut = NumDigits
		if group < len(split) {
			cut = split[group]
		}

		val = 0
		for k = prev; k < cut; k++ {
			val = val*10 + float64(perm[k])
		}
		dst[group] = val
		prev = cut
	}

	return dst
}
