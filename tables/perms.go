// Package tables - digit permutation generator.
//
// This is the one large table (362,880 entries), so the enumeration is
// iterative (Heap's algorithm with an explicit counter array) rather than
// recursive, and all rows share a single flat backing array to keep the
// table contiguous in memory.
package tables

import "github.com/katalvlaran/nineop/expr"

// permutations enumerates all orderings of the digits 1..9.
//
// Heap's algorithm produces each successive permutation from the previous
// one by a single swap; the counter array c plays the role of the recursion
// stack. Duplicates cannot occur because the seed digits are distinct.
//
// Complexity: O(9!·9) time to copy rows; one backing allocation of
// NumPerms·NumDigits bytes plus the row-header slice.
func permutations() [][]uint8 {
	var (
		out     = make([][]uint8, 0, NumPerms)              // row headers
		backing = make([]uint8, 0, NumPerms*expr.NumDigits) // shared digit storage
		c       [expr.NumDigits]int                         // Heap's counter array
		i       int                                         // Heap's level index

		// work is the in-place swap buffer; its snapshots become rows.
		work = [expr.NumDigits]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	)

	// record appends a snapshot of work as the next row.
	record := func() {
		backing = append(backing, work[:]...)
		out = append(out, backing[len(backing)-expr.NumDigits:])
	}

	record() // identity permutation first

	for i < expr.NumDigits {
		if c[i] < i {
			if i%2 == 0 {
				work[0], work[i] = work[i], work[0]
			} else {
				work[c[i]], work[i] = work[i], work[c[i]]
			}
			record()
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return out
}
