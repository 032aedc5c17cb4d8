// Package search - the fast-mode pruning filter.
package search

// fiveDigitFloor is the exclusive lower bound for a "large" operand: any
// value above it spans all five digits of some group.
const fiveDigitFloor = 9999

// HasFiveDigitOperand reports whether any operand exceeds 9999, i.e. one
// group of the split absorbed five digits. Fast mode skips the entire
// inner operator×shape loop for (permutation, split) pairs where this is
// false.
//
// The underlying claim — that the global optimum always involves a
// five-digit operand — is empirical, not proven. The filter only ever
// removes candidates, so a fast-mode maximum is always ≤ the exhaustive
// maximum over the same range; it is never a different, larger answer.
//
// Complexity: O(NumOperands).
func HasFiveDigitOperand(operands []float64) bool {
	for _, v := range operands {
		if v > fiveDigitFloor {
			return true
		}
	}

	return false
}
