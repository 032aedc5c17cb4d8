// Package tables - construction entry point.
package tables

// New builds all four lookup tables sequentially and validates them before
// returning. The result is immutable and safe for concurrent read-only use.
//
// Errors: strict sentinels from types.go. Any error from New means a
// generator invariant was violated — the search space would be silently
// wrong — so callers must treat it as fatal and not run a search.
//
// Complexity: dominated by the permutation table, O(9!·9) time and
// ~NumPerms·NumDigits bytes of table memory; validation adds one O(total
// table size) pass.
func New() (*Tables, error) {
	t := &Tables{
		Perms:    permutations(),
		Splits:   splits(),
		OpOrders: opOrders(),
		Shapes:   shapes(),
	}

	if err := validate(t); err != nil {
		return nil, err
	}

	return t, nil
}
