package tables_test

import (
	"fmt"

	"github.com/katalvlaran/nineop/tables"
)

// ExampleNew builds the four lookup tables and prints their cardinalities —
// the exact counts every search run is predicated on.
func ExampleNew() {
	t, err := tables.New()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(t.Perms), len(t.Splits), len(t.OpOrders), len(t.Shapes))
	// Output: 362880 70 24 14
}
