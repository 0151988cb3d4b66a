package sequence_test

// Compressed sparse row construction from a dense adjacency matrix: the
// nonzero count of each row is a virtual sequence (never materialized), and
// an exclusive plus-scan of it yields each row's offset into the packed
// column array.

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sunxfancy/graphbolt/sequence"
)

func Example_rowOffsets() {
	adjacency := mat.NewDense(4, 4, []float64{
		0, 1, 0, 1,
		0, 0, 0, 0,
		1, 1, 1, 0,
		1, 1, 1, 1,
	})
	rows, _ := adjacency.Dims()

	degree := func(i int) int {
		d := 0
		for _, v := range adjacency.RawRowView(i) {
			if v != 0 {
				d++
			}
		}
		return d
	}

	offsets := make([]int, rows)
	edges := sequence.Scan(offsets, 0, rows,
		func(x, y int) int { return x + y },
		degree, 0, false, false)

	fmt.Println(offsets, edges)

	// Output:
	// [0 2 2 5] 9
}
