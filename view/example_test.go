package view_test

import (
	"fmt"

	"github.com/katalvlaran/sparsevec/vec"
	"github.com/katalvlaran/sparsevec/view"
)

// ExampleNew demonstrates the offset translation of a window: global index
// start+i answers local index i, and writes go straight to the container.
func ExampleNew() {
	base, _ := vec.SparseOf(10, []vec.Entry{
		{Index: 2, Value: 5}, {Index: 5, Value: -1}, {Index: 7, Value: 3},
	})

	// A window over globals 3..6: only the stored -1 at global 5 falls in.
	sv, _ := view.New(base, 3, 4)
	fmt.Println("window:", sv)
	fmt.Println("local 2 =", sv.At(2))

	// Writing through the window lands at global start+index.
	_ = sv.Set(0, 9)
	fmt.Println("base:  ", base)
	// Output:
	// window: len=4 nnz=1 {2:-1}
	// local 2 = -1
	// base:   len=10 nnz=4 {2:5, 3:9, 5:-1, 7:3}
}

// ExampleSubvector_Assign demonstrates assignment between overlapping
// windows of one container: the source is captured before the destination
// range is cleared, so the overlap reads pre-assignment values.
func ExampleSubvector_Assign() {
	base, _ := vec.SparseOf(8, []vec.Entry{
		{Index: 1, Value: 1}, {Index: 3, Value: 3}, {Index: 5, Value: 5},
	})

	dst, _ := view.New(base, 0, 4) // globals 0..3
	src, _ := view.New(base, 2, 4) // globals 2..5, overlaps on 2..3

	fmt.Println("aliased:", src.IsAliased(base))
	// dst receives src's pre-assignment values {0, 3, 0, 5}.
	_ = dst.Assign(src)
	fmt.Println("base:   ", base)
	// Output:
	// aliased: true
	// base:    len=8 nnz=3 {1:3, 3:5, 5:5}
}

// ExampleIterator walks a window's stored entries in local coordinates.
func ExampleIterator() {
	base, _ := vec.SparseOf(12, []vec.Entry{
		{Index: 2, Value: 0.5}, {Index: 4, Value: 2}, {Index: 7, Value: -3}, {Index: 10, Value: 8},
	})
	sv, _ := view.New(base, 3, 6) // globals 3..8

	for it, end := sv.Begin(), sv.End(); !it.Equal(end); it.Next() {
		fmt.Printf("local %d = %g\n", it.Index(), it.Value())
	}
	// Output:
	// local 1 = 2
	// local 4 = -3
}
