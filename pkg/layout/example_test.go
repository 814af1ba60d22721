package layout_test

import (
	"fmt"

	"github.com/surfplot/surfplot/pkg/layout"
	"github.com/surfplot/surfplot/pkg/surface"
)

func ExampleCompute() {
	l, _ := layout.Compute(true, true, layout.Grid, []surface.View{surface.Lateral, surface.Medial})
	fmt.Println("Shape:", l.Shape())
	fmt.Println("Views:", l.Views)
	fmt.Println("Hemispheres:", l.Hemispheres)
	// Output:
	// Shape: [2 2]
	// Views: [[lateral medial] [medial lateral]]
	// Hemispheres: [[left right] [left right]]
}

func ExampleLayout_Flip() {
	l, _ := layout.Compute(true, true, layout.Row, []surface.View{surface.Lateral})
	fmt.Println("Before:", l.Views[0], l.Hemispheres[0])
	f := l.Flip()
	fmt.Println("After: ", f.Views[0], f.Hemispheres[0])
	// Output:
	// Before: [lateral medial] [left right]
	// After:  [medial lateral] [right left]
}
