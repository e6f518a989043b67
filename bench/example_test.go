package bench_test

import (
	"fmt"

	"github.com/katalvlaran/bintree/bench"
)

// ExampleMedian shows the odd and even cases.
func ExampleMedian() {
	fmt.Println(bench.Median([]float64{3, 1, 2}))
	fmt.Println(bench.Median([]float64{4, 1, 3, 2}))
	// Output:
	// 2
	// 2.5
}

// ExampleMeasureSeries prints the heights and node counts of a series;
// timings vary between runs.
func ExampleMeasureSeries() {
	series, err := bench.MeasureSeries([]int{1, 2, 3}, 3, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range series {
		fmt.Println(s.Height, s.Nodes)
	}
	// Output:
	// 1 1
	// 2 3
	// 3 7
}
