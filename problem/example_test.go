package problem_test

import (
	"fmt"

	"github.com/katalvlaran/beehive/problem"
)

func ExampleNewCities() {
	c, err := problem.NewCities(5)
	if err != nil {
		fmt.Println(err)
		return
	}
	paths, _ := c.NumberOfPossiblePaths()
	fmt.Println(c.Symbols())
	fmt.Println(paths, c.ShortestPathLength())
	fmt.Println(c.Distance('A', 'C'), c.Distance('C', 'A'))
	// Output:
	// [A B C D E]
	// 120 4
	// 2 3
}

func ExampleNumberOfPossiblePaths() {
	n, _ := problem.NumberOfPossiblePaths(20)
	fmt.Println(n)
	_, err := problem.NumberOfPossiblePaths(21)
	fmt.Println(err)
	// Output:
	// 2432902008176640000
	// problem: arithmetic result out of range
}
