package linq_test

import (
	"fmt"
	"strconv"

	"github.com/golinq/go-query-utils/linq"
)

func ExampleNew() {
	q := linq.New(1, 2, 3, 4, 5)
	fmt.Println(q.Count(), q.Sum(func(n int) float64 { return float64(n) }))
	// Output: 5 15
}

func ExampleQuery_Where() {
	result := linq.New(1, 2, 3, 4, 5, 6).
		Where(func(n int) bool { return n%2 == 0 }).
		ToSlice()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleQuery_OrderBy() {
	result := linq.New(5, 3, 1, 4, 2).
		OrderBy(func(n int) float64 { return float64(n) }).
		ToSlice()
	fmt.Println(result)
	// Output: [1 2 3 4 5]
}

func ExampleQuery_Distinct() {
	result := linq.New(1, 2, 2, 3, 1).Distinct().ToSlice()
	fmt.Println(result)
	// Output: [1 2 3]
}

func ExampleQuery_Partition() {
	evens, odds := linq.New(1, 2, 3, 4, 5).
		Partition(func(n int) bool { return n%2 == 0 })
	fmt.Println(evens.ToSlice(), odds.ToSlice())
	// Output: [2 4] [1 3 5]
}

func ExampleSelect() {
	doubled := linq.Select(linq.New(1, 2, 3), func(n int) string {
		return strconv.Itoa(n * 2)
	})
	fmt.Println(doubled.ToSlice())
	// Output: [2 4 6]
}

func ExampleGroupBy() {
	type person struct {
		Name string
		Age  int
	}
	people := linq.New(
		person{"Alice", 30},
		person{"Bob", 25},
		person{"Alice", 28},
	)
	byName := linq.GroupBy(people, func(p person) string { return p.Name })
	ages := linq.Select(byName["Alice"], func(p person) int { return p.Age })
	fmt.Println(ages.ToSlice())
	// Output: [30 28]
}

func ExampleQuery_chaining() {
	result := linq.New(1, 2, 3, 4, 5, 6, 7, 8, 9, 10).
		Where(func(n int) bool { return n%2 == 0 }).
		OrderByDescending(func(n int) float64 { return float64(n) }).
		Take(3).
		ToSlice()
	fmt.Println(result)
	// Output: [10 8 6]
}
