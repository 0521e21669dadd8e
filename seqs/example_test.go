package seqs_test

import (
	"fmt"

	"github.com/golinq/go-query-utils/seqs"
)

func ExampleWhere() {
	evens := seqs.Where([]int{1, 2, 3, 4, 5, 6}, func(n int) bool { return n%2 == 0 })
	fmt.Println(evens)
	// Output: [2 4 6]
}

func ExampleSelect() {
	squares := seqs.Select([]int{1, 2, 3}, func(n int) int { return n * n })
	fmt.Println(squares)
	// Output: [1 4 9]
}

func ExampleDistinct() {
	fmt.Println(seqs.Distinct([]int{1, 2, 2, 3, 1}))
	// Output: [1 2 3]
}

func ExampleGroupBy() {
	words := []string{"apple", "banana", "avocado", "blueberry"}
	groups := seqs.GroupBy(words, func(w string) string { return w[:1] })
	fmt.Println(groups["a"])
	fmt.Println(groups["b"])
	// Output:
	// [apple avocado]
	// [banana blueberry]
}

func ExamplePathValue() {
	row := map[string]any{
		"user": map[string]any{
			"address": map[string]any{"city": "London"},
		},
	}
	fmt.Println(seqs.PathValue(row, "user.address.city"))
	fmt.Println(seqs.PathValue(row, "user.address.country", "unknown"))
	// Output:
	// London
	// unknown
}
