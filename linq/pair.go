package linq

import "github.com/golinq/go-query-utils/seqs"

// Pair holds two values of possibly different types.
// It is the element type produced by [Zip].
//
// Pair aliases [seqs.Pair], so values produced by either package's Zip are
// interchangeable.
type Pair[A, B any] = seqs.Pair[A, B]
