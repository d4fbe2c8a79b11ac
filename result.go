package bnb

import "sort"

// Reply is the outcome of one parsing action. It is a tagged union in the
// Go style: when OK is true the action matched, Value holds its result and
// Pos is the position to resume from; when OK is false only the failure
// bookkeeping below is meaningful.
//
// Furthest and Expected are maintained on success as well as failure. They
// record the rightmost position at which any constituent parser failed so
// far, and the descriptions expected there. An alternative that failed deep
// into the input must keep influencing the error message even after another
// alternative succeeds, because the overall parse may still fail later.
type Reply[A any] struct {
	OK       bool
	Value    A
	Pos      Position
	Furthest Position
	Expected []string
}

// merge folds the failure bookkeeping of an earlier reply a into a newer
// reply b. The returned reply keeps b's tag, value and position, but its
// furthest/expected reflect both attempts: the strictly further failure
// wins outright, and a tie unions the expectations. Every combinator that
// runs more than one action per invocation must merge, or error information
// from discarded attempts is lost.
func merge[A, B any](a Reply[A], b Reply[B]) Reply[B] {
	switch {
	case a.Furthest.Offset > b.Furthest.Offset:
		b.Furthest = a.Furthest
		b.Expected = a.Expected
	case a.Furthest.Offset == b.Furthest.Offset:
		b.Expected = unionExpected(a.Expected, b.Expected)
	}
	return b
}

// failed rewraps the bookkeeping of a failed reply under another value
// type, for combinators that abort before producing a value.
func failed[B, A any](a Reply[A]) Reply[B] {
	return Reply[B]{Furthest: a.Furthest, Expected: a.Expected}
}

// unionExpected returns the sorted, deduplicated union of two expectation
// lists. Its inputs are never modified; they may be shared by live replies.
func unionExpected(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	union := make([]string, 0, len(a)+len(b))
	for _, lists := range [2][]string{a, b} {
		for _, e := range lists {
			if !seen[e] {
				seen[e] = true
				union = append(union, e)
			}
		}
	}
	sort.Strings(union)
	return union
}
