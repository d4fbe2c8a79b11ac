package bnb

import "math"

// Repeat matches p between min and max times, yielding the values in
// order. The range must satisfy 0 <= min <= max; anything else is a bug in
// the grammar and panics at construction time. Matching stops at the first
// failure, whose bookkeeping is kept, or once max values are collected;
// fewer than min matches fail the whole repetition.
//
// A successful iteration that consumes nothing would repeat forever, so it
// panics instead of looping (see the package comment on zero-width
// repetition).
//
// Repeat, Many0 and Many1 are package-level functions rather than methods
// because a method returning Parser[[]A] is rejected by the Go compiler as
// an instantiation cycle.
func Repeat[A any](p Parser[A], min, max int) Parser[[]A] {
	if min < 0 || min > max {
		panic(errorInvalidRange(min, max))
	}
	return NewParser(func(ctx Context) Reply[[]A] {
		values := []A{}
		furthest, expected := beforeInput, []string(nil)
		for len(values) < max {
			r := p.action(ctx)
			furthest, expected = furthestOf(furthest, expected, r.Furthest, r.Expected)
			if !r.OK {
				if len(values) < min {
					return Reply[[]A]{Furthest: furthest, Expected: expected}
				}
				break
			}
			if r.Pos.Offset == ctx.Pos.Offset {
				panic(errorZeroWidthRepeat)
			}
			values = append(values, r.Value)
			ctx = ctx.WithPosition(r.Pos)
		}
		return Reply[[]A]{
			OK:       true,
			Value:    values,
			Pos:      ctx.Pos,
			Furthest: furthest,
			Expected: expected,
		}
	})
}

// Many0 matches p zero or more times.
func Many0[A any](p Parser[A]) Parser[[]A] {
	return Repeat(p, 0, math.MaxInt)
}

// Many1 matches p one or more times.
func Many1[A any](p Parser[A]) Parser[[]A] {
	return Repeat(p, 1, math.MaxInt)
}

// SepBy matches between min and max occurrences of p separated by sep,
// yielding p's values and discarding the separators. Like Repeat it panics
// on a range outside 0 <= min <= max. Unbounded repetitions pass
// math.MaxInt for max.
func SepBy[A, B any](p Parser[A], sep Parser[B], min, max int) Parser[[]A] {
	if min < 0 || min > max {
		panic(errorInvalidRange(min, max))
	}
	if max == 0 {
		return OK([]A{})
	}
	if min == 0 {
		return SepBy(p, sep, 1, max).Or(OK([]A{}))
	}
	rest := Repeat(Next(sep, p), min-1, upperLess(max))
	return Chain(p, func(first A) Parser[[]A] {
		return Map(rest, func(values []A) []A {
			return append([]A{first}, values...)
		})
	})
}

// upperLess lowers a repetition bound by one without wrapping the
// unbounded sentinel.
func upperLess(max int) int {
	if max == math.MaxInt {
		return max
	}
	return max - 1
}
