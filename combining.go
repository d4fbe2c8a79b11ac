package bnb

// Pair holds the two values matched by And, in input order.
type Pair[A, B any] struct {
	First  A
	Second B
}

// And matches p then q, yielding both values as a Pair. It fails as soon
// as either constituent fails. Go methods cannot introduce the second type
// parameter, so sequencing is a free function; longer heterogeneous
// sequences nest Pairs, homogeneous ones read better with All.
func And[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return Chain(p, func(first A) Parser[Pair[A, B]] {
		return Map(q, func(second B) Pair[A, B] {
			return Pair[A, B]{First: first, Second: second}
		})
	})
}

// Next matches p then q, keeping only q's value.
func Next[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Chain(p, func(A) Parser[B] { return q })
}

// Skip matches p then q, keeping only p's value.
func Skip[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Chain(p, func(first A) Parser[A] {
		return Map(q, func(B) A { return first })
	})
}

// All matches every parser in order, collecting the values. With no
// arguments it matches nothing and yields an empty slice.
func All[A any](parsers ...Parser[A]) Parser[[]A] {
	return NewParser(func(ctx Context) Reply[[]A] {
		values := make([]A, 0, len(parsers))
		furthest, expected := beforeInput, []string(nil)
		for _, p := range parsers {
			r := p.action(ctx)
			furthest, expected = furthestOf(furthest, expected, r.Furthest, r.Expected)
			if !r.OK {
				return Reply[[]A]{Furthest: furthest, Expected: expected}
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

// Or matches p, or q if p fails. q starts from the same position p did;
// whatever p consumed before failing is backtracked, though its failure
// bookkeeping is kept for error reporting.
func (p Parser[A]) Or(q Parser[A]) Parser[A] {
	return NewParser(func(ctx Context) Reply[A] {
		a := p.action(ctx)
		if a.OK {
			return a
		}
		return merge(a, q.action(ctx))
	})
}

// Choice matches the first of the given parsers that succeeds, searching
// in order. It is the n-ary Or.
func Choice[A any](first Parser[A], rest ...Parser[A]) Parser[A] {
	p := first
	for _, q := range rest {
		p = p.Or(q)
	}
	return p
}

// Chain matches p, then matches the parser fn builds from p's value,
// yielding the second value. This is the monadic bind: the shape of the
// rest of the grammar may depend on what was just parsed.
func Chain[A, B any](p Parser[A], fn func(A) Parser[B]) Parser[B] {
	return NewParser(func(ctx Context) Reply[B] {
		a := p.action(ctx)
		if !a.OK {
			return failed[B](a)
		}
		b := fn(a.Value).action(ctx.WithPosition(a.Pos))
		return merge(a, b)
	})
}

// Map matches p and yields fn applied to its value.
func Map[A, B any](p Parser[A], fn func(A) B) Parser[B] {
	return Chain(p, func(value A) Parser[B] {
		return OK(fn(value))
	})
}

// Wrap matches before, p, then after, keeping only p's value.
func Wrap[B, A, C any](before Parser[B], p Parser[A], after Parser[C]) Parser[A] {
	return Skip(Next(before, p), after)
}

// Trim matches p surrounded on both sides by ws, keeping only p's value.
func Trim[A, B any](p Parser[A], ws Parser[B]) Parser[A] {
	return Wrap(ws, p, ws)
}

// furthestOf combines two pieces of failure bookkeeping the same way merge
// does, for combinators that loop rather than pair replies.
func furthestOf(aPos Position, aExp []string, bPos Position, bExp []string) (Position, []string) {
	switch {
	case aPos.Offset > bPos.Offset:
		return aPos, aExp
	case aPos.Offset == bPos.Offset:
		return aPos, unionExpected(aExp, bExp)
	default:
		return bPos, bExp
	}
}
