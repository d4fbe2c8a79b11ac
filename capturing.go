package bnb

// Node wraps a parsed value with a name and the span it was parsed from.
// End is exclusive: one past the last consumed byte.
type Node[A any] struct {
	Name  string
	Value A
	Start Position
	End   Position
}

// Desc matches p, but on failure reports the given expectations instead of
// whatever p accumulated. Use it to give regex tokens readable names:
//
//	number := Match(regexp.MustCompile(`[0-9]+`)).Desc("number")
//
// Success passes through untouched.
func (p Parser[A]) Desc(expected ...string) Parser[A] {
	return NewParser(func(ctx Context) Reply[A] {
		r := p.action(ctx)
		if !r.OK {
			r.Expected = expected
		}
		return r
	})
}

// NodeOf matches p and wraps its value with name and the start and end
// positions of the match, for consumers that attach source locations to
// their syntax trees. It is a package-level function rather than a method
// because a method returning Parser[Node[A]] is rejected by the Go
// compiler as an instantiation cycle.
func NodeOf[A any](p Parser[A], name string) Parser[Node[A]] {
	return NewParser(func(ctx Context) Reply[Node[A]] {
		r := p.action(ctx)
		if !r.OK {
			return failed[Node[A]](r)
		}
		return Reply[Node[A]]{
			OK: true,
			Value: Node[A]{
				Name:  name,
				Value: r.Value,
				Start: ctx.Pos,
				End:   r.Pos,
			},
			Pos:      r.Pos,
			Furthest: r.Furthest,
			Expected: r.Expected,
		}
	})
}
