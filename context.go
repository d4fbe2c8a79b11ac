package bnb

// Context pairs the input text with the position a parsing action should
// start from. Contexts are immutable values: combinators thread new ones
// forward with WithPosition, and a Context never outlives the Parse call
// that created it.
type Context struct {
	Input string
	Pos   Position
}

// WithPosition returns a copy of the context resumed at pos.
func (ctx Context) WithPosition(pos Position) Context {
	ctx.Pos = pos
	return ctx
}

// Succeed builds the successful reply of an action that consumed
// input[ctx.Pos.Offset:to], yielding value. The reply carries no failure
// bookkeeping of its own.
func Succeed[A any](ctx Context, to int, value A) Reply[A] {
	return Reply[A]{
		OK:       true,
		Value:    value,
		Pos:      ctx.Pos.advance(ctx.Input, to),
		Furthest: beforeInput,
	}
}

// FailAt builds the failed reply of an action that could not match at the
// byte offset at, naming what it expected there.
func FailAt[A any](ctx Context, at int, expected []string) Reply[A] {
	return Reply[A]{
		Furthest: ctx.Pos.advance(ctx.Input, at),
		Expected: expected,
	}
}
