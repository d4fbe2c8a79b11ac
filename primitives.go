package bnb

import "sync"

// OK succeeds with value, consuming nothing.
func OK[A any](value A) Parser[A] {
	return NewParser(func(ctx Context) Reply[A] {
		return Succeed(ctx, ctx.Pos.Offset, value)
	})
}

// Fail fails at the current position with the given expectations,
// consuming nothing.
func Fail[A any](expected ...string) Parser[A] {
	return NewParser(func(ctx Context) Reply[A] {
		return FailAt[A](ctx, ctx.Pos.Offset, expected)
	})
}

// EOF matches the end of input, consuming nothing. Parse appends it
// automatically; it is exported for grammars that want an early anchor,
// such as the end of a REPL line.
var EOF = NewParser(func(ctx Context) Reply[struct{}] {
	if ctx.Pos.Offset < len(ctx.Input) {
		return FailAt[struct{}](ctx, ctx.Pos.Offset, []string{"end of input"})
	}
	return Succeed(ctx, ctx.Pos.Offset, struct{}{})
})

// Location yields the current position, consuming nothing.
var Location = NewParser(func(ctx Context) Reply[Position] {
	return Succeed(ctx, ctx.Pos.Offset, ctx.Pos)
})

// Lazy defers obtaining a parser until the first parse, so mutually
// recursive rules defined as package or local variables can reference each
// other before every definition has run. The thunk is invoked once; the
// result is cached for all later parses and all goroutines.
func Lazy[A any](thunk func() Parser[A]) Parser[A] {
	var once sync.Once
	var resolved Parser[A]
	return NewParser(func(ctx Context) Reply[A] {
		once.Do(func() {
			resolved = thunk()
		})
		return resolved.action(ctx)
	})
}
