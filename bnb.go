// Package bnb implements parser combinators for recursive descent parsing.
//
// Rather than generating a parser from a grammar file, callers build one by
// composing small Parser values with combinator functions, then run the
// composed Parser against an input string. Lexing and parsing are unified:
// the same combinators describe both tokens and structure.
//
// Overlook
//
// A grammar is assembled from primitive parsers:
//
//	Text(text), Match(regexp)
//	OK(value), Fail(expected...), EOF, Location
//	Lazy(thunk)
//
// and grown with combinators:
//
//	And(p, q), Next(p, q), Skip(p, q), All(p, ...)
//	p.Or(q), Choice(p, ...)
//	Chain(p, fn), Map(p, fn)
//	Repeat(p, min, max), Many0(p), Many1(p), SepBy(p, sep, min, max)
//	Wrap(before, p, after), Trim(p, ws)
//	p.Desc(expected...), NodeOf(p, name)
//
// Finally the grammar is driven by:
//
//	value, err := p.Parse(text)
//	value := p.MustParse(text)
//
// Parse succeeds only when the whole input is consumed; trailing text is an
// ordinary parse failure, so a parser that greedily matches a prefix is
// reported like any other mismatch.
//
// Error reporting
//
// A parse failure is a value, never a panic, so alternatives can backtrack
// over it cheaply. Every parser invocation records the furthest position at
// which anything failed, together with the set of descriptions expected
// there. That bookkeeping survives backtracking, which is what makes the
// final error message point at the real trouble spot instead of the start
// of the last alternative tried. Failures surface as *ParseError:
//
//	parse error at line 2 column 5: expected ")", "end of input"
//
// Common mistakes
//
// Zero-width repetition:
//
// A parser that can succeed without consuming input must not be nested
// inside Repeat, Many0, Many1 or SepBy, because it would loop forever. The
// repetition combinators detect the situation and panic, since it is a bug
// in the grammar rather than a property of the input.
//
// Recursive rules:
//
// Mutually recursive rules must break the definition cycle with Lazy, which
// defers looking up the referenced Parser until the first parse. A left
// recursive rule still never terminates; recursive descent expands the rule
// before consuming input, so recursion must be guarded by a consuming
// parser.
package bnb

import (
	"fmt"
	"strings"
)

// Parser matches some prefix of the input and produces a value of type A.
// A Parser carries no per-parse state: it may be shared between goroutines
// and reused across any number of Parse calls.
type Parser[A any] struct {
	action func(Context) Reply[A]
}

// NewParser wraps a raw parsing action. Most grammars never need this; it
// is the escape hatch for parsers that cannot be expressed with the
// provided combinators.
func NewParser[A any](action func(Context) Reply[A]) Parser[A] {
	return Parser[A]{action: action}
}

// ParseError describes a failed parse: the furthest position reached and
// the sorted, deduplicated descriptions of what was expected there.
type ParseError struct {
	Pos      Position
	Expected []string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d column %d: expected %s",
		e.Pos.Line, e.Pos.Column, strings.Join(e.Expected, ", "))
}

// Parse runs the parser against text, requiring it to consume the whole
// input. On failure the returned error is a *ParseError.
func (p Parser[A]) Parse(text string) (A, error) {
	ctx := Context{
		Input: text,
		Pos:   Position{Offset: 0, Line: 1, Column: 1},
	}
	r := Skip(p, EOF).action(ctx)
	if r.OK {
		return r.Value, nil
	}
	var zero A
	return zero, &ParseError{Pos: r.Furthest, Expected: unionExpected(r.Expected, nil)}
}

// MustParse is like Parse but panics on failure. Intended for inputs known
// to be well formed, such as tests and fixtures.
func (p Parser[A]) MustParse(text string) A {
	value, err := p.Parse(text)
	if err != nil {
		panic(err)
	}
	return value
}
