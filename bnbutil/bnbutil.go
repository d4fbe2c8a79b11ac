// Package bnbutil provides prebuilt parsers for common lexical shapes.
//
// Following categories of parsers are provided by this package:
//
//	Whitespace (Whitespace, OptWhitespace)
//	Numbers (Digits, Int, Float)
//	Words (Identifier)
//	Strings (QuotedString)
//	Token helpers (Lexeme, Parenthesized)
//
// Everything here is ordinary bnb surface; the package exists so grammars
// do not keep restating the same regular expressions.
package bnbutil

import (
	"regexp"
	"strconv"

	bnb "github.com/wavebeem/bread-n-butter"
)

var (
	// Whitespace matches one or more blank characters.
	Whitespace = bnb.Match(regexp.MustCompile(`\s+`)).Desc("whitespace")

	// OptWhitespace matches any run of blank characters, including none.
	// Do not nest it directly inside a repetition; it can match nothing.
	OptWhitespace = bnb.Match(regexp.MustCompile(`\s*`)).Desc("whitespace")

	// Digits matches a run of decimal digits and yields it as text.
	Digits = bnb.Match(regexp.MustCompile(`[0-9]+`)).Desc("digits")

	// Identifier matches a letter or underscore followed by letters,
	// digits or underscores.
	Identifier = bnb.Match(regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)).Desc("identifier")

	// Int matches an optionally signed decimal integer.
	Int = bnb.Chain(
		bnb.Match(regexp.MustCompile(`[-+]?[0-9]+`)),
		func(text string) bnb.Parser[int64] {
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return bnb.Fail[int64]("integer")
			}
			return bnb.OK(n)
		}).Desc("integer")

	// Float matches a decimal number with optional fraction and exponent.
	Float = bnb.Chain(
		bnb.Match(regexp.MustCompile(`[-+]?[0-9]+(?:\.[0-9]+)?(?:[eE][-+]?[0-9]+)?`)),
		func(text string) bnb.Parser[float64] {
			f, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return bnb.Fail[float64]("number")
			}
			return bnb.OK(f)
		}).Desc("number")

	// QuotedString matches a double-quoted string with Go escape
	// sequences and yields the unquoted contents.
	QuotedString = bnb.Chain(
		bnb.Match(regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)),
		func(text string) bnb.Parser[string] {
			s, err := strconv.Unquote(text)
			if err != nil {
				return bnb.Fail[string]("string")
			}
			return bnb.OK(s)
		}).Desc("string")
)

// Lexeme matches p with surrounding whitespace discarded.
func Lexeme[A any](p bnb.Parser[A]) bnb.Parser[A] {
	return bnb.Trim(p, OptWhitespace)
}

// Parenthesized matches p between "(" and ")" lexemes.
func Parenthesized[A any](p bnb.Parser[A]) bnb.Parser[A] {
	return bnb.Wrap(Lexeme(bnb.Text("(")), p, Lexeme(bnb.Text(")")))
}
