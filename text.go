package bnb

import (
	"regexp"
	"strings"
)

// Text matches the given text exactly, case sensitively, and yields it.
// On failure the expectation is the text itself; wrap with Desc to name
// tokens more politely.
func Text(text string) Parser[string] {
	expected := []string{text}
	return NewParser(func(ctx Context) Reply[string] {
		start := ctx.Pos.Offset
		end := start + len(text)
		if end <= len(ctx.Input) && ctx.Input[start:end] == text {
			return Succeed(ctx, end, text)
		}
		return FailAt[string](ctx, start, expected)
	})
}

// Match matches the regular expression anchored at the current position and
// yields the matched text. Anchoring matters: an unanchored search would
// silently skip input. Capture groups are ignored; only the whole match is
// returned. Flags are Go's usual inline ones ((?i), (?s), (?m)); a pattern
// the regexp engine rejects fails at grammar definition time inside
// regexp.MustCompile, before Match is ever reached.
//
// The expectation on failure is the pattern source, so regex-based tokens
// usually want a Desc.
func Match(re *regexp.Regexp) Parser[string] {
	anchored := anchor(re)
	expected := []string{re.String()}
	return NewParser(func(ctx Context) Reply[string] {
		start := ctx.Pos.Offset
		loc := anchored.FindStringIndex(ctx.Input[start:])
		if loc == nil {
			return FailAt[string](ctx, start, expected)
		}
		end := start + loc[1]
		return Succeed(ctx, end, ctx.Input[start:end])
	})
}

// anchor pins re to match at the start of its input. The original pattern
// is grouped so alternations keep their meaning.
func anchor(re *regexp.Regexp) *regexp.Regexp {
	src := re.String()
	if strings.HasPrefix(src, `\A`) {
		return re
	}
	return regexp.MustCompile(`\A(?:` + src + `)`)
}
