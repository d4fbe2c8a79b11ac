package bnb

import "fmt"

// Position is a location in the input: a zero-based byte offset plus the
// one-based line and column numbers humans expect in error messages.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d+%d", pos.Line, pos.Column, pos.Offset)
}

// beforeInput sits in front of every real position, so that any recorded
// failure compares further than it.
var beforeInput = Position{Offset: -1, Line: -1, Column: -1}

// advance returns the position reached after consuming input[pos.Offset:to].
// A newline starts a fresh line; any other rune widens the column. Offsets
// grow by encoded rune length, keeping them valid byte indexes into input.
// Advancing by an empty chunk returns pos unchanged.
func (pos Position) advance(input string, to int) Position {
	if to == pos.Offset {
		return pos
	}
	for _, r := range input[pos.Offset:to] {
		if r == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}
	pos.Offset = to
	return pos
}
