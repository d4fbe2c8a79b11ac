package bnb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test if advancing across text chunks counts lines and columns correctly.
func TestPositionAdvance(t *testing.T) {
	data := []struct {
		text    string
		inputs  []int
		outputs []Position
	}{
		{"", []int{0}, []Position{{0, 1, 1}}},
		{"A\n", []int{1, 2}, []Position{
			{1, 1, 2},
			{2, 2, 1},
		}},
		{"\nAA\nA\n\n", []int{1, 3, 4, 5, 6, 7}, []Position{
			{1, 2, 1},
			{3, 2, 3},
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 5, 1},
		}},
	}

	for _, d := range data {
		pos := Position{Offset: 0, Line: 1, Column: 1}
		for i := range d.inputs {
			pos = pos.advance(d.text, d.inputs[i])
			assert.Equal(t, d.outputs[i], pos, "%q.advance(%d)", d.text, d.inputs[i])
		}
	}
}

func TestPositionAdvanceMultibyte(t *testing.T) {
	// é is two bytes, 日 is three; columns count runes, offsets count bytes.
	text := "é日\nx"
	pos := Position{Offset: 0, Line: 1, Column: 1}

	pos = pos.advance(text, 5)
	assert.Equal(t, Position{Offset: 5, Line: 1, Column: 3}, pos)

	pos = pos.advance(text, 7)
	assert.Equal(t, Position{Offset: 7, Line: 2, Column: 2}, pos)
}

func TestPositionAdvanceEmptyChunk(t *testing.T) {
	pos := Position{Offset: 3, Line: 2, Column: 1}
	assert.Equal(t, pos, pos.advance("ab\ncd", 3))
}

func TestPositionString(t *testing.T) {
	pos := Position{Offset: 4, Line: 2, Column: 2}
	assert.Equal(t, "2:2+4", pos.String())
}
