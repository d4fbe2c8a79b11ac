package bnb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatRange(t *testing.T) {
	a23 := Repeat(Text("a"), 2, 3)

	data := []struct {
		text   string
		ok     bool
		values []string
	}{
		{"", false, nil},
		{"a", false, nil},
		{"aa", true, []string{"a", "a"}},
		{"aaa", true, []string{"a", "a", "a"}},
		// The fourth "a" is beyond max and stays unconsumed, so the
		// full-consumption anchor rejects it.
		{"aaaa", false, nil},
	}

	for _, d := range data {
		value, err := a23.Parse(d.text)
		if !d.ok {
			assert.Error(t, err, "Parse(%q)", d.text)
			continue
		}
		require.NoError(t, err, "Parse(%q)", d.text)
		assert.Equal(t, d.values, value, "Parse(%q)", d.text)
	}
}

func TestMany0(t *testing.T) {
	as := Many0(Text("a"))

	value, err := as.Parse("")
	require.NoError(t, err)
	assert.Empty(t, value)

	value, err = as.Parse("aaaa")
	require.NoError(t, err)
	assert.Len(t, value, 4)
}

func TestMany1(t *testing.T) {
	as := Many1(Text("a"))

	_, err := as.Parse("")
	require.Error(t, err)

	value, err := as.Parse("aa")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, value)
}

// A short repetition fails outright instead of succeeding with fewer than
// min values.
func TestRepeatTooFew(t *testing.T) {
	_, err := Repeat(Text("a"), 2, 4).Parse("a")
	require.Error(t, err)
}

// The repetition is greedy: it never gives values back to let the rest of
// the sequence match.
func TestRepeatGreedy(t *testing.T) {
	p := And(Repeat(Text("a"), 1, 4), Text("a!"))

	_, err := p.Parse("aa!")
	require.Error(t, err)
}

func TestRepeatInvalidRange(t *testing.T) {
	assert.Panics(t, func() { Repeat(Text("a"), 3, 2) })
	assert.Panics(t, func() { Repeat(Text("a"), -1, 2) })
	assert.Panics(t, func() { SepBy(Text("a"), Text(","), 2, 1) })
}

// A repetition over a parser that can succeed without consuming input is a
// grammar bug: it panics rather than spinning or silently matching short.
func TestRepeatZeroWidthGuard(t *testing.T) {
	assert.Panics(t, func() { Repeat(Text(""), 0, 5).MustParse("bread") })
	assert.Panics(t, func() { Many1(Text("")).MustParse("x") })
	assert.Panics(t, func() { Many0(OK("v")).MustParse("x") })
}

func TestSepBy(t *testing.T) {
	list := SepBy(Text("a"), Text(","), 1, 999)

	value, err := list.Parse("a,a,a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a", "a"}, value)

	value, err = list.Parse("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, value)

	_, err = list.Parse("")
	require.Error(t, err)

	// A trailing separator leaves the separator unconsumed.
	_, err = list.Parse("a,a,")
	require.Error(t, err)
}

func TestSepByOptional(t *testing.T) {
	list := SepBy(Text("a"), Text(","), 0, 999)

	value, err := list.Parse("")
	require.NoError(t, err)
	assert.Empty(t, value)

	value, err = list.Parse("a,a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, value)
}

func TestSepByMax(t *testing.T) {
	pair := SepBy(Text("a"), Text(","), 1, 2)

	value, err := pair.Parse("a,a")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a"}, value)

	_, err = pair.Parse("a,a,a")
	require.Error(t, err)
}
