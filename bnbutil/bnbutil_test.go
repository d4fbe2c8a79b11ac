package bnbutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bnb "github.com/wavebeem/bread-n-butter"
)

func TestInt(t *testing.T) {
	data := []struct {
		text  string
		ok    bool
		value int64
	}{
		{"0", true, 0},
		{"42", true, 42},
		{"-7", true, -7},
		{"+13", true, 13},
		{"9223372036854775807", true, 9223372036854775807},
		// Overflow is a failure, not a wrapped value.
		{"9223372036854775808", false, 0},
		{"x", false, 0},
		{"", false, 0},
	}

	for _, d := range data {
		value, err := Int.Parse(d.text)
		if !d.ok {
			assert.Error(t, err, "Int.Parse(%q)", d.text)
			continue
		}
		require.NoError(t, err, "Int.Parse(%q)", d.text)
		assert.Equal(t, d.value, value, "Int.Parse(%q)", d.text)
	}
}

func TestFloat(t *testing.T) {
	value, err := Float.Parse("-1.5e3")
	require.NoError(t, err)
	assert.Equal(t, -1500.0, value)

	value, err = Float.Parse("2")
	require.NoError(t, err)
	assert.Equal(t, 2.0, value)

	_, err = Float.Parse(".5")
	assert.Error(t, err)
}

func TestIdentifier(t *testing.T) {
	value, err := Identifier.Parse("_tmp1")
	require.NoError(t, err)
	assert.Equal(t, "_tmp1", value)

	_, err = Identifier.Parse("1tmp")
	assert.Error(t, err)
}

func TestQuotedString(t *testing.T) {
	value, err := QuotedString.Parse(`"a\n\"b\""`)
	require.NoError(t, err)
	assert.Equal(t, "a\n\"b\"", value)

	_, err = QuotedString.Parse(`"unterminated`)
	assert.Error(t, err)
}

func TestLexeme(t *testing.T) {
	value, err := Lexeme(Int).Parse("  42\t")
	require.NoError(t, err)
	assert.Equal(t, int64(42), value)
}

func TestParenthesized(t *testing.T) {
	value, err := Parenthesized(Lexeme(Identifier)).Parse("( abc )")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
}

func TestDescNames(t *testing.T) {
	_, err := Int.Parse("?")
	require.Error(t, err)

	var perr *bnb.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, []string{"integer"}, perr.Expected)
}
