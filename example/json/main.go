// Command json parses JSON from stdin and prints the decoded value.
//
// It exists to show a realistic grammar: recursion through Lazy, separated
// lists, token trimming and friendly error names.
package main

import (
	"fmt"
	"io"
	"math"
	"os"

	bnb "github.com/wavebeem/bread-n-butter"
	"github.com/wavebeem/bread-n-butter/bnbutil"
)

type member struct {
	key   string
	value any
}

func jsonParser() bnb.Parser[any] {
	var value bnb.Parser[any]

	lazyValue := bnb.Lazy(func() bnb.Parser[any] { return value })
	comma := bnbutil.Lexeme(bnb.Text(","))

	null := bnb.Map(bnb.Text("null"), func(string) any { return nil })
	boolean := bnb.Map(bnb.Text("true"), func(string) any { return true }).
		Or(bnb.Map(bnb.Text("false"), func(string) any { return false }))
	number := bnb.Map(bnbutil.Float, func(f float64) any { return f })
	str := bnb.Map(bnbutil.QuotedString, func(s string) any { return s })

	array := bnb.Map(
		bnb.Wrap(
			bnbutil.Lexeme(bnb.Text("[")),
			bnb.SepBy(lazyValue, comma, 0, math.MaxInt),
			bnbutil.Lexeme(bnb.Text("]"))),
		func(values []any) any { return values })

	pair := bnb.Map(
		bnb.And(
			bnb.Skip(bnbutil.Lexeme(bnbutil.QuotedString), bnbutil.Lexeme(bnb.Text(":"))),
			lazyValue),
		func(p bnb.Pair[string, any]) member {
			return member{key: p.First, value: p.Second}
		})

	object := bnb.Map(
		bnb.Wrap(
			bnbutil.Lexeme(bnb.Text("{")),
			bnb.SepBy(pair, comma, 0, math.MaxInt),
			bnbutil.Lexeme(bnb.Text("}"))),
		func(members []member) any {
			obj := make(map[string]any, len(members))
			for _, m := range members {
				obj[m.key] = m.value
			}
			return obj
		})

	value = bnbutil.Lexeme(bnb.Choice(object, array, str, number, boolean, null))
	return value
}

func main() {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	value, err := jsonParser().Parse(string(src))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%#v\n", value)
}
