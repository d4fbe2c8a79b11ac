// Command calc is a line-oriented arithmetic calculator. It reads one
// expression per line from stdin and prints its value, handling the usual
// precedence of + - * / and parentheses.
package main

import (
	"bufio"
	"fmt"
	"os"

	bnb "github.com/wavebeem/bread-n-butter"
	"github.com/wavebeem/bread-n-butter/bnbutil"
)

// One step of a left-associative operator chain.
type step struct {
	op    string
	right float64
}

func operator(symbols ...string) bnb.Parser[string] {
	first := bnbutil.Lexeme(bnb.Text(symbols[0]))
	rest := make([]bnb.Parser[string], 0, len(symbols)-1)
	for _, sym := range symbols[1:] {
		rest = append(rest, bnbutil.Lexeme(bnb.Text(sym)))
	}
	return bnb.Choice(first, rest...)
}

// chain builds term (op term)* folded left to right.
func chain(term bnb.Parser[float64], op bnb.Parser[string]) bnb.Parser[float64] {
	steps := bnb.Many0(bnb.Map(bnb.And(op, term), func(p bnb.Pair[string, float64]) step {
		return step{op: p.First, right: p.Second}
	}))

	return bnb.Map(bnb.And(term, steps), func(p bnb.Pair[float64, []step]) float64 {
		value := p.First
		for _, s := range p.Second {
			switch s.op {
			case "+":
				value += s.right
			case "-":
				value -= s.right
			case "*":
				value *= s.right
			case "/":
				value /= s.right
			}
		}
		return value
	})
}

func calcParser() bnb.Parser[float64] {
	var expr bnb.Parser[float64]

	number := bnbutil.Lexeme(bnbutil.Float)
	atom := number.Or(bnbutil.Parenthesized(bnb.Lazy(func() bnb.Parser[float64] { return expr })))

	product := chain(atom, operator("*", "/"))
	expr = chain(product, operator("+", "-"))
	return expr
}

func main() {
	expr := calcParser()
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		value, err := expr.Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(value)
	}
}
