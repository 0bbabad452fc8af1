// Command polycalc is a stack-based RPN calculator for sparse multivariate
// polynomials with integer coefficients, reading commands and polynomial
// literals from stdin.
package main

import (
	"os"

	"github.com/wikaaaaa/polycalc/repl"
)

func main() {
	os.Exit(repl.Run(os.Stdin, os.Stdout, os.Stderr))
}
