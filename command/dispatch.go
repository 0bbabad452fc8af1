// Package command implements the fifteen-command dispatch table: argument
// parsing, stack manipulation, and the diagnostic taxonomy reported back to
// the REPL driver.
package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/wikaaaaa/polycalc/parse/scan"
	"github.com/wikaaaaa/polycalc/poly"
	"github.com/wikaaaaa/polycalc/stack"
)

// Diagnostic is one of the fixed set of command-level error messages. Its
// Error text is exactly the text the REPL prints after "ERROR <line> ".
type Diagnostic string

func (d Diagnostic) Error() string { return string(d) }

const (
	WrongCommand          Diagnostic = "WRONG COMMAND"
	StackUnderflow        Diagnostic = "STACK UNDERFLOW"
	DegByWrongVariable    Diagnostic = "DEG BY WRONG VARIABLE"
	AtWrongValue          Diagnostic = "AT WRONG VALUE"
	ComposeWrongParameter Diagnostic = "COMPOSE WRONG PARAMETER"
)

func isNameByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '_'
}

// splitName scans the command name at the start of line: a run of letters
// and underscores terminated by a space or the end of the line. wrongChar
// reports that a byte in the run was neither a letter, an underscore, nor
// the terminating space, which is always WRONG COMMAND regardless of what
// the name would otherwise have been.
func splitName(line string) (name, rest string, endLine, wrongChar bool) {
	i := 0
	for i < len(line) && line[i] != ' ' {
		if !isNameByte(line[i]) {
			return "", "", false, true
		}
		i++
	}
	return line[:i], line[i:], i == len(line), false
}

func boolDigit(b bool) int {
	if b {
		return 1
	}
	return 0
}

func printBool(st *stack.Stack, stdout io.Writer, pred func(*poly.Polynomial) bool) error {
	top, ok := st.Top()
	if !ok {
		return StackUnderflow
	}
	fmt.Fprintln(stdout, boolDigit(pred(top)))
	return nil
}

func binaryOp(st *stack.Stack, op func(p, q *poly.Polynomial) *poly.Polynomial) error {
	p, ok := st.Pop()
	if !ok {
		return StackUnderflow
	}
	q, ok := st.Pop()
	if !ok {
		st.Push(p)
		return StackUnderflow
	}
	st.Push(op(p, q))
	return nil
}

func unaryOp(st *stack.Stack, op func(p *poly.Polynomial) *poly.Polynomial) error {
	p, ok := st.Pop()
	if !ok {
		return StackUnderflow
	}
	st.Push(op(p))
	return nil
}

// readSoleUnsigned parses a single numeric argument that must occupy all of
// rest[1:] (rest[0] is the space already checked by the caller), with
// nothing left over.
func readSoleUnsigned(rest string) (v uint64, ok bool) {
	s := scan.New(strings.NewReader(rest[1:]))
	v, ok = s.ReadUnsigned()
	if !ok {
		return 0, false
	}
	if _, more := s.Peek(); more {
		return 0, false
	}
	return v, true
}

func readSoleCoefficient(rest string) (c int64, ok bool) {
	s := scan.New(strings.NewReader(rest[1:]))
	c, ok = s.ReadCoefficient()
	if !ok {
		return 0, false
	}
	if _, more := s.Peek(); more {
		return 0, false
	}
	return c, true
}

// Dispatch executes the command held in line (a single input line, already
// stripped of its trailing newline, known to start with a letter) against
// st, writing any command output to stdout. It returns nil on success, or
// one of the package's Diagnostic values.
func Dispatch(line string, st *stack.Stack, stdout io.Writer) error {
	name, rest, endLine, wrongChar := splitName(line)
	if wrongChar {
		return WrongCommand
	}

	switch name {
	case "ZERO":
		if !endLine {
			return WrongCommand
		}
		st.Push(poly.Zero())
		return nil

	case "IS_COEFF":
		if !endLine {
			return WrongCommand
		}
		return printBool(st, stdout, poly.IsCoefficient)

	case "IS_ZERO":
		if !endLine {
			return WrongCommand
		}
		return printBool(st, stdout, poly.IsZero)

	case "IS_EQ":
		if !endLine {
			return WrongCommand
		}
		p, ok := st.Pop()
		if !ok {
			return StackUnderflow
		}
		q, ok := st.Top()
		if !ok {
			st.Push(p)
			return StackUnderflow
		}
		eq := poly.Equal(p, q)
		st.Push(p)
		fmt.Fprintln(stdout, boolDigit(eq))
		return nil

	case "CLONE":
		if !endLine {
			return WrongCommand
		}
		top, ok := st.Top()
		if !ok {
			return StackUnderflow
		}
		st.Push(top.Clone())
		return nil

	case "ADD":
		if !endLine {
			return WrongCommand
		}
		return binaryOp(st, poly.Add)

	case "SUB":
		if !endLine {
			return WrongCommand
		}
		return binaryOp(st, poly.Sub)

	case "MUL":
		if !endLine {
			return WrongCommand
		}
		return binaryOp(st, poly.Mul)

	case "NEG":
		if !endLine {
			return WrongCommand
		}
		return unaryOp(st, poly.Neg)

	case "DEG":
		if !endLine {
			return WrongCommand
		}
		top, ok := st.Top()
		if !ok {
			return StackUnderflow
		}
		fmt.Fprintln(stdout, poly.Degree(top))
		return nil

	case "PRINT":
		if !endLine {
			return WrongCommand
		}
		top, ok := st.Top()
		if !ok {
			return StackUnderflow
		}
		fmt.Fprintln(stdout, top.String())
		return nil

	case "POP":
		if !endLine {
			return WrongCommand
		}
		if _, ok := st.Pop(); !ok {
			return StackUnderflow
		}
		return nil

	case "AT":
		if len(rest) == 0 || rest[0] != ' ' {
			return AtWrongValue
		}
		x, ok := readSoleCoefficient(rest)
		if !ok {
			return AtWrongValue
		}
		top, ok := st.Pop()
		if !ok {
			return StackUnderflow
		}
		st.Push(poly.EvaluateAt(top, x))
		return nil

	case "DEG_BY":
		if len(rest) == 0 || rest[0] != ' ' {
			return DegByWrongVariable
		}
		idx, ok := readSoleUnsigned(rest)
		if !ok {
			return DegByWrongVariable
		}
		top, ok := st.Top()
		if !ok {
			return StackUnderflow
		}
		fmt.Fprintln(stdout, poly.DegreeBy(top, int(idx)))
		return nil

	case "COMPOSE":
		if len(rest) == 0 || rest[0] != ' ' {
			return ComposeWrongParameter
		}
		k, ok := readSoleUnsigned(rest)
		if !ok {
			return ComposeWrongParameter
		}
		if k >= uint64(st.Len()) {
			return StackUnderflow
		}
		p, _ := st.Pop()
		q := make([]*poly.Polynomial, k)
		for i := k; i > 0; i-- {
			top, _ := st.Pop()
			q[i-1] = top
		}
		st.Push(poly.Compose(p, q))
		return nil

	default:
		return WrongCommand
	}
}
