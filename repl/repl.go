// Package repl implements the line-oriented input loop: read a line,
// classify it as a comment, a command, or a polynomial literal, dispatch it,
// and route any diagnostic to stderr with its 1-based line number.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wikaaaaa/polycalc/command"
	"github.com/wikaaaaa/polycalc/parse"
	"github.com/wikaaaaa/polycalc/parse/scan"
	"github.com/wikaaaaa/polycalc/stack"
)

// Run reads lines from r until EOF, executing each as a command or pushing
// each polynomial literal onto an internal stack, writing command output to
// stdout and "ERROR <line> <diagnostic>" messages to stderr. It returns the
// process exit code: 0, always, per the calculator's never-abort design —
// every malformed line is reported and skipped, not fatal.
func Run(r io.Reader, stdout, stderr io.Writer) int {
	var st stack.Stack
	scanner := bufio.NewScanner(r)
	// Lines of polynomial literals can be far longer than bufio.Scanner's
	// default 64KiB token limit; grow it generously.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 16*1024*1024)

	line := 1
	for scanner.Scan() {
		text := scanner.Text()
		runLine(text, line, &st, stdout, stderr)
		line++
	}
	return 0
}

func runLine(text string, line int, st *stack.Stack, stdout, stderr io.Writer) {
	if text == "" || text[0] == '#' {
		return
	}
	if isCommandLine(text[0]) {
		if err := command.Dispatch(text, st, stdout); err != nil {
			reportError(stderr, line, err.Error())
		}
		return
	}
	s := scan.New(strings.NewReader(text))
	p, err := parse.Polynomial(s)
	if err != nil {
		reportError(stderr, line, "WRONG POLY")
		return
	}
	if _, trailing := s.Peek(); trailing {
		reportError(stderr, line, "WRONG POLY")
		return
	}
	st.Push(p)
}

func isCommandLine(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func reportError(stderr io.Writer, line int, diagnostic string) {
	fmt.Fprintf(stderr, "ERROR %d %s\n", line, diagnostic)
}
