package command

import (
	"bytes"
	"testing"

	"github.com/wikaaaaa/polycalc/poly"
	"github.com/wikaaaaa/polycalc/stack"
)

func mustPush(st *stack.Stack, p *poly.Polynomial) { st.Push(p) }

func TestDispatchWrongCommand(t *testing.T) {
	tests := []string{"FROB", "AD1D", "ADDX", "add", "ADD "}
	for _, line := range tests {
		var st stack.Stack
		var out bytes.Buffer
		err := Dispatch(line, &st, &out)
		if err != WrongCommand {
			t.Errorf("Dispatch(%q) = %v, want WrongCommand", line, err)
		}
	}
}

func TestDispatchStackUnderflow(t *testing.T) {
	tests := []string{"ADD", "SUB", "MUL", "NEG", "CLONE", "DEG", "PRINT", "POP", "IS_ZERO", "IS_COEFF", "IS_EQ"}
	for _, line := range tests {
		var st stack.Stack
		var out bytes.Buffer
		err := Dispatch(line, &st, &out)
		if err != StackUnderflow {
			t.Errorf("Dispatch(%q) on empty stack = %v, want StackUnderflow", line, err)
		}
	}
}

func TestDispatchZero(t *testing.T) {
	var st stack.Stack
	var out bytes.Buffer
	if err := Dispatch("ZERO", &st, &out); err != nil {
		t.Fatalf("Dispatch(ZERO) error: %v", err)
	}
	top, ok := st.Top()
	if !ok || !poly.IsZero(top) {
		t.Fatalf("after ZERO, top = %v, want zero", top)
	}
}

func TestDispatchArithmetic(t *testing.T) {
	var st stack.Stack
	var out bytes.Buffer
	st.Push(poly.FromCoeff(3))
	st.Push(poly.FromCoeff(4))
	if err := Dispatch("ADD", &st, &out); err != nil {
		t.Fatalf("ADD error: %v", err)
	}
	top, _ := st.Top()
	if !poly.Equal(top, poly.FromCoeff(7)) {
		t.Fatalf("3+4 = %v, want 7", top)
	}
}

func TestDispatchSubDirection(t *testing.T) {
	// SUB computes top - below: the operand pushed last (which becomes
	// the current top) is the minuend.
	var st stack.Stack
	var out bytes.Buffer
	st.Push(poly.FromCoeff(10)) // below
	st.Push(poly.FromCoeff(3))  // top
	if err := Dispatch("SUB", &st, &out); err != nil {
		t.Fatalf("SUB error: %v", err)
	}
	top, _ := st.Top()
	if !poly.Equal(top, poly.FromCoeff(-7)) {
		t.Fatalf("SUB result = %v, want -7 (top - below = 3 - 10)", top)
	}
}

func TestDispatchIsEqPreservesStack(t *testing.T) {
	var st stack.Stack
	var out bytes.Buffer
	st.Push(poly.FromCoeff(5))
	st.Push(poly.FromCoeff(5))
	if err := Dispatch("IS_EQ", &st, &out); err != nil {
		t.Fatalf("IS_EQ error: %v", err)
	}
	if got, want := out.String(), "1\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if got, want := st.Len(), 2; got != want {
		t.Errorf("IS_EQ should not remove anything, Len() = %d, want %d", got, want)
	}
}

func TestDispatchPrint(t *testing.T) {
	var st stack.Stack
	var out bytes.Buffer
	st.Push(poly.FromMonomialList([]poly.Monomial{
		{Coefficient: poly.FromCoeff(1), Exponent: 2},
		{Coefficient: poly.FromCoeff(2), Exponent: 0},
	}))
	if err := Dispatch("PRINT", &st, &out); err != nil {
		t.Fatalf("PRINT error: %v", err)
	}
	if got, want := out.String(), "(2,0)+(1,2)\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDispatchAt(t *testing.T) {
	tests := []struct {
		line    string
		wantErr error
	}{
		{"AT 2", nil},
		{"AT", AtWrongValue},
		{"ATx", WrongCommand},
		{"AT x", AtWrongValue},
		{"AT 2 3", AtWrongValue},
	}
	for _, tt := range tests {
		var st stack.Stack
		var out bytes.Buffer
		st.Push(poly.FromMonomialList([]poly.Monomial{{Coefficient: poly.FromCoeff(1), Exponent: 1}}))
		err := Dispatch(tt.line, &st, &out)
		if err != tt.wantErr {
			t.Errorf("Dispatch(%q) = %v, want %v", tt.line, err, tt.wantErr)
		}
	}
}

func TestDispatchDegBy(t *testing.T) {
	var st stack.Stack
	var out bytes.Buffer
	st.Push(poly.FromMonomialList([]poly.Monomial{{Coefficient: poly.FromCoeff(1), Exponent: 3}}))
	if err := Dispatch("DEG_BY 0", &st, &out); err != nil {
		t.Fatalf("DEG_BY error: %v", err)
	}
	if got, want := out.String(), "3\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestDispatchCompose(t *testing.T) {
	var st stack.Stack
	var out bytes.Buffer
	// p = x0 (identity); push q0 = 5, then p, then COMPOSE 1.
	st.Push(poly.FromCoeff(5))
	st.Push(poly.FromMonomialList([]poly.Monomial{{Coefficient: poly.FromCoeff(1), Exponent: 1}}))
	if err := Dispatch("COMPOSE 1", &st, &out); err != nil {
		t.Fatalf("COMPOSE error: %v", err)
	}
	top, ok := st.Top()
	if !ok || !poly.Equal(top, poly.FromCoeff(5)) {
		t.Fatalf("COMPOSE result = %v, want 5", top)
	}
}

func TestDispatchComposeUnderflow(t *testing.T) {
	var st stack.Stack
	var out bytes.Buffer
	st.Push(poly.FromCoeff(1))
	if err := Dispatch("COMPOSE 2", &st, &out); err != StackUnderflow {
		t.Errorf("Dispatch(COMPOSE 2) with 1 item = %v, want StackUnderflow", err)
	}
}

func TestDispatchComposeWrongParameter(t *testing.T) {
	var st stack.Stack
	var out bytes.Buffer
	st.Push(poly.FromCoeff(1))
	if err := Dispatch("COMPOSE", &st, &out); err != ComposeWrongParameter {
		t.Errorf("Dispatch(COMPOSE) = %v, want ComposeWrongParameter", err)
	}
	if err := Dispatch("COMPOSEx", &st, &out); err != WrongCommand {
		t.Errorf("Dispatch(COMPOSEx) = %v, want WrongCommand", err)
	}
}
