// Package stack implements the growable polynomial stack the command
// dispatcher operates on.
package stack

import "github.com/wikaaaaa/polycalc/poly"

const initialCapacity = 8

// A Stack is a LIFO sequence of polynomials. The zero value is an empty,
// ready-to-use stack.
type Stack struct {
	items []*poly.Polynomial
}

// Len returns the number of polynomials on the stack.
func (s *Stack) Len() int { return len(s.items) }

// Push appends p to the top of the stack, growing the backing storage by
// new = 2*old+1 (starting from an initial capacity of 8) whenever it is
// full.
func (s *Stack) Push(p *poly.Polynomial) {
	if s.items == nil {
		s.items = make([]*poly.Polynomial, 0, initialCapacity)
	}
	if len(s.items) == cap(s.items) {
		grown := make([]*poly.Polynomial, len(s.items), 2*cap(s.items)+1)
		copy(grown, s.items)
		s.items = grown
	}
	s.items = append(s.items, p)
}

// Pop removes and returns the top polynomial. ok is false if the stack is
// empty.
func (s *Stack) Pop() (p *poly.Polynomial, ok bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := len(s.items) - 1
	p = s.items[top]
	s.items[top] = nil
	s.items = s.items[:top]
	return p, true
}

// Top returns the top polynomial without removing it. ok is false if the
// stack is empty.
func (s *Stack) Top() (p *poly.Polynomial, ok bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

// Clone returns a deep copy of s: every polynomial it holds is itself
// cloned.
func (s *Stack) Clone() *Stack {
	c := &Stack{items: make([]*poly.Polynomial, len(s.items))}
	for i, p := range s.items {
		c.items[i] = p.Clone()
	}
	return c
}
