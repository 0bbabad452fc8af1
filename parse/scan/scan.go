// Package scan implements the byte-level reader primitives the polynomial
// parser is built on: reading a signed coefficient, an unsigned integer, and
// an exponent, each leaving its terminating byte unread for the caller to
// inspect.
package scan

import (
	"bufio"
	"io"
	"math"
)

// A Reader wraps an io.Reader with a single byte of pushback, the minimal
// mechanism the three Read* primitives need to stop at a terminator without
// consuming it.
type Reader struct {
	br      *bufio.Reader
	hasPeek bool
	peeked  byte
	peekErr error
}

// New returns a Reader over r.
func New(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Peek returns the next unread byte without consuming it. ok is false at
// end of input.
func (s *Reader) Peek() (b byte, ok bool) {
	if !s.hasPeek {
		s.peeked, s.peekErr = s.br.ReadByte()
		s.hasPeek = true
	}
	if s.peekErr != nil {
		return 0, false
	}
	return s.peeked, true
}

// Next consumes and returns the next byte. ok is false at end of input.
func (s *Reader) Next() (b byte, ok bool) {
	b, ok = s.Peek()
	if ok {
		s.hasPeek = false
	}
	return b, ok
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// readDigits consumes a run of ASCII digits, accumulating into an unsigned
// 64-bit value and reporting overflow. It leaves the first non-digit byte
// (or end of input) unread. ok is false if no digit was present.
func (s *Reader) readDigits() (v uint64, digits int, overflow bool, ok bool) {
	for {
		b, peekOK := s.Peek()
		if !peekOK || !isDigit(b) {
			break
		}
		s.Next()
		d := uint64(b - '0')
		if v > (math.MaxUint64-d)/10 {
			overflow = true
		} else {
			v = v*10 + d
		}
		digits++
	}
	return v, digits, overflow, digits > 0
}

// ReadUnsigned reads an unsigned decimal integer with no leading sign,
// leaving the terminating byte unread. ok is false if the input does not
// start with a digit, or if the value overflows.
func (s *Reader) ReadUnsigned() (v uint64, ok bool) {
	v, _, overflow, ok := s.readDigits()
	if !ok || overflow {
		return 0, false
	}
	return v, true
}

// ReadExponent reads an unsigned exponent, leaving the terminating byte
// unread. ok is false if the input does not start with a digit, or the
// value does not fit in a non-negative Exponent.
func (s *Reader) ReadExponent() (e int32, ok bool) {
	v, rok := s.ReadUnsigned()
	if !rok || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// ReadCoefficient reads an optionally minus-signed decimal integer, leaving
// the terminating byte unread. ok is false if the input does not start with
// a digit or '-', if there is no digit after a '-', or if the value
// overflows a signed 64-bit integer.
func (s *Reader) ReadCoefficient() (c int64, ok bool) {
	neg := false
	if b, peekOK := s.Peek(); peekOK && b == '-' {
		s.Next()
		neg = true
	}
	v, _, overflow, digitsOK := s.readDigits()
	if !digitsOK {
		return 0, false
	}
	if neg {
		if overflow || v > uint64(math.MaxInt64)+1 {
			return 0, false
		}
		return -int64(v), true
	}
	if overflow || v > uint64(math.MaxInt64) {
		return 0, false
	}
	return int64(v), true
}
