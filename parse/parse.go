// Package parse implements the recursive-descent parser for the polynomial
// literal syntax:
//
//	Poly := Mono ('+' Mono)*
//	Mono := coeff | '(' (coeff | Poly) ',' exp ')'
//
// A bare coeff is only a valid Mono when it is the entire Poly: "5+(2,3)" is
// not a valid polynomial literal, matching the constraint that an
// integer-only term can only ever be the degree-0 constant polynomial
// itself, never combined additively with other monomials at the same
// nesting level.
package parse

import (
	"github.com/pkg/errors"

	"github.com/wikaaaaa/polycalc/parse/scan"
	"github.com/wikaaaaa/polycalc/poly"
)

// ErrMalformed reports that the input is not a well-formed polynomial
// literal. Every error this package returns wraps ErrMalformed, so callers
// can test with errors.Is.
var ErrMalformed = errors.New("malformed polynomial")

// Polynomial parses a single polynomial literal from s, consuming exactly
// the bytes that make it up and leaving any trailing byte (including a
// trailing newline) unread. It reports ErrMalformed on any syntax error.
func Polynomial(s *scan.Reader) (*poly.Polynomial, error) {
	monos, bare, err := parsePoly(s)
	if err != nil {
		return nil, err
	}
	if bare {
		return monos[0].Coefficient, nil
	}
	return poly.FromMonomialList(monos), nil
}

// parsePoly parses a Poly production: one or more Monos separated by '+'.
// bare reports whether the Poly consisted of a single bare-coefficient Mono,
// in which case monos holds exactly that one entry and the caller should
// treat it as the constant itself rather than feed it through
// [poly.FromMonomialList] (a bare coefficient standing alone is always a
// legal Poly; a bare coefficient combined with '+' is not).
func parsePoly(s *scan.Reader) (monos []poly.Monomial, bare bool, err error) {
	first, firstBare, err := parseMono(s)
	if err != nil {
		return nil, false, err
	}
	monos = append(monos, first)

	b, ok := s.Peek()
	if !ok || b != '+' {
		return monos, firstBare, nil
	}

	if firstBare {
		return nil, false, errors.Wrap(ErrMalformed, "bare coefficient cannot be combined with +")
	}
	for ok && b == '+' {
		s.Next()
		next, nextBare, err := parseMono(s)
		if err != nil {
			return nil, false, err
		}
		if nextBare {
			return nil, false, errors.Wrap(ErrMalformed, "bare coefficient cannot be combined with +")
		}
		monos = append(monos, next)
		b, ok = s.Peek()
	}
	return monos, false, nil
}

// parseMono parses a single Mono: either a bare coefficient, or a
// parenthesized (coefficient-or-Poly, exponent) pair. bare reports whether
// this was the bare-coefficient alternative.
func parseMono(s *scan.Reader) (m poly.Monomial, bare bool, err error) {
	b, ok := s.Peek()
	if !ok {
		return poly.Monomial{}, false, errors.Wrap(ErrMalformed, "unexpected end of input")
	}
	if b == '(' {
		return parseParenMono(s)
	}

	c, ok := s.ReadCoefficient()
	if !ok {
		return poly.Monomial{}, false, errors.Wrap(ErrMalformed, "expected a coefficient or '('")
	}
	return poly.Monomial{Coefficient: poly.FromCoeff(c), Exponent: 0}, true, nil
}

// parseParenMono parses '(' (coeff|Poly) ',' exp ')'. The coefficient slot
// is itself a recursive Poly production, since a bare coefficient is a
// degenerate Poly of one Mono: no separate grammar rule is needed for the
// "coeff" alternative.
func parseParenMono(s *scan.Reader) (m poly.Monomial, bare bool, err error) {
	s.Next() // '('

	coeffMonos, coeffBare, err := parsePoly(s)
	if err != nil {
		return poly.Monomial{}, false, err
	}
	var coeff *poly.Polynomial
	if coeffBare {
		coeff = coeffMonos[0].Coefficient
	} else {
		coeff = poly.FromMonomialList(coeffMonos)
	}

	if b, ok := s.Next(); !ok || b != ',' {
		return poly.Monomial{}, false, errors.Wrap(ErrMalformed, "expected ',' after monomial coefficient")
	}

	exp, ok := s.ReadExponent()
	if !ok {
		return poly.Monomial{}, false, errors.Wrap(ErrMalformed, "expected a non-negative exponent")
	}

	if b, ok := s.Next(); !ok || b != ')' {
		return poly.Monomial{}, false, errors.Wrap(ErrMalformed, "expected ')' after exponent")
	}

	return poly.Monomial{Coefficient: coeff, Exponent: exp}, false, nil
}
