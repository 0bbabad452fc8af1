// Package poly implements sparse multivariate polynomials over recursively
// nested variables x0, x1, x2, ..., with signed 64-bit integer coefficients.
//
// A [Polynomial] is either a constant, or a non-empty, strictly
// exponent-ordered sequence of monomials whose coefficient is itself a
// Polynomial over the next variable. Every exported constructor and
// operation returns a value already in canonical form: see
// [FromMonomialList] for the definition of canonical form.
package poly

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/jba/omap"
)

// Coefficient is the type of a polynomial coefficient.
type Coefficient = int64

// Exponent is the type of a monomial exponent. It must be non-negative.
type Exponent = int32

// A Polynomial is a sparse multivariate polynomial. The zero value is the
// zero polynomial, the same value [Zero] returns; use [FromCoeff] for other
// constants.
type Polynomial struct {
	// coeff holds the value when composite == nil, i.e. when the
	// polynomial is a constant.
	coeff Coefficient
	// composite holds the exponent-ordered monomials of a non-constant
	// polynomial. It is nil for a constant.
	composite *omap.MapFunc[Exponent, *Polynomial]
}

// A Monomial is a single term destined for [FromMonomialList]: it
// contributes Coefficient*x^Exponent to the variable of the polynomial
// being built.
type Monomial struct {
	Coefficient *Polynomial
	Exponent    Exponent
}

// Zero returns the zero polynomial.
func Zero() *Polynomial { return &Polynomial{} }

// FromCoeff returns the constant polynomial c.
func FromCoeff(c Coefficient) *Polynomial { return &Polynomial{coeff: c} }

func (p *Polynomial) isComposite() bool { return p.composite != nil }

func newTermMap() *omap.MapFunc[Exponent, *Polynomial] {
	return omap.NewMapFunc[Exponent, *Polynomial](cmp.Compare)
}

// FromMonomialList is the sole constructor of composite polynomials. It
// takes ownership of monos and its coefficient polynomials: callers must
// not use them afterward. To build a polynomial without consuming the
// input, use [FromMonomialListClone].
//
// The contract:
//  1. Sort stably by exponent ascending.
//  2. For each run of equal exponents, sum the coefficient-polynomials.
//  3. Drop any monomial whose summed coefficient-polynomial is zero.
//  4. If the resulting sequence is empty, return the zero constant.
//  5. If it has length 1, exponent 0, and a constant coefficient-polynomial,
//     return that constant.
//  6. Otherwise return the composite with that sequence.
func FromMonomialList(monos []Monomial) *Polynomial {
	m := newTermMap()
	for _, mono := range monos {
		mergeTerm(m, mono.Exponent, mono.Coefficient)
	}
	return canonicalize(m)
}

// FromMonomialListClone is like [FromMonomialList], but deep-clones every
// coefficient-polynomial in monos first, leaving monos and its contents
// untouched.
func FromMonomialListClone(monos []Monomial) *Polynomial {
	cloned := make([]Monomial, len(monos))
	for i, mono := range monos {
		cloned[i] = Monomial{Coefficient: mono.Coefficient.Clone(), Exponent: mono.Exponent}
	}
	return FromMonomialList(cloned)
}

func mergeTerm(m *omap.MapFunc[Exponent, *Polynomial], e Exponent, c *Polynomial) {
	if existing, ok := m.Get(e); ok {
		m.Set(e, Add(existing, c))
		return
	}
	m.Set(e, c)
}

// canonicalize applies steps 3-6 of the canonicalizer contract to m, which
// must already hold the pairwise sum of every exponent's monomials.
func canonicalize(m *omap.MapFunc[Exponent, *Polynomial]) *Polynomial {
	var zeros []Exponent
	for e, c := range m.All() {
		if IsZero(c) {
			zeros = append(zeros, e)
		}
	}
	for _, e := range zeros {
		m.Delete(e)
	}

	if m.Len() == 0 {
		return Zero()
	}
	if m.Len() == 1 {
		e, c := m.At(0)
		if e == 0 && !c.isComposite() {
			return c
		}
	}
	return &Polynomial{composite: m}
}

// Clone returns a deep copy of p.
func (p *Polynomial) Clone() *Polynomial {
	if !p.isComposite() {
		return FromCoeff(p.coeff)
	}
	m := newTermMap()
	for e, c := range p.composite.All() {
		m.Set(e, c.Clone())
	}
	return &Polynomial{composite: m}
}

// Add returns p+q.
func Add(p, q *Polynomial) *Polynomial {
	switch {
	case !p.isComposite() && !q.isComposite():
		return FromCoeff(p.coeff + q.coeff)
	case !p.isComposite():
		return addConstComposite(p, q)
	case !q.isComposite():
		return addConstComposite(q, p)
	default:
		return addComposite(p, q)
	}
}

func addConstComposite(c, composite *Polynomial) *Polynomial {
	if c.coeff == 0 {
		return composite.Clone()
	}
	m := newTermMap()
	for e, coeff := range composite.composite.All() {
		m.Set(e, coeff.Clone())
	}
	if first, ok := m.Get(0); ok {
		m.Set(0, Add(c, first))
	} else {
		m.Set(0, FromCoeff(c.coeff))
	}
	return canonicalize(m)
}

func addComposite(p, q *Polynomial) *Polynomial {
	m := newTermMap()
	for e, c := range p.composite.All() {
		m.Set(e, c.Clone())
	}
	for e, c := range q.composite.All() {
		if existing, ok := m.Get(e); ok {
			m.Set(e, Add(existing, c))
		} else {
			m.Set(e, c.Clone())
		}
	}
	return canonicalize(m)
}

// Neg returns -p.
func Neg(p *Polynomial) *Polynomial {
	if !p.isComposite() {
		return FromCoeff(-p.coeff)
	}
	m := newTermMap()
	for e, c := range p.composite.All() {
		m.Set(e, Neg(c))
	}
	return &Polynomial{composite: m}
}

// Sub returns p-q, defined as Add(p, Neg(q)).
func Sub(p, q *Polynomial) *Polynomial {
	return Add(p, Neg(q))
}

// Mul returns p*q.
func Mul(p, q *Polynomial) *Polynomial {
	switch {
	case !p.isComposite() && !q.isComposite():
		return FromCoeff(p.coeff * q.coeff)
	case !p.isComposite():
		return mulConstComposite(p, q)
	case !q.isComposite():
		return mulConstComposite(q, p)
	default:
		return mulComposite(p, q)
	}
}

func mulConstComposite(c, composite *Polynomial) *Polynomial {
	if c.coeff == 0 {
		return Zero()
	}
	monos := make([]Monomial, 0, composite.composite.Len())
	for e, coeff := range composite.composite.All() {
		monos = append(monos, Monomial{Coefficient: Mul(c, coeff), Exponent: e})
	}
	return FromMonomialList(monos)
}

func mulComposite(p, q *Polynomial) *Polynomial {
	monos := make([]Monomial, 0, p.composite.Len()*q.composite.Len())
	for pe, pc := range p.composite.All() {
		for qe, qc := range q.composite.All() {
			monos = append(monos, Monomial{Coefficient: Mul(pc, qc), Exponent: pe + qe})
		}
	}
	return FromMonomialList(monos)
}

// IsCoefficient reports whether p is structurally a constant, or reduces
// structurally to one: a composite whose sole monomial has exponent 0 and
// whose coefficient-polynomial is itself a constant, checked recursively.
// Canonicalization never produces the latter shape, but IsCoefficient
// checks for it anyway to match the semantics of polynomials built outside
// this package's constructors.
func IsCoefficient(p *Polynomial) bool {
	if !p.isComposite() {
		return true
	}
	if p.composite.Len() != 1 {
		return false
	}
	e, c := p.composite.At(0)
	if e != 0 {
		return false
	}
	return IsCoefficient(c)
}

// coefficientValue returns the constant value p reduces to. It must only be
// called when IsCoefficient(p) is true.
func coefficientValue(p *Polynomial) Coefficient {
	if !p.isComposite() {
		return p.coeff
	}
	_, c := p.composite.At(0)
	return coefficientValue(c)
}

// IsZero reports whether p is the constant 0, or a composite of size 1
// whose monomial's coefficient-polynomial is recursively zero.
func IsZero(p *Polynomial) bool {
	if !p.isComposite() {
		return p.coeff == 0
	}
	if p.composite.Len() != 1 {
		return false
	}
	_, c := p.composite.At(0)
	return IsZero(c)
}

// Equal reports whether p and q represent the same polynomial.
func Equal(p, q *Polynomial) bool {
	switch {
	case !p.isComposite() && !q.isComposite():
		return p.coeff == q.coeff
	case p.isComposite() && q.isComposite():
		if p.composite.Len() != q.composite.Len() {
			return false
		}
		for i := range p.composite.Len() {
			pe, pc := p.composite.At(i)
			qe, qc := q.composite.At(i)
			if pe != qe || !Equal(pc, qc) {
				return false
			}
		}
		return true
	default:
		c, other := p, q
		if p.isComposite() {
			c, other = q, p
		}
		return IsCoefficient(other) && coefficientValue(other) == c.coeff
	}
}

// Degree returns the total degree of p: -1 for zero, 0 for any non-zero
// constant, and otherwise the maximum over monomials of
// exponent+Degree(coefficient-polynomial).
func Degree(p *Polynomial) int {
	if !p.isComposite() {
		if p.coeff == 0 {
			return -1
		}
		return 0
	}
	max := -1
	for e, c := range p.composite.All() {
		if d := int(e) + Degree(c); d > max {
			max = d
		}
	}
	return max
}

// DegreeBy returns the degree of p with respect to variable x_i: -1 for
// zero, 0 for constants. For i==0 it is the largest top-level exponent;
// otherwise the maximum of DegreeBy(coefficient-polynomial, i-1) across
// monomials.
func DegreeBy(p *Polynomial, i int) int {
	if IsZero(p) {
		return -1
	}
	if !p.isComposite() {
		return 0
	}
	if i == 0 {
		e, _ := p.composite.At(p.composite.Len() - 1)
		return int(e)
	}
	max := -1
	for _, c := range p.composite.All() {
		if d := DegreeBy(c, i-1); d > max {
			max = d
		}
	}
	return max
}

// power returns p^e. power(zero, 0) is 1; power(zero, e>0) is zero.
func power(p *Polynomial, e Exponent) *Polynomial {
	if e == 0 {
		return FromCoeff(1)
	}
	if IsZero(p) {
		return Zero()
	}
	half := power(p, e/2)
	sq := Mul(half, half)
	if e%2 == 1 {
		return Mul(sq, p)
	}
	return sq
}

// EvaluateAt substitutes the constant x for x0 in p. The result is p's
// former x1, x2, ... renumbered down to x0, x1, ....
func EvaluateAt(p *Polynomial, x Coefficient) *Polynomial {
	if !p.isComposite() {
		return FromCoeff(p.coeff)
	}
	result := Zero()
	xp := FromCoeff(x)
	for e, c := range p.composite.All() {
		result = Add(result, Mul(power(xp, e), c))
	}
	return result
}

// Compose substitutes q[i] for x_i in p for i < len(q), and zero for
// x_i when i >= len(q).
func Compose(p *Polynomial, q []*Polynomial) *Polynomial {
	return compose(p, q, 0)
}

func compose(p *Polynomial, q []*Polynomial, depth int) *Polynomial {
	if !p.isComposite() {
		return FromCoeff(p.coeff)
	}
	var qd *Polynomial
	if depth < len(q) {
		qd = q[depth]
	} else {
		qd = Zero()
	}
	result := Zero()
	for e, c := range p.composite.All() {
		sub := compose(c, q, depth+1)
		result = Add(result, Mul(sub, power(qd, e)))
	}
	return result
}

// String renders p in the parser-compatible syntax: a constant prints as a
// decimal signed integer, a composite prints as
// (M0,e0)+(M1,e1)+...+(Mn-1,en-1) with no spaces, where each Mi is the
// recursive rendering of that monomial's coefficient-polynomial.
func (p *Polynomial) String() string {
	if !p.isComposite() {
		return strconv.FormatInt(p.coeff, 10)
	}
	var b strings.Builder
	first := true
	for e, c := range p.composite.All() {
		if !first {
			b.WriteByte('+')
		}
		first = false
		fmt.Fprintf(&b, "(%s,%d)", c, e)
	}
	return b.String()
}
