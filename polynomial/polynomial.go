// Package polynomial implements dense univariate polynomials over a prime
// field: normalization, +, -, *, Euclidean division, point evaluation, and
// "hidden" (group-exponent) evaluation. Grounded on
// _examples/original_source/src/building_block/field/polynomial.rs.
package polynomial

import (
	"errors"
	"strings"

	"github.com/exfinen/zksnark-toolkit/field"
	"github.com/exfinen/zksnark-toolkit/linalg"
)

// ErrDegreeMismatch is the value Sub panics with when the minuend has lower
// degree than the subtrahend (the original only supports minuend >= subtrahend).
var ErrDegreeMismatch = errors.New("polynomial: minuend degree must be >= subtrahend degree")

// Polynomial is coefficients c0, c1, ..., cd with cd != 0, representing
// c0 + c1*x + ... + cd*x^d. The zero polynomial is represented as the single
// coefficient [0]. Always normalized: trailing zero coefficients are
// trimmed down to (at minimum) one coefficient.
type Polynomial struct {
	f      *field.Field
	coeffs []field.Elem
}

// New builds a polynomial from coeffs (index i holds the x^i coefficient)
// and normalizes it. coeffs must be non-empty.
func New(f *field.Field, coeffs []field.Elem) *Polynomial {
	if len(coeffs) == 0 {
		panic("polynomial: coeffs is empty")
	}
	cp := make([]field.Elem, len(coeffs))
	copy(cp, coeffs)
	return (&Polynomial{f: f, coeffs: cp}).normalize()
}

// Zero returns the zero polynomial.
func Zero(f *field.Field) *Polynomial {
	return New(f, []field.Elem{f.Zero()})
}

// FromSparseVector builds a polynomial from vec's dense expansion: the x^i
// coefficient is vec.Get(i).
func FromSparseVector(vec *linalg.SparseVector, f *field.Field) *Polynomial {
	coeffs := make([]field.Elem, vec.Size)
	for i := 0; i < vec.Size; i++ {
		coeffs[i] = vec.Get(i)
	}
	return New(f, coeffs)
}

// normalize trims trailing zero coefficients, always keeping at least one.
func (p *Polynomial) normalize() *Polynomial {
	n := len(p.coeffs)
	for n > 1 && p.coeffs[n-1].IsZero() {
		n--
	}
	return &Polynomial{f: p.f, coeffs: p.coeffs[:n]}
}

// Degree returns the polynomial's degree; the zero polynomial has degree 0.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].IsZero()
}

// Coeff returns the x^i coefficient, or the field's zero if i exceeds the
// polynomial's degree.
func (p *Polynomial) Coeff(i int) field.Elem {
	if i < 0 || i >= len(p.coeffs) {
		return p.f.Zero()
	}
	return p.coeffs[i]
}

// Coeffs returns a copy of the normalized coefficient slice.
func (p *Polynomial) Coeffs() []field.Elem {
	out := make([]field.Elem, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// Equal reports equality by normalized coefficient content.
func (p *Polynomial) Equal(o *Polynomial) bool {
	if len(p.coeffs) != len(o.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(o.coeffs[i]) {
			return false
		}
	}
	return true
}

// Add returns p + o, padding the shorter operand with zeros.
func (p *Polynomial) Add(o *Polynomial) *Polynomial {
	smaller, larger := p.coeffs, o.coeffs
	if len(larger) < len(smaller) {
		smaller, larger = larger, smaller
	}
	coeffs := make([]field.Elem, len(larger))
	for i := range larger {
		if i < len(smaller) {
			coeffs[i] = smaller[i].Add(larger[i])
		} else {
			coeffs[i] = larger[i]
		}
	}
	return (&Polynomial{f: p.f, coeffs: coeffs}).normalize()
}

// Sub returns p - o. p's degree must be >= o's degree.
func (p *Polynomial) Sub(o *Polynomial) *Polynomial {
	if len(p.coeffs) < len(o.coeffs) {
		panic(ErrDegreeMismatch)
	}
	coeffs := make([]field.Elem, len(p.coeffs))
	copy(coeffs, p.coeffs)
	for i := range o.coeffs {
		coeffs[i] = coeffs[i].Sub(o.coeffs[i])
	}
	return (&Polynomial{f: p.f, coeffs: coeffs}).normalize()
}

// Mul returns p * o via schoolbook convolution.
func (p *Polynomial) Mul(o *Polynomial) *Polynomial {
	newLen := p.Degree() + o.Degree() + 1
	coeffs := p.f.Zero().Repeat(newLen)
	for i, pi := range p.coeffs {
		for j, oj := range o.coeffs {
			coeffs[i+j] = coeffs[i+j].Add(pi.Mul(oj))
		}
	}
	return (&Polynomial{f: p.f, coeffs: coeffs}).normalize()
}

// Scale returns p with every coefficient multiplied by s.
func (p *Polynomial) Scale(s field.Elem) *Polynomial {
	coeffs := make([]field.Elem, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c.Mul(s)
	}
	return (&Polynomial{f: p.f, coeffs: coeffs}).normalize()
}

// DivResult is the outcome of Euclidean division: either an exact Quotient,
// or a Quotient plus a non-zero Remainder.
type DivResult struct {
	Quotient  *Polynomial
	Remainder *Polynomial // nil when division is exact
}

// Div performs Euclidean division p / divisor: repeatedly eliminate the
// dividend's leading term using the divisor's leading coefficient, until the
// remaining dividend has lower degree than the divisor.
func (p *Polynomial) Div(divisor *Polynomial) DivResult {
	dividend := p
	divisorLeadCoeff := divisor.coeffs[len(divisor.coeffs)-1]
	if divisorLeadCoeff.IsZero() {
		panic("polynomial: found zero coefficient at highest index; use New to normalize")
	}
	quotientDegree := len(dividend.coeffs) - len(divisor.coeffs)
	if quotientDegree < 0 {
		quotientDegree = 0
	}
	quotientCoeffs := dividend.f.Zero().Repeat(quotientDegree + 1)

	for !dividend.IsZero() && len(dividend.coeffs) >= len(divisor.coeffs) {
		dividendLeadCoeff := dividend.coeffs[len(dividend.coeffs)-1]
		termDegree := len(dividend.coeffs) - len(divisor.coeffs)
		termCoeff, err := dividendLeadCoeff.Div(divisorLeadCoeff)
		if err != nil {
			panic(err)
		}

		quotientCoeffs[termDegree] = termCoeff

		termVec := dividend.f.Zero().Repeat(termDegree + 1)
		termVec[termDegree] = termCoeff
		term := New(dividend.f, termVec)

		dividend = dividend.Sub(divisor.Mul(term))
	}

	quotient := (&Polynomial{f: p.f, coeffs: quotientCoeffs}).normalize()
	if dividend.IsZero() {
		return DivResult{Quotient: quotient}
	}
	return DivResult{Quotient: quotient, Remainder: dividend}
}

// EvalAt evaluates p(x) via Horner-equivalent accumulation of powers of x.
func (p *Polynomial) EvalAt(x field.Elem) field.Elem {
	multiplier := p.f.One()
	sum := p.f.Zero()
	for _, c := range p.coeffs {
		sum = sum.Add(c.Mul(multiplier))
		multiplier = multiplier.Mul(x)
	}
	return sum
}

// EvalFrom1ToN returns the sparse vector [p(1), p(2), ..., p(n)], 0-indexed
// as vec[i] = p(i+1).
func (p *Polynomial) EvalFrom1ToN(n int) *linalg.SparseVector {
	vec := linalg.NewSparseVector(p.f, n)
	for i := 1; i <= n; i++ {
		vec.Set(i-1, p.EvalAt(p.f.ElemUint64(uint64(i))))
	}
	return vec
}

// ToSparseVector expands p's coefficients into a size-sized sparse vector.
func (p *Polynomial) ToSparseVector(size int) *linalg.SparseVector {
	vec := linalg.NewSparseVector(p.f, size)
	for i, c := range p.coeffs {
		vec.Set(i, c)
	}
	return vec
}

// EvalWithHidings evaluates p "in the exponent": given powers = [g^0, g^1,
// ..., g^d] in some additively written group, returns sum_i c_i * powers[i].
// add and scale are supplied by the caller so this stays agnostic to which
// curve's point type T is used; see weierstrass.Point and edwards.Point.
func EvalWithHidings[T any](p *Polynomial, powers []T, zero T, add func(T, T) T, scale func(T, field.Elem) T) T {
	sum := zero
	for i, c := range p.coeffs {
		sum = add(sum, scale(powers[i], c))
	}
	return sum
}

// Interpolate returns the unique polynomial L of degree < len(points) such
// that L(points[j]) == values[j] for every j, via the Lagrange formula
// L(x) = sum_j values[j] * prod_{m != j} (x - points[m]) / (points[j] - points[m]).
// points must hold no duplicates.
func Interpolate(f *field.Field, points, values []field.Elem) *Polynomial {
	result := Zero(f)
	for j, xj := range points {
		basis := New(f, []field.Elem{f.One()})
		denom := f.One()
		for m, xm := range points {
			if m == j {
				continue
			}
			basis = basis.Mul(New(f, []field.Elem{xm.Neg(), f.One()}))
			denom = denom.Mul(xj.Sub(xm))
		}
		invDenom, err := denom.Inv()
		if err != nil {
			panic(err)
		}
		result = result.Add(basis.Scale(values[j].Mul(invDenom)))
	}
	return result
}

// String renders p as a human-readable expression, highest degree first.
func (p *Polynomial) String() string {
	var terms []string
	last := len(p.coeffs) - 1
	for i := last; i >= 0; i-- {
		c := p.coeffs[i]
		if c.IsZero() {
			continue
		}
		var b strings.Builder
		if !c.Equal(p.f.One()) || i == 0 {
			b.WriteString(c.String())
		}
		if i > 0 {
			b.WriteString("x")
			if i > 1 {
				b.WriteString("^")
				b.WriteString(itoa(i))
			}
		}
		terms = append(terms, b.String())
	}
	return strings.Join(terms, " + ")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
