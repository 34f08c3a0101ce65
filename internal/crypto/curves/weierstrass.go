package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/field"
	"github.com/smallyu/go-ecmath/pkg/ecc"
)

// Weierstrass describes the curve y^2 = x^3 + a*x + b over the field of a and b.
// The group order is optional; when it is known, scalar multiplication reduces
// the scalar modulo the order first.
type Weierstrass struct {
	name  string
	a, b  *field.Element
	order *big.Int
}

// NewWeierstrass returns the curve with coefficients a and b and no known
// group order. a and b must belong to the same field.
func NewWeierstrass(a, b *field.Element) (*Weierstrass, error) {
	if a == nil || b == nil {
		return nil, ecc.NewError(ecc.ErrFieldMismatch, "curves: coefficients must be set")
	}
	if !a.SameField(b) {
		return nil, ecc.NewError(ecc.ErrFieldMismatch, fmt.Sprintf(
			"curves: coefficients %v and %v are in different fields", a, b))
	}
	return &Weierstrass{a: a, b: b}, nil
}

// A returns the linear coefficient.
func (c *Weierstrass) A() *field.Element { return c.a }

// B returns the constant coefficient.
func (c *Weierstrass) B() *field.Element { return c.b }

// Prime returns the order of the underlying field.
func (c *Weierstrass) Prime() *big.Int { return c.a.Prime() }

// Order returns the group order, or nil when it is unknown.
func (c *Weierstrass) Order() *big.Int {
	if c.order == nil {
		return nil
	}
	return new(big.Int).Set(c.order)
}

// Name returns the canonical name of a named curve, or "".
func (c *Weierstrass) Name() string { return c.name }

// Equal reports whether c and other have the same coefficients. Points are
// only combinable when their curves are equal.
func (c *Weierstrass) Equal(other *Weierstrass) bool {
	if c == other {
		return true
	}
	if c == nil || other == nil {
		return false
	}
	return c.a.Equal(other.a) && c.b.Equal(other.b)
}

func (c *Weierstrass) String() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("y^2 = x^3 + %s*x + %s over F_%s", c.a.Num(), c.b.Num(), c.a.Prime())
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c *Weierstrass) Contains(x, y *field.Element) bool {
	ok, err := c.contains(x, y)
	return err == nil && ok
}

func (c *Weierstrass) contains(x, y *field.Element) (bool, error) {
	var f arith
	lhs := f.pow(y, 2)
	rhs := f.add(f.add(f.pow(x, 3), f.mul(c.a, x)), c.b)
	if f.err != nil {
		return false, f.err
	}
	return lhs.Equal(rhs), nil
}

// Infinity returns the identity of the curve group.
func (c *Weierstrass) Infinity() *Point {
	return &Point{curve: c}
}

// NewPoint returns the affine point (x, y) on c.
func (c *Weierstrass) NewPoint(x, y *field.Element) (*Point, error) {
	if x == nil || y == nil {
		return nil, ecc.NewError(ecc.ErrNotOnCurve, "curves: coordinates must be set")
	}
	if !x.SameField(c.a) || !y.SameField(c.a) {
		return nil, ecc.NewError(ecc.ErrFieldMismatch, fmt.Sprintf(
			"curves: coordinates %v, %v are not in the field of %v", x, y, c))
	}
	ok, err := c.contains(x, y)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ecc.NewError(ecc.ErrNotOnCurve, fmt.Sprintf(
			"curves: (%s, %s) is not on the curve %v", x.Num(), y.Num(), c))
	}
	return &Point{curve: c, x: x, y: y}, nil
}

// arith chains field operations and keeps the first error, so formulas can
// be written without checking every step.
type arith struct {
	err error
}

func (f *arith) add(x, y *field.Element) *field.Element {
	if f.err != nil {
		return nil
	}
	var r *field.Element
	r, f.err = x.Add(y)
	return r
}

func (f *arith) sub(x, y *field.Element) *field.Element {
	if f.err != nil {
		return nil
	}
	var r *field.Element
	r, f.err = x.Sub(y)
	return r
}

func (f *arith) mul(x, y *field.Element) *field.Element {
	if f.err != nil {
		return nil
	}
	var r *field.Element
	r, f.err = x.Mul(y)
	return r
}

func (f *arith) div(x, y *field.Element) *field.Element {
	if f.err != nil {
		return nil
	}
	var r *field.Element
	r, f.err = x.Div(y)
	return r
}

func (f *arith) pow(x *field.Element, exp int64) *field.Element {
	if f.err != nil {
		return nil
	}
	var r *field.Element
	r, f.err = x.PowInt64(exp)
	return r
}
