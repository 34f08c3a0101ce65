package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/field"
	"github.com/smallyu/go-ecmath/pkg/ecc"
)

var _ ecc.GroupArithmetic[*Point] = (*Point)(nil)

// Point is an element of the group of a Weierstrass curve in affine
// coordinates. x and y are both nil for the point at infinity.
// Points are immutable and validated once at construction.
type Point struct {
	curve *Weierstrass
	x, y  *field.Element
}

// NewPoint returns (x, y) on the curve y^2 = x^3 + a*x + b.
func NewPoint(x, y, a, b *field.Element) (*Point, error) {
	c, err := NewWeierstrass(a, b)
	if err != nil {
		return nil, err
	}
	return c.NewPoint(x, y)
}

// Infinity returns the identity of the curve y^2 = x^3 + a*x + b.
func Infinity(a, b *field.Element) (*Point, error) {
	c, err := NewWeierstrass(a, b)
	if err != nil {
		return nil, err
	}
	return c.Infinity(), nil
}

// Curve returns the curve p lies on.
func (p *Point) Curve() *Weierstrass { return p.curve }

// X returns the x coordinate, nil at infinity.
func (p *Point) X() *field.Element { return p.x }

// Y returns the y coordinate, nil at infinity.
func (p *Point) Y() *field.Element { return p.y }

// A returns the curve's linear coefficient.
func (p *Point) A() *field.Element { return p.curve.a }

// B returns the curve's constant coefficient.
func (p *Point) B() *field.Element { return p.curve.b }

// IsInfinity reports whether p is the group identity.
func (p *Point) IsInfinity() bool {
	return p.x == nil
}

// Equal reports whether p and q are the same point of the same curve.
func (p *Point) Equal(q *Point) bool {
	if p == nil || q == nil {
		return p == q
	}
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() == q.IsInfinity()
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

func (p *Point) String() string {
	suffix := fmt.Sprintf("_%s_%s FieldElement(%s)", p.curve.a.Num(), p.curve.b.Num(), p.curve.Prime())
	if p.IsInfinity() {
		return "Point(infinity)" + suffix
	}
	return fmt.Sprintf("Point(%s, %s)", p.x.Num(), p.y.Num()) + suffix
}

// Neg returns -p = (x, -y).
func (p *Point) Neg() *Point {
	if p.IsInfinity() {
		return p
	}
	return &Point{curve: p.curve, x: p.x, y: p.y.Neg()}
}

// Add returns p + q using the chord-tangent law. It is defined for every pair
// of points on the same curve and fails with ErrCurveMismatch otherwise.
func (p *Point) Add(q *Point) (*Point, error) {
	if q == nil || !p.curve.Equal(q.curve) {
		return nil, ecc.NewError(ecc.ErrCurveMismatch, fmt.Sprintf(
			"curves: points %v and %v are not on the same curve", p, q))
	}
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}

	var f arith
	var slope *field.Element
	if p.x.Equal(q.x) {
		// Vertical line: P + (-P), or the tangent at a point with 2y = 0.
		if !p.y.Equal(q.y) {
			return p.curve.Infinity(), nil
		}
		twoY := p.y.MulInt64(2)
		if twoY.IsZero() {
			return p.curve.Infinity(), nil
		}
		// slope = (3x1^2 + a) / 2y1
		slope = f.div(f.add(f.pow(p.x, 2).MulInt64(3), p.curve.a), twoY)
	} else {
		// slope = (y2 - y1) / (x2 - x1)
		slope = f.div(f.sub(q.y, p.y), f.sub(q.x, p.x))
	}

	// x3 = slope^2 - x1 - x2, y3 = slope * (x1 - x3) - y1
	x3 := f.sub(f.sub(f.pow(slope, 2), p.x), q.x)
	y3 := f.sub(f.mul(slope, f.sub(p.x, x3)), p.y)
	if f.err != nil {
		return nil, f.err
	}
	return &Point{curve: p.curve, x: x3, y: y3}, nil
}

// ScalarMul returns k * p by double-and-add over the bits of k from least to
// most significant. When the curve order is known, k is reduced modulo the
// order first. Otherwise a negative k multiplies -p by |k|.
func (p *Point) ScalarMul(k *big.Int) (*Point, error) {
	if k == nil {
		return nil, ecc.NewError(ecc.ErrRange, "curves: scalar must be set")
	}
	coef := new(big.Int).Set(k)
	current := p
	if p.curve.order != nil {
		coef.Mod(coef, p.curve.order)
	} else if coef.Sign() < 0 {
		coef.Neg(coef)
		current = p.Neg()
	}

	result := p.curve.Infinity()
	var err error
	for coef.Sign() > 0 {
		if coef.Bit(0) == 1 {
			if result, err = result.Add(current); err != nil {
				return nil, err
			}
		}
		coef.Rsh(coef, 1)
		if coef.Sign() == 0 {
			break
		}
		if current, err = current.Add(current); err != nil {
			return nil, err
		}
	}
	return result, nil
}
