package curves

import (
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecmath/pkg/ecc"
)

// Curve is the coordinate-pair view of a curve backend. The point at
// infinity is (0, 0), as in crypto/elliptic.
type Curve interface {
	// Name identifies the backend.
	Name() string

	// Params returns the curve parameters (Order, etc.)
	Params() *elliptic.CurveParams

	// NewScalar draws a uniform scalar in [0, N) from random.
	NewScalar(random io.Reader) (*big.Int, error)

	// ScalarBaseMult computes k * G (base point multiplication)
	ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, error)

	// ScalarMult computes k * P
	ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int, error)

	// Add combines two points
	Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error)
}

func s256Params(name string) *elliptic.CurveParams {
	return &elliptic.CurveParams{
		P:       Prime(),
		N:       Order(),
		B:       big.NewInt(7),
		Gx:      new(big.Int).Set(s256Gx),
		Gy:      new(big.Int).Set(s256Gy),
		BitSize: 256,
		Name:    name,
	}
}

func newScalar(random io.Reader, n *big.Int) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}
	// Generate random integer in [0, N-1]
	return rand.Int(random, n)
}

// Secp256k1 is the Curve backed by this package's affine Point arithmetic.
type Secp256k1 struct{}

// NewSecp256k1 returns the pure secp256k1 backend.
func NewSecp256k1() Curve {
	return &Secp256k1{}
}

func (c *Secp256k1) Name() string { return S256Name }

func (c *Secp256k1) Params() *elliptic.CurveParams {
	return s256Params(S256Name)
}

func (c *Secp256k1) NewScalar(random io.Reader) (*big.Int, error) {
	return newScalar(random, s256Order)
}

func (c *Secp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, error) {
	r, err := Generator().ScalarMul(k)
	if err != nil {
		return nil, nil, err
	}
	x, y := Coordinates(r)
	return x, y, nil
}

func (c *Secp256k1) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int, error) {
	p, err := FromCoordinates(Px, Py)
	if err != nil {
		return nil, nil, err
	}
	r, err := p.ScalarMul(k)
	if err != nil {
		return nil, nil, err
	}
	x, y := Coordinates(r)
	return x, y, nil
}

func (c *Secp256k1) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error) {
	p, err := FromCoordinates(x1, y1)
	if err != nil {
		return nil, nil, err
	}
	q, err := FromCoordinates(x2, y2)
	if err != nil {
		return nil, nil, err
	}
	r, err := p.Add(q)
	if err != nil {
		return nil, nil, err
	}
	x, y := Coordinates(r)
	return x, y, nil
}

// Coordinates returns the affine coordinates of a secp256k1 point, (0, 0) at
// infinity.
func Coordinates(p *Point) (*big.Int, *big.Int) {
	if p.IsInfinity() {
		return new(big.Int), new(big.Int)
	}
	return p.x.Num(), p.y.Num()
}

// FromCoordinates is the inverse of Coordinates.
func FromCoordinates(x, y *big.Int) (*Point, error) {
	if x.Sign() == 0 && y.Sign() == 0 {
		return s256Curve.Infinity(), nil
	}
	return NewS256Point(x, y)
}

// DecredSecp256k1 is the Curve backed by github.com/decred/dcrd/dcrec/secp256k1.
// It serves as a reference for cross-checking the pure backend.
type DecredSecp256k1 struct{}

// NewDecredSecp256k1 returns the decred secp256k1 backend.
func NewDecredSecp256k1() Curve {
	return &DecredSecp256k1{}
}

func (c *DecredSecp256k1) Name() string { return S256Name + "-decred" }

func (c *DecredSecp256k1) Params() *elliptic.CurveParams {
	return secp256k1.S256().Params()
}

func (c *DecredSecp256k1) NewScalar(random io.Reader) (*big.Int, error) {
	return newScalar(random, c.Params().N)
}

func (c *DecredSecp256k1) ScalarBaseMult(k *big.Int) (*big.Int, *big.Int, error) {
	x, y := secp256k1.S256().ScalarBaseMult(c.reduce(k))
	return x, y, nil
}

func (c *DecredSecp256k1) ScalarMult(Px, Py, k *big.Int) (*big.Int, *big.Int, error) {
	if err := c.check(Px, Py); err != nil {
		return nil, nil, err
	}
	x, y := secp256k1.S256().ScalarMult(Px, Py, c.reduce(k))
	return x, y, nil
}

func (c *DecredSecp256k1) Add(x1, y1, x2, y2 *big.Int) (*big.Int, *big.Int, error) {
	if err := c.check(x1, y1); err != nil {
		return nil, nil, err
	}
	if err := c.check(x2, y2); err != nil {
		return nil, nil, err
	}
	x, y := secp256k1.S256().Add(x1, y1, x2, y2)
	return x, y, nil
}

// reduce maps k into [0, N) and returns its big-endian bytes.
func (c *DecredSecp256k1) reduce(k *big.Int) []byte {
	return new(big.Int).Mod(k, c.Params().N).Bytes()
}

func (c *DecredSecp256k1) check(x, y *big.Int) error {
	if x.Sign() == 0 && y.Sign() == 0 {
		return nil
	}
	if !secp256k1.S256().IsOnCurve(x, y) {
		return ecc.NewError(ecc.ErrNotOnCurve, fmt.Sprintf(
			"curves: (%s, %s) is not on the curve %s", x, y, S256Name))
	}
	return nil
}
