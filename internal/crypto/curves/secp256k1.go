package curves

import (
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/field"
)

// secp256k1 domain parameters, see https://www.secg.org/sec2-v2.pdf.
const (
	S256Name = "secp256k1"

	s256OrderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	s256GxHex    = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	s256GyHex    = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

var (
	// p = 2^256 - 2^32 - 977
	s256Prime = func() *big.Int {
		p := new(big.Int).Lsh(big.NewInt(1), 256)
		p.Sub(p, new(big.Int).Lsh(big.NewInt(1), 32))
		return p.Sub(p, big.NewInt(977))
	}()
	s256Order = mustHex(s256OrderHex)
	s256Gx    = mustHex(s256GxHex)
	s256Gy    = mustHex(s256GyHex)

	s256Curve = func() *Weierstrass {
		a, err := field.New(big.NewInt(0), s256Prime)
		if err != nil {
			panic(err)
		}
		b, err := field.New(big.NewInt(7), s256Prime)
		if err != nil {
			panic(err)
		}
		return &Weierstrass{name: S256Name, a: a, b: b, order: s256Order}
	}()
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curves: invalid hex constant " + s)
	}
	return v
}

// S256 returns the secp256k1 curve y^2 = x^3 + 7 with its group order.
func S256() *Weierstrass {
	return s256Curve
}

// Prime returns the secp256k1 field prime.
func Prime() *big.Int {
	return new(big.Int).Set(s256Prime)
}

// Order returns the secp256k1 group order n.
func Order() *big.Int {
	return new(big.Int).Set(s256Order)
}

// Generator returns the secp256k1 base point G, rebuilt from the published
// coordinates.
func Generator() *Point {
	g, err := NewS256Point(s256Gx, s256Gy)
	if err != nil {
		panic(err)
	}
	return g
}

// NewS256Element returns num as an element of the secp256k1 base field.
func NewS256Element(num *big.Int) (*field.Element, error) {
	return field.New(num, s256Prime)
}

// NewS256Point returns the secp256k1 point (x, y).
func NewS256Point(x, y *big.Int) (*Point, error) {
	fx, err := NewS256Element(x)
	if err != nil {
		return nil, err
	}
	fy, err := NewS256Element(y)
	if err != nil {
		return nil, err
	}
	return s256Curve.NewPoint(fx, fy)
}

// IsS256 reports whether p lies on secp256k1.
func IsS256(p *Point) bool {
	return p != nil && p.curve.Equal(s256Curve)
}
