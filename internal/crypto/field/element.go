// Package field implements arithmetic over a prime field on arbitrary
// precision integers.
package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/pkg/ecc"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

var _ ecc.FieldArithmetic[*Element] = (*Element)(nil)

// Element is a number modulo a prime. It is immutable: every operation
// returns a new Element and the receiver is never modified.
// The prime is assumed to be prime and is not checked.
type Element struct {
	num   *big.Int
	prime *big.Int
}

// New returns the element num of the field of order prime.
// num must be in [0, prime).
func New(num, prime *big.Int) (*Element, error) {
	if num == nil || prime == nil {
		return nil, ecc.NewError(ecc.ErrRange, "field: num and prime must be set")
	}
	if num.Sign() < 0 || num.Cmp(prime) >= 0 {
		return nil, ecc.NewError(ecc.ErrRange, fmt.Sprintf(
			"field: num %s not in field range 0 to %s", num,
			new(big.Int).Sub(prime, one)))
	}
	return &Element{
		num:   new(big.Int).Set(num),
		prime: new(big.Int).Set(prime),
	}, nil
}

// NewInt64 is New for small operands.
func NewInt64(num, prime int64) (*Element, error) {
	return New(big.NewInt(num), big.NewInt(prime))
}

// Reduce returns v mod prime as an element, for any integer v.
func Reduce(v, prime *big.Int) (*Element, error) {
	if v == nil || prime == nil || prime.Sign() <= 0 {
		return nil, ecc.NewError(ecc.ErrRange, fmt.Sprintf(
			"field: cannot reduce %v modulo %v", v, prime))
	}
	return &Element{
		num:   new(big.Int).Mod(v, prime),
		prime: new(big.Int).Set(prime),
	}, nil
}

// Num returns a copy of the element's value.
func (e *Element) Num() *big.Int {
	return new(big.Int).Set(e.num)
}

// Prime returns a copy of the field order.
func (e *Element) Prime() *big.Int {
	return new(big.Int).Set(e.prime)
}

// IsZero reports whether e is the additive identity.
func (e *Element) IsZero() bool {
	return e.num.Sign() == 0
}

// Equal reports whether e and rhs hold the same number in the same field.
func (e *Element) Equal(rhs *Element) bool {
	if e == nil || rhs == nil {
		return e == rhs
	}
	return e.prime.Cmp(rhs.prime) == 0 && e.num.Cmp(rhs.num) == 0
}

// SameField reports whether e and rhs share a prime.
func (e *Element) SameField(rhs *Element) bool {
	return e.prime.Cmp(rhs.prime) == 0
}

func (e *Element) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", e.prime, e.num)
}

// Add returns e + rhs.
func (e *Element) Add(rhs *Element) (*Element, error) {
	if err := e.checkField("add", rhs); err != nil {
		return nil, err
	}
	return e.normalized(new(big.Int).Add(e.num, rhs.num)), nil
}

// Sub returns e - rhs.
func (e *Element) Sub(rhs *Element) (*Element, error) {
	if err := e.checkField("subtract", rhs); err != nil {
		return nil, err
	}
	return e.normalized(new(big.Int).Sub(e.num, rhs.num)), nil
}

// Mul returns e * rhs.
func (e *Element) Mul(rhs *Element) (*Element, error) {
	if err := e.checkField("multiply", rhs); err != nil {
		return nil, err
	}
	return e.normalized(new(big.Int).Mul(e.num, rhs.num)), nil
}

// MulInt64 returns c * e for a small integer c, as used by the curve
// formulas (2y, 3x²).
func (e *Element) MulInt64(c int64) *Element {
	return e.normalized(new(big.Int).Mul(e.num, big.NewInt(c)))
}

// Neg returns -e.
func (e *Element) Neg() *Element {
	return e.normalized(new(big.Int).Neg(e.num))
}

// Pow returns e^exp. The exponent is reduced modulo prime-1 first, which is
// valid for non-zero elements by Fermat's little theorem and lets negative
// exponents compute inverses. A zero base with a negative exponent fails
// with ErrDivisionByZero.
func (e *Element) Pow(exp *big.Int) (*Element, error) {
	if e.prime.Cmp(one) == 0 {
		return e.normalized(new(big.Int)), nil
	}
	if e.IsZero() {
		switch exp.Sign() {
		case -1:
			return nil, ecc.NewError(ecc.ErrDivisionByZero, fmt.Sprintf(
				"field: cannot raise %v to negative power %s", e, exp))
		case 0:
			return e.normalized(new(big.Int).Set(one)), nil
		default:
			return e.normalized(new(big.Int)), nil
		}
	}
	order := new(big.Int).Sub(e.prime, one)
	n := new(big.Int).Mod(exp, order)
	return &Element{
		num:   new(big.Int).Exp(e.num, n, e.prime),
		prime: e.prime,
	}, nil
}

// PowInt64 is Pow for small exponents.
func (e *Element) PowInt64(exp int64) (*Element, error) {
	return e.Pow(big.NewInt(exp))
}

// Inverse returns e^-1 computed as e^(prime-2).
func (e *Element) Inverse() (*Element, error) {
	if e.IsZero() {
		return nil, ecc.NewError(ecc.ErrDivisionByZero, fmt.Sprintf(
			"field: %v has no inverse", e))
	}
	return e.Pow(new(big.Int).Sub(e.prime, two))
}

// Div returns e / rhs = e * rhs^(prime-2).
func (e *Element) Div(rhs *Element) (*Element, error) {
	if err := e.checkField("divide", rhs); err != nil {
		return nil, err
	}
	if rhs.IsZero() {
		return nil, ecc.NewError(ecc.ErrDivisionByZero, fmt.Sprintf(
			"field: cannot divide %v by zero", e))
	}
	inv, err := rhs.Inverse()
	if err != nil {
		return nil, err
	}
	return e.Mul(inv)
}

func (e *Element) checkField(op string, rhs *Element) error {
	if rhs == nil {
		return ecc.NewError(ecc.ErrFieldMismatch, fmt.Sprintf(
			"field: cannot %s %v and nil", op, e))
	}
	if !e.SameField(rhs) {
		return ecc.NewError(ecc.ErrFieldMismatch, fmt.Sprintf(
			"field: cannot %s %v and %v in different fields", op, e, rhs))
	}
	return nil
}

// normalized wraps v into [0, prime). The prime is shared, never mutated.
func (e *Element) normalized(v *big.Int) *Element {
	if v.Sign() < 0 || v.Cmp(e.prime) >= 0 {
		v.Mod(v, e.prime)
	}
	return &Element{num: v, prime: e.prime}
}
