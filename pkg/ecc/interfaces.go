package ecc

import "math/big"

// FieldArithmetic is the arithmetic of an element of a prime field.
// Every method returns a new value; the receiver is never modified.
type FieldArithmetic[T any] interface {
	// Add returns self + rhs. Both operands must share the same prime.
	Add(rhs T) (T, error)

	// Sub returns self - rhs.
	Sub(rhs T) (T, error)

	// Mul returns self * rhs.
	Mul(rhs T) (T, error)

	// Div returns self * rhs^-1. Fails with ErrDivisionByZero for a zero rhs.
	Div(rhs T) (T, error)

	// Neg returns the additive inverse.
	Neg() T

	// Pow returns self^exp. Negative exponents are allowed.
	Pow(exp *big.Int) (T, error)

	// Equal reports whether both values are the same element of the same field.
	Equal(rhs T) bool
}

// GroupArithmetic is the arithmetic of a point in an elliptic curve group.
type GroupArithmetic[T any] interface {
	// Add returns self + rhs. Both points must be on the same curve.
	Add(rhs T) (T, error)

	// Neg returns the inverse point.
	Neg() T

	// ScalarMul returns k * self.
	ScalarMul(k *big.Int) (T, error)

	// IsInfinity reports whether this is the group identity.
	IsInfinity() bool

	// Equal reports whether both points are the same point on the same curve.
	Equal(rhs T) bool
}
