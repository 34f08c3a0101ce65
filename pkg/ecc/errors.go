package ecc

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrRange is returned when a field element is created with a number
	// outside [0, prime).
	ErrRange = ErrorKind("ErrRange")

	// ErrFieldMismatch is returned when two field elements over different
	// primes are combined.
	ErrFieldMismatch = ErrorKind("ErrFieldMismatch")

	// ErrCurveMismatch is returned when two points on different curves are
	// combined.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrNotOnCurve is returned when a point does not satisfy the curve
	// equation.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrDivisionByZero is returned when the zero element is inverted.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrInvalidSignature is returned when a signature has r or s outside
	// [1, n-1].
	ErrInvalidSignature = ErrorKind("ErrInvalidSignature")

	// ErrInvalidPrivateKey is returned when a secret is outside [1, n-1].
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrPointAtInfinity is returned when an operation needs an affine point
	// and receives the identity.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to field, curve or signature arithmetic.
// It has full support for errors.Is and errors.As, so the caller can ascertain
// the specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error given a set of arguments.
func NewError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
