// Package ecdsa implements ECDSA signing and verification over secp256k1 on
// top of the affine point arithmetic in package curves.
package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/pkg/ecc"
)

var (
	// Curve order and half order, used for the low-s rule.
	order     = curves.Order()
	halfOrder = new(big.Int).Rsh(order, 1)
)

// Signature is an ECDSA signature (r, s).
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature returns the signature (r, s). Both values must be in [1, n-1].
func NewSignature(r, s *big.Int) (*Signature, error) {
	if err := checkScalar("r", r); err != nil {
		return nil, err
	}
	if err := checkScalar("s", s); err != nil {
		return nil, err
	}
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}, nil
}

func checkScalar(name string, v *big.Int) error {
	if v == nil {
		return ecc.NewError(ecc.ErrInvalidSignature, fmt.Sprintf(
			"ecdsa: signature %s is missing", name))
	}
	if v.Sign() <= 0 {
		return ecc.NewError(ecc.ErrInvalidSignature, fmt.Sprintf(
			"ecdsa: signature %s is %s, must be positive", name, v))
	}
	if v.Cmp(order) >= 0 {
		return ecc.NewError(ecc.ErrInvalidSignature, fmt.Sprintf(
			"ecdsa: signature %s %s is not less than the group order %s", name, v, order))
	}
	return nil
}

// R returns a copy of r.
func (sig *Signature) R() *big.Int { return new(big.Int).Set(sig.r) }

// S returns a copy of s.
func (sig *Signature) S() *big.Int { return new(big.Int).Set(sig.s) }

// IsLowS reports whether s is in the lower half [1, n/2].
func (sig *Signature) IsLowS() bool {
	return sig.s.Cmp(halfOrder) <= 0
}

// Equal reports whether both signatures have the same r and s.
func (sig *Signature) Equal(other *Signature) bool {
	if sig == nil || other == nil {
		return sig == other
	}
	return sig.r.Cmp(other.r) == 0 && sig.s.Cmp(other.s) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%s,%s)", sig.r, sig.s)
}
