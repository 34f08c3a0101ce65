package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/field"
	"github.com/smallyu/go-ecmath/pkg/ecc"
)

// Verify reports whether sig is a valid signature of the message hash z by
// the public point pub.
func Verify(pub *curves.Point, z *big.Int, sig *Signature) bool {
	return CheckSignature(pub, z, sig) == nil
}

// CheckSignature is Verify returning the reason a signature is rejected.
//
// It rejects r or s outside [1, n-1], a public point at infinity or off
// secp256k1, and a reconstructed point u*G + v*pub that is infinity or whose
// x coordinate is not r modulo n. High-s signatures are accepted.
func CheckSignature(pub *curves.Point, z *big.Int, sig *Signature) error {
	if sig == nil {
		return ecc.NewError(ecc.ErrInvalidSignature, "ecdsa: signature is missing")
	}
	if err := checkScalar("r", sig.r); err != nil {
		return err
	}
	if err := checkScalar("s", sig.s); err != nil {
		return err
	}
	if z == nil {
		return ecc.NewError(ecc.ErrRange, "ecdsa: message hash must be set")
	}
	if pub == nil || pub.IsInfinity() {
		return ecc.NewError(ecc.ErrPointAtInfinity,
			"ecdsa: public point is the point at infinity")
	}
	if !curves.IsS256(pub) {
		return ecc.NewError(ecc.ErrCurveMismatch, fmt.Sprintf(
			"ecdsa: public point %v is not on %s", pub, curves.S256Name))
	}

	// s_inv = s^(n-2) mod n
	s, err := field.New(sig.s, order)
	if err != nil {
		return err
	}
	sInv, err := s.Inverse()
	if err != nil {
		return err
	}

	// u = z * s_inv mod n, v = r * s_inv mod n
	e, err := field.Reduce(z, order)
	if err != nil {
		return err
	}
	u, err := e.Mul(sInv)
	if err != nil {
		return err
	}
	r, err := field.New(sig.r, order)
	if err != nil {
		return err
	}
	v, err := r.Mul(sInv)
	if err != nil {
		return err
	}

	// total = u*G + v*pub
	uG, err := curves.Generator().ScalarMul(u.Num())
	if err != nil {
		return err
	}
	vP, err := pub.ScalarMul(v.Num())
	if err != nil {
		return err
	}
	total, err := uG.Add(vP)
	if err != nil {
		return err
	}
	if total.IsInfinity() {
		return ecc.NewError(ecc.ErrInvalidSignature,
			"ecdsa: reconstructed point is the point at infinity")
	}

	x := new(big.Int).Mod(total.X().Num(), order)
	if x.Cmp(sig.r) != 0 {
		return ecc.NewError(ecc.ErrInvalidSignature, fmt.Sprintf(
			"ecdsa: reconstructed x %s does not match r %s", x, sig.r))
	}
	return nil
}
