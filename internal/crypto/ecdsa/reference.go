package ecdsa

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decred "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
)

// VerifyReference checks sig with the decred secp256k1 implementation. It is
// used to cross-check Verify and must agree with it on every input.
func VerifyReference(pub *curves.Point, z *big.Int, sig *Signature) bool {
	if pub == nil || pub.IsInfinity() || !curves.IsS256(pub) || sig == nil || z == nil {
		return false
	}
	if checkScalar("r", sig.r) != nil || checkScalar("s", sig.s) != nil {
		return false
	}

	var x, y secp256k1.FieldVal
	x.SetByteSlice(pub.X().Num().Bytes())
	y.SetByteSlice(pub.Y().Num().Bytes())
	key := secp256k1.NewPublicKey(&x, &y)

	var r, s secp256k1.ModNScalar
	r.SetByteSlice(sig.r.Bytes())
	s.SetByteSlice(sig.s.Bytes())

	// decred reads the hash as a 32-byte big-endian integer mod n.
	hash := new(big.Int).Mod(z, order).FillBytes(make([]byte, 32))
	return decred.NewSignature(&r, &s).Verify(hash, key)
}

// FromReference converts a decred signature.
func FromReference(sig *decred.Signature) (*Signature, error) {
	r, s := sig.R(), sig.S()
	rb, sb := r.Bytes(), s.Bytes()
	return NewSignature(new(big.Int).SetBytes(rb[:]), new(big.Int).SetBytes(sb[:]))
}
