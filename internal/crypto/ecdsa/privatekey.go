package ecdsa

import (
	crand "crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/field"
	"github.com/smallyu/go-ecmath/pkg/ecc"
)

// maxNonceDraws bounds the redraws of a degenerate nonce. Reaching it means
// the random source is broken.
const maxNonceDraws = 64

var one = big.NewInt(1)

// errDegenerateNonce marks a nonce that yields k, r or s equal to zero.
var errDegenerateNonce = errors.New("ecdsa: degenerate nonce")

// PrivateKey is a secp256k1 secret scalar together with its public point
// secret * G.
type PrivateKey struct {
	secret *big.Int
	point  *curves.Point
}

// NewPrivateKey returns the key for secret, which must be in [1, n-1].
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret == nil || secret.Sign() <= 0 || secret.Cmp(order) >= 0 {
		return nil, ecc.NewError(ecc.ErrInvalidPrivateKey, fmt.Sprintf(
			"ecdsa: secret %v not in range 1 to %s", secret, new(big.Int).Sub(order, one)))
	}
	point, err := curves.Generator().ScalarMul(secret)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{secret: new(big.Int).Set(secret), point: point}, nil
}

// GeneratePrivateKey draws a secret uniformly from [1, n-1].
func GeneratePrivateKey(random io.Reader) (*PrivateKey, error) {
	if random == nil {
		random = crand.Reader
	}
	// Generate random integer in [0, n-2], then shift by one
	secret, err := crand.Int(random, new(big.Int).Sub(order, one))
	if err != nil {
		return nil, fmt.Errorf("ecdsa: failed to generate secret: %w", err)
	}
	return NewPrivateKey(secret.Add(secret, one))
}

// Secret returns a copy of the secret scalar.
func (k *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(k.secret)
}

// PublicKey returns the public point secret * G.
func (k *PrivateKey) PublicKey() *curves.Point {
	return k.point
}

// Sign signs the message hash z with a nonce drawn from crypto/rand.
func (k *PrivateKey) Sign(z *big.Int) (*Signature, error) {
	return k.SignWithRand(crand.Reader, z)
}

// SignWithRand signs the message hash z with a nonce drawn uniformly from
// [0, n) using random. random must be a cryptographically secure source:
// two signatures sharing a nonce reveal the secret.
// The returned s is always in the lower half of [1, n-1].
func (k *PrivateKey) SignWithRand(random io.Reader, z *big.Int) (*Signature, error) {
	if z == nil {
		return nil, ecc.NewError(ecc.ErrRange, "ecdsa: message hash must be set")
	}
	if random == nil {
		random = crand.Reader
	}
	e, err := field.Reduce(z, order)
	if err != nil {
		return nil, err
	}
	d, err := field.New(k.secret, order)
	if err != nil {
		return nil, err
	}

	for i := 0; i < maxNonceDraws; i++ {
		nonce, err := crand.Int(random, order)
		if err != nil {
			return nil, fmt.Errorf("ecdsa: failed to draw nonce: %w", err)
		}
		sig, err := signWithNonce(d, e, nonce)
		if errors.Is(err, errDegenerateNonce) {
			continue
		}
		return sig, err
	}
	return nil, fmt.Errorf("ecdsa: no usable nonce after %d draws", maxNonceDraws)
}

// signWithNonce computes the signature for secret d, hash e and nonce k.
// It fails with errDegenerateNonce when k, r or s is zero.
func signWithNonce(d, e *field.Element, k *big.Int) (*Signature, error) {
	if k.Sign() == 0 {
		return nil, errDegenerateNonce
	}
	// r = (k * G).x mod n
	R, err := curves.Generator().ScalarMul(k)
	if err != nil {
		return nil, err
	}
	if R.IsInfinity() {
		return nil, errDegenerateNonce
	}
	r, err := field.Reduce(R.X().Num(), order)
	if err != nil {
		return nil, err
	}
	if r.IsZero() {
		return nil, errDegenerateNonce
	}

	// s = (z + r * secret) / k mod n
	fk, err := field.New(k, order)
	if err != nil {
		return nil, err
	}
	kInv, err := fk.Inverse()
	if err != nil {
		return nil, err
	}
	rd, err := r.Mul(d)
	if err != nil {
		return nil, err
	}
	sum, err := e.Add(rd)
	if err != nil {
		return nil, err
	}
	fs, err := sum.Mul(kInv)
	if err != nil {
		return nil, err
	}
	if fs.IsZero() {
		return nil, errDegenerateNonce
	}

	s := fs.Num()
	if s.Cmp(halfOrder) > 0 {
		s.Sub(order, s)
	}
	return &Signature{r: r.Num(), s: s}, nil
}
