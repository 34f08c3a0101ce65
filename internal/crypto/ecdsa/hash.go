package ecdsa

import (
	"crypto/sha256"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// HashAlgorithm names a message digest used to derive the hash z.
type HashAlgorithm string

const (
	SHA256    HashAlgorithm = "sha256"
	Hash256   HashAlgorithm = "hash256" // double SHA-256, as in Bitcoin
	Keccak256 HashAlgorithm = "keccak256"
)

// HashAlgorithms lists the supported digests.
var HashAlgorithms = []HashAlgorithm{SHA256, Hash256, Keccak256}

// ParseHashAlgorithm maps a case-insensitive name to a HashAlgorithm.
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	alg := HashAlgorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range HashAlgorithms {
		if alg == known {
			return alg, nil
		}
	}
	return "", fmt.Errorf("ecdsa: unknown hash algorithm %q", name)
}

// Digest returns the raw digest of msg.
func (alg HashAlgorithm) Digest(msg []byte) ([]byte, error) {
	switch alg {
	case SHA256:
		h := sha256.Sum256(msg)
		return h[:], nil
	case Hash256:
		first := sha256.Sum256(msg)
		h := sha256.Sum256(first[:])
		return h[:], nil
	case Keccak256:
		h := sha3.NewLegacyKeccak256()
		h.Write(msg)
		return h.Sum(nil), nil
	default:
		return nil, fmt.Errorf("ecdsa: unknown hash algorithm %q", string(alg))
	}
}

// HashMessage returns the digest of msg as a big-endian integer z in
// [0, 2^256).
func HashMessage(alg HashAlgorithm, msg []byte) (*big.Int, error) {
	digest, err := alg.Digest(msg)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(digest), nil
}
