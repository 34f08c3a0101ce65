package e2e

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	decred "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/ecdsa"
)

func trials(full int) int {
	if testing.Short() {
		return full / 20
	}
	return full
}

// TestSignVerifyRoundTrip signs random hashes with random keys and checks
// every signature, cross-checking a sample with decred.
func TestSignVerifyRoundTrip(t *testing.T) {
	bound := new(big.Int).Lsh(big.NewInt(1), 256)

	for i := 0; i < trials(1000); i++ {
		key, err := ecdsa.GeneratePrivateKey(rand.Reader)
		require.NoError(t, err)
		z, err := rand.Int(rand.Reader, bound)
		require.NoError(t, err)

		sig, err := key.Sign(z)
		require.NoError(t, err)
		require.True(t, sig.IsLowS(), "trial %d: high s %v", i, sig)
		require.NoError(t, ecdsa.CheckSignature(key.PublicKey(), z, sig), "trial %d", i)

		if i%10 == 0 {
			require.True(t, ecdsa.VerifyReference(key.PublicKey(), z, sig),
				"trial %d: decred rejected %v", i, sig)
		}
	}
}

// TestVerifyDecredSignatures checks that signatures produced by decred verify.
func TestVerifyDecredSignatures(t *testing.T) {
	for i := 0; i < trials(100); i++ {
		var secret [32]byte
		_, err := rand.Read(secret[:])
		require.NoError(t, err)
		priv := secp256k1.PrivKeyFromBytes(secret[:])

		var hash [32]byte
		_, err = rand.Read(hash[:])
		require.NoError(t, err)
		sig, err := ecdsa.FromReference(decred.Sign(priv, hash[:]))
		require.NoError(t, err)

		pub := priv.PubKey()
		point, err := curves.NewS256Point(pub.X(), pub.Y())
		require.NoError(t, err)

		require.True(t, ecdsa.Verify(point, new(big.Int).SetBytes(hash[:]), sig), "trial %d", i)
	}
}

// TestPublicKeysAgree compares secret * G between both implementations.
func TestPublicKeysAgree(t *testing.T) {
	for i := 0; i < trials(100); i++ {
		key, err := ecdsa.GeneratePrivateKey(nil)
		require.NoError(t, err)

		priv := secp256k1.PrivKeyFromBytes(key.Secret().FillBytes(make([]byte, 32)))
		pub := priv.PubKey()

		require.Equal(t, 0, pub.X().Cmp(key.PublicKey().X().Num()), "trial %d", i)
		require.Equal(t, 0, pub.Y().Cmp(key.PublicKey().Y().Num()), "trial %d", i)
	}
}
