package benchmark

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/ecdsa"
	"github.com/smallyu/go-ecmath/internal/crypto/field"
)

func randomScalar(b *testing.B) *big.Int {
	k, err := rand.Int(rand.Reader, curves.Order())
	if err != nil {
		b.Fatal(err)
	}
	return k
}

func BenchmarkFieldInverse(b *testing.B) {
	e, err := curves.NewS256Element(randomScalar(b))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Inverse(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFieldMul(b *testing.B) {
	x, err := field.New(randomScalar(b), curves.Prime())
	if err != nil {
		b.Fatal(err)
	}
	y, err := field.New(randomScalar(b), curves.Prime())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := x.Mul(y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPointAdd(b *testing.B) {
	g := curves.Generator()
	p, err := g.ScalarMul(randomScalar(b))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.Add(p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarBaseMult(b *testing.B) {
	for _, c := range []curves.Curve{curves.NewSecp256k1(), curves.NewDecredSecp256k1()} {
		b.Run(c.Name(), func(b *testing.B) {
			k := randomScalar(b)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := c.ScalarBaseMult(k); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSign(b *testing.B) {
	key, err := ecdsa.GeneratePrivateKey(nil)
	if err != nil {
		b.Fatal(err)
	}
	z := randomScalar(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := key.Sign(z); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkVerify(b *testing.B) {
	key, err := ecdsa.GeneratePrivateKey(nil)
	if err != nil {
		b.Fatal(err)
	}
	z := randomScalar(b)
	sig, err := key.Sign(z)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !ecdsa.Verify(key.PublicKey(), z, sig) {
			b.Fatal("signature rejected")
		}
	}
}
