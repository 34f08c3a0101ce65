//go:build js && wasm

package main

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"syscall/js"

	jsoniter "github.com/json-iterator/go"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/ecdsa"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Keys generated in this page, by handle. Secrets never cross into JS.
var keys = make(map[string]*ecdsa.PrivateKey)

func main() {
	c := make(chan struct{}, 0)

	fmt.Println("Go ECMath WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECC", map[string]interface{}{
		"NewKey":    js.FuncOf(NewKey),
		"PublicKey": js.FuncOf(PublicKey),
		"Sign":      js.FuncOf(Sign),
		"Verify":    js.FuncOf(Verify),
	})

	<-c
}

// Integers cross the boundary as hex strings; JS numbers lose precision.
type keyDTO struct {
	Handle string `json:"handle"`
	X      string `json:"x"`
	Y      string `json:"y"`
}

type digestDTO struct {
	Message *string `json:"message,omitempty"`
	Z       string  `json:"z,omitempty"`
	Hash    string  `json:"hash,omitempty"`
}

type signatureDTO struct {
	Z string `json:"z"`
	R string `json:"r"`
	S string `json:"s"`
}

type verifyDTO struct {
	digestDTO
	X string `json:"x"`
	Y string `json:"y"`
	R string `json:"r"`
	S string `json:"s"`
}

// NewKey generates a key pair and keeps the secret in Go.
// Returns:
// JSON string {handle, x, y}
func NewKey(this js.Value, args []js.Value) interface{} {
	key, err := ecdsa.GeneratePrivateKey(rand.Reader)
	if err != nil {
		return fmt.Sprintf("error: key generation failed: %v", err)
	}

	handle := fmt.Sprintf("key-%d", len(keys)+1)
	keys[handle] = key

	return marshal(newKeyDTO(handle, key))
}

// PublicKey returns the public key of a stored key.
// Arguments:
// 0: key handle (string)
// Returns:
// JSON string {handle, x, y}
func PublicKey(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (handle)"
	}
	handle := args[0].String()
	key, ok := keys[handle]
	if !ok {
		return "error: key not found"
	}
	return marshal(newKeyDTO(handle, key))
}

// Sign signs with a stored key.
// Arguments:
// 0: key handle (string)
// 1: JSON string {message | z, hash}
// Returns:
// JSON string {z, r, s}
func Sign(this js.Value, args []js.Value) interface{} {
	if len(args) != 2 {
		return "error: expected 2 arguments (handle, jsonDigest)"
	}
	key, ok := keys[args[0].String()]
	if !ok {
		return "error: key not found"
	}

	var input digestDTO
	if err := json.Unmarshal([]byte(args[1].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}
	z, err := input.digest()
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}

	sig, err := key.Sign(z)
	if err != nil {
		return fmt.Sprintf("error: sign failed: %v", err)
	}
	return marshal(signatureDTO{Z: z.Text(16), R: sig.R().Text(16), S: sig.S().Text(16)})
}

// Verify checks a signature.
// Arguments:
// 0: JSON string {x, y, r, s, message | z, hash}
// Returns:
// JSON string {valid, reason}
func Verify(this js.Value, args []js.Value) interface{} {
	if len(args) != 1 {
		return "error: expected 1 argument (jsonParams)"
	}

	var input verifyDTO
	if err := json.Unmarshal([]byte(args[0].String()), &input); err != nil {
		return fmt.Sprintf("error: invalid json: %v", err)
	}

	resp := map[string]interface{}{"valid": true}
	if err := input.check(); err != nil {
		resp = map[string]interface{}{"valid": false, "reason": err.Error()}
	}
	return marshal(resp)
}

// Helpers

func newKeyDTO(handle string, key *ecdsa.PrivateKey) keyDTO {
	pub := key.PublicKey()
	return keyDTO{Handle: handle, X: pub.X().Num().Text(16), Y: pub.Y().Num().Text(16)}
}

func (d digestDTO) digest() (*big.Int, error) {
	if d.Z != "" {
		return parseHex("z", d.Z)
	}
	if d.Message == nil {
		return nil, fmt.Errorf("one of message or z is required")
	}
	name := d.Hash
	if name == "" {
		name = string(ecdsa.SHA256)
	}
	alg, err := ecdsa.ParseHashAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return ecdsa.HashMessage(alg, []byte(*d.Message))
}

func (d verifyDTO) check() error {
	var v [4]*big.Int
	for i, f := range []struct{ name, val string }{{"x", d.X}, {"y", d.Y}, {"r", d.R}, {"s", d.S}} {
		n, err := parseHex(f.name, f.val)
		if err != nil {
			return err
		}
		v[i] = n
	}
	z, err := d.digest()
	if err != nil {
		return err
	}

	pub, err := curves.NewS256Point(v[0], v[1])
	if err != nil {
		return err
	}
	sig, err := ecdsa.NewSignature(v[2], v[3])
	if err != nil {
		return err
	}
	return ecdsa.CheckSignature(pub, z, sig)
}

func parseHex(name, s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%s: %q is not a hex integer", name, s)
	}
	return n, nil
}

func marshal(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: marshal failed: %v", err)
	}
	return string(b)
}
