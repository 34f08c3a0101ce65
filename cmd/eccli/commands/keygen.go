package commands

import (
	"crypto/rand"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecmath/internal/crypto/ecdsa"
)

type keyResult struct {
	Secret string `json:"secret,omitempty"`
	X      string `json:"x"`
	Y      string `json:"y"`
}

func (r keyResult) fields() [][2]string {
	var f [][2]string
	if r.Secret != "" {
		f = append(f, [2]string{"secret", r.Secret})
	}
	return append(f, [2]string{"x", r.X}, [2]string{"y", r.Y})
}

func newKeyResult(key *ecdsa.PrivateKey, withSecret bool) keyResult {
	pub := key.PublicKey()
	r := keyResult{
		X: hex256(pub.X().Num()),
		Y: hex256(pub.Y().Num()),
	}
	if withSecret {
		r.Secret = hex256(key.Secret())
	}
	return r
}

// NewKeygenCmd produces a KeygenCmd which creates a key pair
func NewKeygenCmd(config *CLIConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Create a new secp256k1 key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := ecdsa.GeneratePrivateKey(rand.Reader)
			if err != nil {
				config.Logger().WithError(err).Error("Generating key")
				return err
			}
			return printResult(cmd, config, newKeyResult(key, true))
		},
	}
}

// NewPubkeyCmd produces a PubkeyCmd which derives the public key of a secret
func NewPubkeyCmd(config *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key secret * G",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secretFlag(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, config, newKeyResult(key, false))
		},
	}
	cmd.Flags().String("secret", "", "Private key as hex")
	return cmd
}

func secretFlag(cmd *cobra.Command) (*ecdsa.PrivateKey, error) {
	secret, err := hexFlag(cmd, "secret")
	if err != nil {
		return nil, err
	}
	return ecdsa.NewPrivateKey(secret)
}
