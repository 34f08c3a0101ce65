package commands

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/ecdsa"
)

// ErrSignatureRejected is returned by the verify command when the signature
// does not check out, so that the process exits non-zero.
var ErrSignatureRejected = errors.New("signature rejected")

type verifyResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

func (r verifyResult) fields() [][2]string {
	f := [][2]string{{"valid", strconv.FormatBool(r.Valid)}}
	if r.Reason != "" {
		f = append(f, [2]string{"reason", r.Reason})
	}
	return f
}

// NewVerifyCmd produces a VerifyCmd which checks a signature against a public
// key
func NewVerifyCmd(config *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature (r, s) over a message or hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := hexFlag(cmd, "x")
			if err != nil {
				return err
			}
			y, err := hexFlag(cmd, "y")
			if err != nil {
				return err
			}
			r, err := hexFlag(cmd, "r")
			if err != nil {
				return err
			}
			s, err := hexFlag(cmd, "s")
			if err != nil {
				return err
			}
			z, err := digestFlags(cmd, config)
			if err != nil {
				return err
			}

			err = check(x, y, r, s, z)
			if err != nil {
				config.Logger().WithError(err).Warn("Signature rejected")
				if perr := printResult(cmd, config, verifyResult{Reason: err.Error()}); perr != nil {
					return perr
				}
				return ErrSignatureRejected
			}

			config.Logger().Debug("Signature valid")
			return printResult(cmd, config, verifyResult{Valid: true})
		},
	}
	cmd.Flags().String("x", "", "Public key x coordinate as hex")
	cmd.Flags().String("y", "", "Public key y coordinate as hex")
	cmd.Flags().String("r", "", "Signature r as hex")
	cmd.Flags().String("s", "", "Signature s as hex")
	AddDigestFlags(cmd)
	return cmd
}

// check runs every verification step, so that a rejection carries its reason.
func check(x, y, r, s, z *big.Int) error {
	pub, err := curves.NewS256Point(x, y)
	if err != nil {
		return err
	}
	sig, err := ecdsa.NewSignature(r, s)
	if err != nil {
		return err
	}
	return ecdsa.CheckSignature(pub, z, sig)
}

func hexFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	return parseHex(name, raw)
}
