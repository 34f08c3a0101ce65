package commands

import (
	"errors"
	"math/big"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecmath/internal/crypto/ecdsa"
)

type signResult struct {
	Z string `json:"z"`
	R string `json:"r"`
	S string `json:"s"`
}

func (r signResult) fields() [][2]string {
	return [][2]string{{"z", r.Z}, {"r", r.R}, {"s", r.S}}
}

// NewSignCmd produces a SignCmd which signs a message or a hash
func NewSignCmd(config *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message, or a precomputed hash, with a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := secretFlag(cmd)
			if err != nil {
				return err
			}
			z, err := digestFlags(cmd, config)
			if err != nil {
				return err
			}

			sig, err := key.Sign(z)
			if err != nil {
				config.Logger().WithError(err).Error("Signing")
				return err
			}
			config.Logger().WithFields(logrus.Fields{
				"z":   hex256(z),
				"sig": sig,
			}).Debug("Signed")

			return printResult(cmd, config, signResult{
				Z: hex256(z),
				R: hex256(sig.R()),
				S: hex256(sig.S()),
			})
		},
	}
	cmd.Flags().String("secret", "", "Private key as hex")
	AddDigestFlags(cmd)
	return cmd
}

// AddDigestFlags adds the flags selecting what is signed or verified.
func AddDigestFlags(cmd *cobra.Command) {
	cmd.Flags().String("message", "", "Message to hash with --hash")
	cmd.Flags().String("z", "", "Precomputed hash as hex, used instead of --message")
}

// digestFlags returns --z when set, otherwise the configured hash of
// --message.
func digestFlags(cmd *cobra.Command, config *CLIConfig) (*big.Int, error) {
	if cmd.Flags().Changed("z") {
		return hexFlag(cmd, "z")
	}
	if !cmd.Flags().Changed("message") {
		return nil, errors.New("one of --message or --z is required")
	}

	msg, err := cmd.Flags().GetString("message")
	if err != nil {
		return nil, err
	}
	alg, err := config.HashAlgorithm()
	if err != nil {
		return nil, err
	}
	return ecdsa.HashMessage(alg, []byte(msg))
}
