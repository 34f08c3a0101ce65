package commands

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecmath/internal/crypto/curves"
	"github.com/smallyu/go-ecmath/internal/crypto/ecdsa"
)

type selfcheckResult struct {
	Trials   int      `json:"trials"`
	Failures int      `json:"failures"`
	Backends []string `json:"backends"`
}

func (r selfcheckResult) fields() [][2]string {
	return [][2]string{
		{"trials", strconv.Itoa(r.Trials)},
		{"failures", strconv.Itoa(r.Failures)},
		{"backends", fmt.Sprint(r.Backends)},
	}
}

// NewSelfcheckCmd produces a SelfcheckCmd which cross-checks the pure Go
// arithmetic against decred
func NewSelfcheckCmd(config *CLIConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selfcheck",
		Short: "Cross-check keys and signatures against the decred implementation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return selfcheck(cmd, config)
		},
	}
	cmd.Flags().Int("trials", config.Trials, "Number of random keys to check")
	return cmd
}

func selfcheck(cmd *cobra.Command, config *CLIConfig) error {
	logger := config.Logger()
	backends := []curves.Curve{curves.NewSecp256k1(), curves.NewDecredSecp256k1()}
	bound := new(big.Int).Lsh(big.NewInt(1), 256)

	res := selfcheckResult{Trials: config.Trials}
	for _, b := range backends {
		res.Backends = append(res.Backends, b.Name())
	}

	for i := 0; i < config.Trials; i++ {
		z, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return err
		}
		if err := selfcheckTrial(backends, z); err != nil {
			res.Failures++
			logger.WithFields(logrus.Fields{
				"trial": i,
				"z":     hex256(z),
			}).WithError(err).Error("Selfcheck failed")
			continue
		}
		logger.WithField("trial", i).Debug("Selfcheck passed")
	}

	if err := printResult(cmd, config, res); err != nil {
		return err
	}
	if res.Failures > 0 {
		return fmt.Errorf("%d of %d trials failed", res.Failures, res.Trials)
	}
	return nil
}

func selfcheckTrial(backends []curves.Curve, z *big.Int) error {
	key, err := ecdsa.GeneratePrivateKey(rand.Reader)
	if err != nil {
		return err
	}
	pub := key.PublicKey()

	for _, b := range backends {
		x, y, err := b.ScalarBaseMult(key.Secret())
		if err != nil {
			return fmt.Errorf("%s: %v", b.Name(), err)
		}
		if x.Cmp(pub.X().Num()) != 0 || y.Cmp(pub.Y().Num()) != 0 {
			return fmt.Errorf("%s: public key mismatch", b.Name())
		}
	}

	sig, err := key.Sign(z)
	if err != nil {
		return err
	}
	if !sig.IsLowS() {
		return fmt.Errorf("high s in %v", sig)
	}
	if err := ecdsa.CheckSignature(pub, z, sig); err != nil {
		return err
	}
	if !ecdsa.VerifyReference(pub, z, sig) {
		return fmt.Errorf("decred rejected %v", sig)
	}

	other := new(big.Int).Add(z, big.NewInt(1))
	if ecdsa.Verify(pub, other, sig) || ecdsa.VerifyReference(pub, other, sig) {
		return fmt.Errorf("%v accepted for the wrong hash", sig)
	}
	return nil
}
