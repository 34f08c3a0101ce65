package commands

import (
	"fmt"
	"math/big"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// result is what a command prints. Text output is one "key: value" line per
// field, in the order returned by fields.
type result interface {
	fields() [][2]string
}

func printResult(cmd *cobra.Command, config *CLIConfig, r result) error {
	out := cmd.OutOrStdout()

	if config.Output == "json" {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	for _, f := range r.fields() {
		if _, err := fmt.Fprintf(out, "%s: %s\n", f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

// hex256 renders v as 64 lowercase hex digits.
func hex256(v *big.Int) string {
	return fmt.Sprintf("%064x", v)
}

// parseHex reads a hex integer, with or without a 0x prefix.
func parseHex(name, s string) (*big.Int, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	if s == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("--%s: %q is not a hex integer", name, s)
	}
	return v, nil
}
