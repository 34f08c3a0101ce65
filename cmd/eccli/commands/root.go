package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the eccli command tree around config. Each call returns
// an independent tree with its own viper instance.
func NewRootCmd(config *CLIConfig) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:              "eccli",
		Short:            "secp256k1 field, point and ECDSA toolbox",
		TraverseChildren: true,
		SilenceUsage:     true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd, config)
		},
	}

	AddRootFlags(cmd, config)

	cmd.AddCommand(
		NewKeygenCmd(config),
		NewPubkeyCmd(config),
		NewSignCmd(config),
		NewVerifyCmd(config),
		NewSelfcheckCmd(config),
	)

	return cmd
}

// AddRootFlags adds the flags shared by every subcommand.
func AddRootFlags(cmd *cobra.Command, config *CLIConfig) {
	cmd.PersistentFlags().String("log", config.LogLevel, "debug, info, warn, error, fatal, panic")
	cmd.PersistentFlags().String("datadir", config.DataDir, "Directory holding an optional eccli.{toml,yaml,json}")
	cmd.PersistentFlags().StringP("output", "o", config.Output, "Output format: text or json")
	cmd.PersistentFlags().String("hash", config.Hash, "Message digest: sha256, hash256 or keccak256")
}

func loadConfig(v *viper.Viper, cmd *cobra.Command, config *CLIConfig) error {
	if err := bindFlagsLoadViper(v, cmd, config); err != nil {
		return err
	}

	// the level may have changed since the logger was first used
	config.Logger().Logger.Level = logLevel(config.LogLevel)

	if err := config.validate(); err != nil {
		return err
	}

	config.Logger().WithFields(logrus.Fields{
		"log":     config.LogLevel,
		"datadir": config.DataDir,
		"output":  config.Output,
		"hash":    config.Hash,
	}).Debug("Config")

	return nil
}
