package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/smallyu/go-ecmath/internal/crypto/ecdsa"
)

// CLIConfig contains the configuration for the eccli command.
type CLIConfig struct {
	LogLevel string `mapstructure:"log"`
	DataDir  string `mapstructure:"datadir"`
	Output   string `mapstructure:"output"`
	Hash     string `mapstructure:"hash"`
	Trials   int    `mapstructure:"trials"`

	logger *logrus.Logger
	logOut io.Writer
}

// NewDefaultCLIConfig creates a CLIConfig with default values.
func NewDefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		LogLevel: "info",
		Output:   "text",
		Hash:     string(ecdsa.SHA256),
		Trials:   100,
		logOut:   os.Stderr,
	}
}

// Logger returns a formatted logrus Entry, with prefix set to "eccli".
func (c *CLIConfig) Logger() *logrus.Entry {
	if c.logger == nil {
		c.logger = logrus.New()
		c.logger.Out = c.logOut
		c.logger.Level = logLevel(c.LogLevel)
		c.logger.Formatter = new(prefixed.TextFormatter)
	}
	return c.logger.WithField("prefix", "eccli")
}

// HashAlgorithm returns the configured message digest.
func (c *CLIConfig) HashAlgorithm() (ecdsa.HashAlgorithm, error) {
	return ecdsa.ParseHashAlgorithm(c.Hash)
}

func (c *CLIConfig) validate() error {
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("unknown output format %q, want text or json", c.Output)
	}
	if _, err := c.HashAlgorithm(); err != nil {
		return err
	}
	if c.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Trials)
	}
	return nil
}

// bindFlagsLoadViper binds the flags of cmd, the ECCLI_ environment and an
// optional eccli.{toml,yaml,json} in the data directory into config.
func bindFlagsLoadViper(v *viper.Viper, cmd *cobra.Command, config *CLIConfig) error {
	v.SetEnvPrefix("eccli")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// Register flags with viper. Include flags from this command and all other
	// persistent flags from the parent
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// first unmarshal to read from CLI flags and environment
	if err := v.Unmarshal(config); err != nil {
		return err
	}
	if config.DataDir == "" {
		return nil
	}

	v.SetConfigName("eccli")
	v.AddConfigPath(config.DataDir)

	if err := v.ReadInConfig(); err == nil {
		config.Logger().Debugf("Using config file: %s", v.ConfigFileUsed())
	} else if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		config.Logger().Debugf("No config file found in: %s", config.DataDir)
	} else {
		return err
	}

	// second unmarshal to read from config file
	return v.Unmarshal(config)
}

func logLevel(l string) logrus.Level {
	switch l {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}
