package main

import (
	"os"

	cmd "github.com/smallyu/go-ecmath/cmd/eccli/commands"
)

func main() {
	rootCmd := cmd.NewRootCmd(cmd.NewDefaultCLIConfig())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
