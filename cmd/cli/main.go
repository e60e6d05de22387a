package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tracklabs/projtrack/cmd/cli/commands"
)

func main() {
	// .env is optional; flags and environment variables take precedence.
	_ = godotenv.Load()

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
