package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cwd     string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "confcore",
	Short: "Typed configuration composition for long-lived Go services",
	Long: `confcore loads a Symfony-compatible ".env" cascade into the process
environment, then merges one or more JSON, YAML, or INI configuration files
on top of it, substituting "%env(TYPE:NAME)%" placeholders and validating
the result against a caller-supplied schema.

It is a library first; this CLI is an operator surface for inspecting and
troubleshooting that pipeline outside of a running service:
  - Compose configured sources and print the merged, resolved tree
  - Print the environment keys a cascade would register, secrets redacted
  - Check a dotenv file for syntax errors without mutating the environment

For more information, visit: https://github.com/devscast/confcore`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cwd, "cwd", "C", "", "working directory for relative source and cascade paths (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "log level: debug, info, warn, error")

	rootCmd.CompletionOptions.DisableDefaultCmd = false
}
