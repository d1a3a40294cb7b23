package main

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/devscast/confcore/pkg/cli"
	"github.com/devscast/confcore/pkg/clog"
	"github.com/devscast/confcore/pkg/dotenv"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Inspect the dotenv cascade",
}

var envPrintFlags struct {
	envPath string
	envKey  string
}

var envPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Run the cascade and print every key it registered",
	Long: `Run the dotenv cascade alone, without loading any configuration
source, and print the keys listed in the NODE_DOTENV_VARS sentinel (the
keys written by this or an earlier cascade) plus the environment-selector
key itself; other process-env keys are not printed. Values under a key that looks like a
secret (password, token, api_key, credential, private_key, secret) are
masked.`,
	RunE: runEnvPrint,
}

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.AddCommand(envPrintCmd)

	envPrintCmd.Flags().StringVar(&envPrintFlags.envPath, "env-path", ".env", "dotenv cascade base path")
	envPrintCmd.Flags().StringVar(&envPrintFlags.envKey, "env-key", "APP_ENV", "process-env variable naming the current environment")
}

func runEnvPrint(cmd *cobra.Command, args []string) error {
	base := cwd
	if base == "" {
		base = "."
	}

	penv := dotenv.OS
	cascade := &dotenv.Cascade{
		ProcessEnv: penv,
		Lexer:      &dotenv.Lexer{ProcessEnv: penv, Context: cli.SetupSignalHandler()},
	}
	opts := dotenv.CascadeOptions{EnvKey: envPrintFlags.envKey}

	path := envPrintFlags.envPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	if err := cascade.LoadEnv(path, opts); err != nil {
		if _, ok := err.(*dotenv.PathError); !ok {
			return cli.NewCommandError("env print", err)
		}
	}

	redactor := clog.NewRedactor(nil)
	names := dotenv.LoadedVars(penv)
	names = append(names, envPrintFlags.envKey)
	sort.Strings(names)

	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		value, ok := penv.LookupEnv(name)
		if !ok {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s=%v\n", name, redactor.Redact(name, value))
	}
	return nil
}
