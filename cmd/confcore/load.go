package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/devscast/confcore/pkg/cli"
	"github.com/devscast/confcore/pkg/clog"
	"github.com/devscast/confcore/pkg/config"
)

var loadFlags struct {
	sources    []string
	envPath    string
	envKey     string
	noEnv      bool
	format     string
	redact     bool
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Compose configured sources and print the result",
	Long: `Run the dotenv cascade, load and merge every --source file left to
right, substitute "%env(TYPE:NAME)%" placeholders, and print the resulting
tree. Since this command has no schema of its own, validation is a no-op:
use it to inspect what a typed caller would receive before SafeParse.

Examples:
  # Merge two YAML files over the cascade rooted at ./.env
  confcore load --source config.yaml --source config.prod.yaml

  # Inspect composition without running the dotenv cascade at all
  confcore load --source config.yaml --no-env

  # JSON output for scripting
  confcore load --source config.yaml --format json`,
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)

	loadCmd.Flags().StringArrayVar(&loadFlags.sources, "source", nil, "configuration source file, in merge order (repeatable)")
	loadCmd.Flags().StringVar(&loadFlags.envPath, "env-path", ".env", "dotenv cascade base path")
	loadCmd.Flags().StringVar(&loadFlags.envKey, "env-key", "APP_ENV", "process-env variable naming the current environment")
	loadCmd.Flags().BoolVar(&loadFlags.noEnv, "no-env", false, "skip the dotenv cascade entirely")
	loadCmd.Flags().StringVar(&loadFlags.format, "format", "text", "output format: text, json")
	loadCmd.Flags().BoolVar(&loadFlags.redact, "redact", true, "mask values under keys that look like secrets")
}

func runLoad(cmd *cobra.Command, args []string) error {
	switch loadFlags.format {
	case "text", "json":
	default:
		return cli.NewConfigError("format", fmt.Sprintf(`must be "text" or "json", got %q`, loadFlags.format))
	}

	base := cwd
	if base == "" {
		base = "."
	}

	sources := make([]config.Source, 0, len(loadFlags.sources))
	for _, s := range loadFlags.sources {
		sources = append(sources, config.FilePath{Path: s})
	}

	enabled := !loadFlags.noEnv
	composer := config.Composer{
		Cwd:    base,
		Logger: clog.New(clog.Config{Level: logLevel}),
	}

	// SetupSignalHandler bounds the cascade's command-substitution
	// subprocesses to this command's lifetime: SIGINT/SIGTERM cancels
	// Compose's ctx rather than leaving a child process orphaned.
	result, err := composer.Compose(cli.SetupSignalHandler(), config.Options{
		Cwd: base,
		Env: config.EnvOptions{
			Enabled: &enabled,
			Path:    loadFlags.envPath,
			EnvKey:  loadFlags.envKey,
		},
		Sources: sources,
		Schema:  config.PassthroughValidator{},
	})
	if err != nil {
		return cli.NewCommandError("load", err)
	}

	tree := result.Config
	if loadFlags.redact {
		tree = clog.NewRedactor(nil).RedactTree(tree)
	}

	formatter := cli.NewFormatter(cli.OutputFormat(loadFlags.format))
	return formatter.FormatTo(cmd.OutOrStdout(), tree)
}
