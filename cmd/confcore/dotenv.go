package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/devscast/confcore/pkg/cli"
	"github.com/devscast/confcore/pkg/dotenv"
)

var dotenvFlags struct {
	allowCommands bool
}

var dotenvCmd = &cobra.Command{
	Use:   "dotenv",
	Short: "Work with individual dotenv files",
}

var dotenvCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Parse a dotenv file and report syntax errors",
	Long: `Parse FILE with the same lexer the cascade uses, without touching
the process environment or any sibling file. Prints the assignments it
would produce on success, or the exact line and column of the first
syntax error.`,
	Args: cobra.ExactArgs(1),
	RunE: runDotenvCheck,
}

func init() {
	rootCmd.AddCommand(dotenvCmd)
	dotenvCmd.AddCommand(dotenvCheckCmd)

	dotenvCheckCmd.Flags().BoolVar(&dotenvFlags.allowCommands, "allow-commands", false, "evaluate \"$(...)\" command substitution even without the @dotenv-expand-commands directive")
}

func runDotenvCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return cli.NewCommandError("dotenv check", err)
	}

	lexer := &dotenv.Lexer{
		ProcessEnv:               dotenv.OS,
		AllowCommandSubstitution: dotenvFlags.allowCommands,
	}

	values, err := lexer.Parse(data, path)
	if err != nil {
		return cli.NewCommandError("dotenv check", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d assignment(s)\n", path, len(names))
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s=%s\n", name, values[name])
	}
	return nil
}
