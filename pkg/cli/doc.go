/*
Package cli provides command-line interface utilities for the confcore
command.

The cli package includes output formatters and common CLI helpers shared
by every confcore subcommand.

Output Formatting:

The cli package supports multiple output formats (text, JSON) for
displaying command results:

	formatter := cli.NewFormatter(cli.FormatJSON)
	data := MyCommandResult{...}
	if err := formatter.FormatTo(os.Stdout, data); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown
*/
package cli
