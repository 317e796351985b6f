/*
Package cli provides command-line interface utilities for Courier.

The cli package includes typed command errors and signal handling helpers
used by the courier command.

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx := cli.SetupSignalHandler()
	// Use ctx for operations that should be cancelled on shutdown

Errors:

Commands wrap failures in typed errors so the root command can print a
consistent message:

	if err := config.Validate(cfg); err != nil {
		return cli.NewConfigError("", err.Error())
	}
*/
package cli
