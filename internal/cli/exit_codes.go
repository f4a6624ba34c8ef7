package cli

// Exit codes for the vscode-settings CLI
const (
	// ExitSuccess indicates the sync finished, including runs with nothing to
	// sync and runs where individual files failed
	ExitSuccess = 0

	// ExitUnexpected indicates an unexpected top-level error, such as a
	// failure reading the templates
	ExitUnexpected = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitInvalidConfig indicates the config file or environment is invalid
	ExitInvalidConfig = 6
)
