package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the vscode-settings CLI.

// UnexpectedArguments creates an error for positional arguments, which the
// command does not take.
func UnexpectedArguments(args []string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("unexpected arguments: %s", strings.Join(args, " ")),
		"vscode-settings",
		"Run the command without arguments from the project directory to sync",
	)
}

// InvalidConfig creates an error for a config file or environment value that
// could not be loaded.
func InvalidConfig(err error, path string) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		fmt.Sprintf("Check the config file at %s", path),
		"Check VSCODE_SETTINGS_* environment variables",
	)
}

// WorkingDirUnavailable creates an error when the sync target cannot be determined.
func WorkingDirUnavailable(err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		"cannot determine the current directory",
		"Make sure the current directory still exists",
	)
}

// TemplatesUnreadable creates an error for an unexpected failure while reading
// the template source.
func TemplatesUnreadable(err error) *CLIError {
	return WrapWithMessage(err, Discovery,
		"reading templates failed",
		"Check permissions on the installed templates",
		"Reinstall vscode-settings if the templates are damaged",
	)
}

// Unexpected wraps any other error that reaches the top level.
func Unexpected(err error) *CLIError {
	return WrapWithMessage(err, Runtime, "unexpected error")
}
