// Package cli implements the vscode-settings command line.
package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"strconv"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arvinn/vscode-settings/internal/build"
	"github.com/arvinn/vscode-settings/internal/config"
	clierrors "github.com/arvinn/vscode-settings/internal/errors"
	"github.com/arvinn/vscode-settings/internal/log"
	"github.com/arvinn/vscode-settings/internal/output"
	"github.com/arvinn/vscode-settings/internal/sync"
	"github.com/arvinn/vscode-settings/internal/templates"
)

// environment holds the process state a run depends on, so tests can replace it.
type environment struct {
	// getwd returns the sync target directory.
	getwd func() (string, error)
	// installRoot returns the tool's installation root.
	installRoot func() (string, error)
	// configOptions controls where configuration is read from.
	configOptions config.LoadOptions
	// interactive reports whether prompts can be answered on the given input.
	interactive func(io.Reader) bool
}

func defaultEnvironment() environment {
	return environment{
		getwd:       os.Getwd,
		installRoot: templates.InstallRoot,
		interactive: isTerminal,
	}
}

// isTerminal reports whether r is a terminal. Readers that are not files
// (scripted input) count as interactive.
func isTerminal(r io.Reader) bool {
	if f, ok := r.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return true
}

// app carries state shared between the command and error reporting.
type app struct {
	env environment
	cfg *config.Configuration
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vscode-settings",
		Short: "Sync .editorconfig and .vscode settings into the current project",
		Long: `Copy the packaged editor configuration into the current directory.

This command:
  1. Copies .editorconfig into the project root
  2. Copies every file from the packaged .vscode/ directory into ./.vscode/

Files that do not exist yet are created without asking. For each file that
already exists you are asked before it is overwritten; the default answer
is no. When input is not a terminal, existing files are always kept.

Configuration (optional):
  ~/.config/vscode-settings/config.yml or VSCODE_SETTINGS_* variables
  no_color   Disable colored output
  log_level  Diagnostic log level (default: warn)`,
		Example: `  # Sync into the current project
  cd my-project && vscode-settings

  # Show what the tool is doing
  VSCODE_SETTINGS_LOG_LEVEL=debug vscode-settings`,
		Args:          noArgs,
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd)
		},
	}
	cmd.SetVersionTemplate("vscode-settings " + build.Info() + "\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierrors.NewArgumentErrorWithUsage(err.Error(), "vscode-settings",
			"The command takes no flags besides --help and --version")
	})
	return cmd
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return clierrors.UnexpectedArguments(args)
	}
	return nil
}

// run performs one sync of the packaged templates into the working directory.
func (a *app) run(cmd *cobra.Command) error {
	cfg, err := config.LoadWithOptions(a.env.configOptions)
	if err != nil {
		return clierrors.InvalidConfig(err, a.env.configOptions.ResolvedUserConfigPath())
	}
	a.cfg = cfg

	log.Configure(log.Config{Level: cfg.LogLevel, Output: cmd.ErrOrStderr(), NoColor: cfg.NoColor})
	logger := log.WithComponent("cli")

	projectDir, err := a.env.getwd()
	if err != nil {
		return clierrors.WorkingDirUnavailable(err)
	}

	root, err := a.env.installRoot()
	if err != nil {
		logger.Debug().Err(err).Msg("install root unavailable, using embedded templates")
		root = ""
	}
	source := templates.Source(root)

	logger.Debug().
		Str("version", build.Version).
		Bool("dev_build", build.IsDevBuild()).
		Str("project", projectDir).
		Str("templates", templates.Describe(source, root)).
		Msg("starting sync")

	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	runner := &sync.Runner{
		Source:    source,
		Project:   osfs.New(projectDir),
		Confirmer: sync.NewPromptConfirmer(in, out, a.env.interactive(in)),
		Reporter:  output.NewStatusPrinter(out, cmd.ErrOrStderr(), cfg.NoColor),
	}

	if _, err := runner.Run(cmd.Context()); err != nil {
		var derr *sync.DiscoveryError
		if stderrors.As(err, &derr) {
			return clierrors.TemplatesUnreadable(err)
		}
		return clierrors.Unexpected(err)
	}
	return nil
}

// noColor reports whether error output should be plain. Before config is
// loaded only the environment is consulted.
func (a *app) noColor() bool {
	if a.cfg != nil {
		return a.cfg.NoColor
	}
	v, _ := strconv.ParseBool(os.Getenv(config.EnvPrefix + "NO_COLOR"))
	return v
}

// execute runs cmd and prints any error to its error writer.
func execute(ctx context.Context, a *app, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		cliErr = clierrors.Unexpected(err)
	}
	clierrors.FprintError(cmd.ErrOrStderr(), cliErr, a.noColor())
	return cliErr
}

// Execute runs the root command against the real process environment.
func Execute() error {
	a := &app{env: defaultEnvironment()}
	return execute(context.Background(), a, newRootCmd(a))
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	cliErr := clierrors.AsCLIError(err)
	if cliErr == nil {
		return ExitUnexpected
	}
	switch cliErr.Category {
	case clierrors.Argument:
		return ExitInvalidArguments
	case clierrors.Configuration:
		return ExitInvalidConfig
	default:
		return ExitUnexpected
	}
}
