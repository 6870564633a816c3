package cli

import (
	"context"
	"errors"
	"io"

	"github.com/specialistvlad/modfuncs/internal/app"
	"github.com/specialistvlad/modfuncs/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options wires the command tree to its environment.
type Options struct {
	// Out receives command results.
	Out io.Writer
	// Err receives logs and usage text for errors.
	Err io.Writer
	// Fs is the filesystem every command reads. Defaults to the OS filesystem.
	Fs afero.Fs
	// ConfigSearchPaths overrides where modfuncs.* config files are looked for.
	ConfigSearchPaths []string
}

// state is shared by the commands of one invocation.
type state struct {
	opts       Options
	configFile string
	started    bool
	app        *app.App
}

// Execute runs the command line in args. Errors are always *ExitError.
func Execute(ctx context.Context, args []string, opts Options) error {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}

	st := &state{opts: opts}
	root := newRootCommand(st)
	root.SetArgs(args)
	root.SetOut(opts.Out)
	root.SetErr(opts.Err)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if !st.started {
		// Cobra rejected the command line before any command ran.
		return &ExitError{Code: ExitUsage, Err: err}
	}
	return &ExitError{Code: ExitFailure, Err: err}
}

func newRootCommand(st *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "modfuncs",
		Short: "Resolve module-relative paths and evaluate HCL that uses them",
		Long: `modfuncs resolves module references such as puppet:///modules/ssh/sshd_config
against a tree of environments and module directories, and evaluates HCL
expressions and documents that call module_path() and exists().`,
		Example: `  modfuncs module-path ssh
  modfuncs -e staging resolve puppet:///modules/ssh/sshd_config
  modfuncs eval 'exists("puppet:///ssh/sshd_config.${environment}")'
  modfuncs render site.hcl --output yaml`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			st.started = true
			return st.setup(cmd)
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ExitError{Code: ExitUsage, Err: err}
	})

	root.PersistentFlags().StringVar(&st.configFile, "config", "", "Config file (default is ./modfuncs.{toml,yaml,json} if present).")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newModulePathCommand(st),
		newResolveCommand(st),
		newExistsCommand(st),
		newEvalCommand(st),
		newRenderCommand(st),
		newCheckCommand(st),
		newModulesCommand(st),
		newEnvironmentsCommand(st),
		newConfigCommand(st),
	)
	return root
}

// setup loads settings and builds the app for the command about to run.
func (st *state) setup(cmd *cobra.Command) error {
	settings, err := config.Load(cmd.Context(), config.LoadOptions{
		ConfigFile:  st.configFile,
		SearchPaths: st.opts.ConfigSearchPaths,
		Flags:       cmd.Flags(),
	})
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}

	a, err := app.NewApp(cmd.ErrOrStderr(), settings, st.opts.Fs)
	if err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	st.app = a
	a.Logger().Debug("Command starting.", "command", cmd.Name(), "config_file", settings.ConfigFile)
	return nil
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &ExitError{Code: ExitUsage, Err: err}
		}
		return nil
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &ExitError{Code: ExitUsage, Err: err}
	}
	return nil
}
