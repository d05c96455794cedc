// Package cli implements the minigrep command line on top of cobra.
package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// RunnerFactory creates a runner writing in the given output format.
type RunnerFactory func(format domain.OutputFormat) (driving.Runner, error)

// Services holds the core services the command depends on.
type Services struct {
	ConfigBuilder   driving.ConfigBuilder
	SettingsService driving.SettingsService
	NewRunner       RunnerFactory
}

// positionalArgs is the number of leading arguments taken verbatim as
// query and path, before any flag parsing.
const positionalArgs = 2

var (
	version = "dev"

	configBuilder   driving.ConfigBuilder
	settingsService driving.SettingsService
	newRunner       RunnerFactory

	jsonOutput  bool
	verboseLog  bool
	showHelp    bool
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:   "minigrep <query> <path> [flags]",
	Short: "Print the lines of a file that contain a query",
	Long: `Searches a single text file for a literal substring and prints every
matching line in file order.

The first two arguments are always the query and the path, even when
they start with a dash, so "minigrep -v notes.txt" searches for "-v".
Flags are only recognised after them.

Matching is case-sensitive unless the IGNORE_CASE environment variable is
set. Any value enables case-insensitive matching, including "0" and "false".`,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE:               runRoot,
}

func init() {
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "output matches as JSON with line numbers")
	rootCmd.Flags().BoolVarP(&verboseLog, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.Flags().BoolVarP(&showHelp, "help", "h", false, "help for minigrep")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print the version number")
}

// SetServices injects the core services.
func SetServices(s Services) {
	configBuilder = s.ConfigBuilder
	settingsService = s.SettingsService
	newRunner = s.NewRunner
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteArgs runs the root command with explicit arguments (program
// name excluded) and output streams.
func ExecuteArgs(args []string, out, errOut io.Writer) error {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if configBuilder == nil || newRunner == nil {
		return errors.New("search services not configured")
	}
	resetFlags(cmd.Flags())
	defer resetFlags(cmd.Flags())

	// A lone --help or --version can never be a complete search.
	if len(args) == 1 {
		switch args[0] {
		case "-h", "--help":
			return cmd.Help()
		case "--version":
			cmd.Printf("minigrep version %s\n", version)
			return nil
		}
	}

	n := min(len(args), positionalArgs)
	cfg, err := configBuilder.Build(append([]string{cmd.Root().Name()}, args[:n]...))
	if err != nil {
		return err
	}

	if err := cmd.Flags().Parse(args[n:]); err != nil {
		return err
	}
	if showHelp {
		return cmd.Help()
	}
	if showVersion {
		cmd.Printf("minigrep version %s\n", version)
		return nil
	}

	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		loaded, err := settingsService.Get()
		if err != nil {
			return err
		}
		settings = *loaded
	}

	if cmd.Flags().Changed("verbose") {
		settings.Verbose = verboseLog
	}
	if jsonOutput {
		settings.Format = domain.OutputFormatJSON
	}
	logger.SetVerbose(settings.Verbose)

	runner, err := newRunner(settings.Format)
	if err != nil {
		return err
	}

	return runner.Run(cmd.Context(), cfg, cmd.OutOrStdout())
}

// resetFlags clears values left by a previous execution in the same process.
func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}
