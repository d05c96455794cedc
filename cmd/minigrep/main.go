// Command minigrep prints the lines of a file that contain a query.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	configfile "github.com/custodia-labs/minigrep/internal/adapters/driven/config/file"
	corpusfile "github.com/custodia-labs/minigrep/internal/adapters/driven/corpus/file"
	"github.com/custodia-labs/minigrep/internal/adapters/driving/cli"
	"github.com/custodia-labs/minigrep/internal/core/domain"
	"github.com/custodia-labs/minigrep/internal/core/ports/driving"
	"github.com/custodia-labs/minigrep/internal/core/services"
	"github.com/custodia-labs/minigrep/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Exit codes.
const (
	exitOK          = 0
	exitFailure     = 1
	exitConfigError = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation. args excludes the program name.
func run(args []string, stdout, stderr io.Writer) int {
	store := configfile.NewConfigStore(os.Getenv(configfile.EnvConfigDir))
	loader := corpusfile.NewLoader()
	searcher := services.NewSearchService()

	logger.SetOutput(stderr)
	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		ConfigBuilder:   services.NewConfigBuilder(os.LookupEnv),
		SettingsService: services.NewSettingsService(store),
		NewRunner: func(format domain.OutputFormat) (driving.Runner, error) {
			return services.NewRunner(loader, searcher, format)
		},
	})

	if err := cli.ExecuteArgs(args, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	if errors.Is(err, domain.ErrConfig) {
		return exitConfigError
	}
	return exitFailure
}
