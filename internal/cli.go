package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cmistools/internal/infrastructure/controllers"
)

const standalonePrefix = "cmis-"

// ConfigureLogger applies the formatter and level shared by every binary.
func ConfigureLogger() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	logger.SetOutput(os.Stderr)
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}
}

// BuildRootCommand builds the umbrella "cmis" command with every controller as a subcommand.
func BuildRootCommand(appContext *AppInternal) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "cmis",
		Short: "Command-line utilities for CMIS content repositories",
		Long: `Command-line utilities for CMIS content repositories.

Mirror a remote folder tree, print it, run CMIS-SQL queries, or upload local
files, against any repository exposing the CMIS Browser Binding.

The connection defaults to the CMIS_URL, CMIS_USERNAME and CMIS_PASSWORD
environment variables when the matching flags are not given.`,
		SilenceErrors: true,
	}
	controllers.AddConnectionFlags(cmd)

	for _, controller := range appContext.GetControllers() {
		cmd.AddCommand(controllers.NewCobraCommand(controller))
	}
	return cmd
}

// BuildStandaloneCommand builds the "cmis-<name>" binary for a single controller.
func BuildStandaloneCommand(appContext *AppInternal, name string) (*cobra.Command, error) {
	controller, ok := appContext.GetController(name)
	if !ok {
		return nil, fmt.Errorf("no command named %q", name)
	}

	cmd := controllers.NewCobraCommand(controller)
	cmd.Use = standalonePrefix + cmd.Use
	cmd.SilenceErrors = true
	controllers.AddConnectionFlags(cmd)
	return cmd, nil
}

// Run executes the given command, cancelling its context on interrupt.
func Run(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cmd.ExecuteContext(ctx)
}

// Main is the shared entry point of every binary. An empty name builds the umbrella command.
func Main(name string) {
	ConfigureLogger()

	appContext, err := InjectAppContext()
	if err != nil {
		logger.Fatalf("Error wiring dependencies: %s", err)
	}

	var cmd *cobra.Command
	if name == "" {
		cmd = BuildRootCommand(appContext)
	} else if cmd, err = BuildStandaloneCommand(appContext, name); err != nil {
		logger.Fatalf("Error building '%s%s': %s", standalonePrefix, name, err)
	}

	if err = Run(cmd); err != nil {
		logger.Fatalf("Error executing '%s': %s", strings.Fields(cmd.Use)[0], err)
	}
}
