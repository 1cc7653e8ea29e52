package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// NewCobraCommand binds a controller to a new Cobra command.
func NewCobraCommand(controller entities.Controller) *cobra.Command {
	bind := controller.GetBind()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   bind.Use,
		Short: bind.Short,
		Long:  bind.Long,
		Args:  bind.Args,
		RunE: func(command *cobra.Command, arguments []string) error {
			// arguments are valid at this point, failures are no longer usage errors
			command.SilenceUsage = true
			return controller.Execute(command, arguments)
		},
	}
	controller.AddFlags(cmd)
	return cmd
}
