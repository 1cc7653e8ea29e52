package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cmistools/internal/domain/commands"
	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

const flagProperties = "properties"

// ListController handles the "list" command.
type ListController struct {
	command commands.List
	flags   *ConnectionFlags
}

// NewListController creates a new ListController.
func NewListController(command commands.List, flags *ConnectionFlags) *ListController {
	return &ListController{command: command, flags: flags}
}

// GetBind returns the Cobra command metadata for the list controller.
func (it *ListController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "list [folder-path]",
		Short: "Print a remote folder tree",
		Long: `Print a remote folder subtree.

Each folder prints its path followed by its children: documents by name,
folders with a trailing slash, and any other object as "name (base type)".`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags adds the list-specific flags to the given Cobra command.
func (it *ListController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(flagProperties, false, "Print the properties of every child")
}

// Execute runs the listing.
func (it *ListController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := it.flags.Settings(cmd)
	if err != nil {
		return err
	}
	showProperties, _ := cmd.Flags().GetBool(flagProperties)

	folderPath := "/"
	if len(args) > 0 {
		folderPath = args[0]
	}

	return it.command.Execute(cmd.Context(), commands.ListOptions{
		Connection:     settings,
		FolderPath:     folderPath,
		ShowProperties: showProperties,
		Output:         cmd.OutOrStdout(),
	})
}
