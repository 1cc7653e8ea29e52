package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cmistools/internal/domain/commands"
	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

const flagDest = "dest"

// DownloadController handles the "download" command.
type DownloadController struct {
	command commands.Download
	flags   *ConnectionFlags
}

// NewDownloadController creates a new DownloadController.
func NewDownloadController(command commands.Download, flags *ConnectionFlags) *DownloadController {
	return &DownloadController{command: command, flags: flags}
}

// GetBind returns the Cobra command metadata for the download controller.
func (it *DownloadController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "download [folder-path]",
		Short: "Mirror a remote folder onto the local filesystem",
		Long: `Mirror a remote folder subtree onto the local filesystem.

Every document is written under its own name into the destination directory,
and every sub-folder becomes a new local directory. Documents without a
content stream are skipped. An existing local directory with the name of a
remote folder aborts the download.`,
		Args: cobra.MaximumNArgs(1),
	}
}

// AddFlags adds the download-specific flags to the given Cobra command.
func (it *DownloadController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(flagDest, "d", ".", "Local directory to mirror into")
}

// Execute runs the download.
func (it *DownloadController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := it.flags.Settings(cmd)
	if err != nil {
		return err
	}
	destination, _ := cmd.Flags().GetString(flagDest)

	folderPath := "/"
	if len(args) > 0 {
		folderPath = args[0]
	}

	_, err = it.command.Execute(cmd.Context(), commands.DownloadOptions{
		Connection:  settings,
		FolderPath:  folderPath,
		Destination: destination,
	})
	return err
}
