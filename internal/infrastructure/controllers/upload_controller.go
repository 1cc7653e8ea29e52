package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cmistools/internal/domain/commands"
	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// UploadController handles the "upload" command.
type UploadController struct {
	command commands.Upload
	flags   *ConnectionFlags
}

// NewUploadController creates a new UploadController.
func NewUploadController(command commands.Upload, flags *ConnectionFlags) *UploadController {
	return &UploadController{command: command, flags: flags}
}

// GetBind returns the Cobra command metadata for the upload controller.
func (it *UploadController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "upload <target-folder-path> <file>...",
		Short: "Upload local files into a remote folder",
		Long: `Upload local files into a remote folder.

Missing folders along the target path are created; existing ones are reused.
Every file becomes a new document named after its base name. Directories in
the file list are skipped. Uploading the same file twice creates two documents.`,
		Args: cobra.MinimumNArgs(2), //nolint:mnd // target folder plus at least one file
	}
}

// AddFlags adds the upload-specific flags to the given Cobra command.
func (it *UploadController) AddFlags(_ *cobra.Command) {}

// Execute runs the upload.
func (it *UploadController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := it.flags.Settings(cmd)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(cmd.Context(), commands.UploadOptions{
		Connection: settings,
		TargetPath: args[0],
		Files:      args[1:],
	})
	return err
}
