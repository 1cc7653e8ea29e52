package controllers

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cmistools/internal/domain/commands"
	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

const (
	flagDownload = "download"
	flagOutput   = "output"
)

// QueryController handles the "query" command.
type QueryController struct {
	command commands.Query
	flags   *ConnectionFlags
}

// NewQueryController creates a new QueryController.
func NewQueryController(command commands.Query, flags *ConnectionFlags) *QueryController {
	return &QueryController{command: command, flags: flags}
}

// GetBind returns the Cobra command metadata for the query controller.
func (it *QueryController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "query [--download] <statement>",
		Short: "Run a CMIS-SQL query",
		Long: `Run a CMIS-SQL query and print every result row.

The statement is sent to the repository as is. Several arguments are joined
with single spaces. With --download every document among the results is
saved into the destination directory; results without content are skipped.

Example:
  query "SELECT * FROM cmis:document WHERE cmis:name LIKE 'report%'"`,
		Args: cobra.MinimumNArgs(1),
	}
}

// AddFlags adds the query-specific flags to the given Cobra command.
func (it *QueryController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(flagDownload, false, "Download every document returned by the query")
	cmd.Flags().StringP(flagDest, "d", ".", "Local directory for --download")
	cmd.Flags().StringP(flagOutput, "o", string(entities.OutputFormatText), "Output format: text, json or yaml")
}

// Execute runs the query.
func (it *QueryController) Execute(cmd *cobra.Command, args []string) error {
	rawFormat, _ := cmd.Flags().GetString(flagOutput)
	format, err := entities.ParseOutputFormat(rawFormat)
	if err != nil {
		return err
	}

	settings, err := it.flags.Settings(cmd)
	if err != nil {
		return err
	}
	download, _ := cmd.Flags().GetBool(flagDownload)
	destination, _ := cmd.Flags().GetString(flagDest)

	_, err = it.command.Execute(cmd.Context(), commands.QueryOptions{
		Connection:  settings,
		Statement:   strings.Join(args, " "),
		Format:      format,
		Download:    download,
		Destination: destination,
		Output:      cmd.OutOrStdout(),
	})
	return err
}
