package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

// Query is the interface for the query command.
type Query interface {
	Execute(ctx context.Context, opts QueryOptions) (*entities.QueryReport, error)
}

// QueryOptions holds runtime options for a single query.
type QueryOptions struct {
	Connection  entities.ConnectionSettings
	Statement   string
	Format      entities.OutputFormat
	Download    bool
	Destination string // local directory for --download, "." when empty
	Output      io.Writer
}

// QueryCommand runs a CMIS-SQL statement and prints the rows, optionally
// downloading every document it returns.
type QueryCommand struct {
	connector repositories.Connector
	fetcher   *DocumentFetcher
}

// NewQueryCommand creates a new QueryCommand.
func NewQueryCommand(connector repositories.Connector, fetcher *DocumentFetcher) *QueryCommand {
	return &QueryCommand{
		connector: connector,
		fetcher:   fetcher,
	}
}

// Execute runs the statement verbatim; rejected statements are fatal.
func (it *QueryCommand) Execute(ctx context.Context, opts QueryOptions) (*entities.QueryReport, error) {
	repo, err := connect(ctx, it.connector, opts.Connection)
	if err != nil {
		return nil, err
	}

	logger.Debugf("Running query: %s", opts.Statement)
	rows, err := repo.Query(ctx, opts.Statement)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrQuery, err)
	}

	if renderErr := renderRows(opts.Output, opts.Format, rows); renderErr != nil {
		return nil, renderErr
	}

	report := &entities.QueryReport{Rows: len(rows)}
	if !opts.Download {
		return report, nil
	}

	destination := opts.Destination
	if destination == "" {
		destination = "."
	}
	if downloadErr := it.DownloadRows(ctx, repo, rows, destination, &report.Download); downloadErr != nil {
		return report, downloadErr
	}

	logger.Infof(
		"Downloaded %d of %d results (%d skipped)",
		report.Download.Files, report.Rows, report.Download.Skipped,
	)
	return report, nil
}

// DownloadRows re-resolves every row by object id and saves the documents among them.
// Nothing recurses: a folder hit is skipped.
func (it *QueryCommand) DownloadRows(
	ctx context.Context,
	repo repositories.CMISRepository,
	rows []entities.ResultRow,
	localDir string,
	report *entities.DownloadReport,
) error {
	for i, row := range rows {
		if row.ObjectID == "" {
			logger.Warnf("Skipping result %d: no %s in the select list", i+1, entities.PropertyObjectID)
			report.Skipped++
			continue
		}

		node, err := repo.GetObject(ctx, row.ObjectID)
		if err != nil {
			return fmt.Errorf("failed to resolve result %q: %w", row.ObjectID, err)
		}
		if !node.IsDocument() {
			logger.Infof("Skipping %s: %s is not a document", node.Name, node.BaseTypeID)
			report.Skipped++
			continue
		}

		if fetchErr := it.fetcher.Fetch(ctx, repo, *node, localDir, report); fetchErr != nil {
			return fetchErr
		}
	}
	return nil
}
