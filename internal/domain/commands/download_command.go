package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

// Download is the interface for the download command.
type Download interface {
	Execute(ctx context.Context, opts DownloadOptions) (*entities.DownloadReport, error)
}

// DownloadOptions holds runtime options for a single download.
type DownloadOptions struct {
	Connection  entities.ConnectionSettings
	FolderPath  string // remote path, "/" when empty
	Destination string // local directory, "." when empty
}

// DownloadCommand mirrors a remote folder subtree onto the local filesystem.
type DownloadCommand struct {
	connector repositories.Connector
	local     repositories.LocalFileRepository
	fetcher   *DocumentFetcher
}

// NewDownloadCommand creates a new DownloadCommand.
func NewDownloadCommand(
	connector repositories.Connector,
	local repositories.LocalFileRepository,
	fetcher *DocumentFetcher,
) *DownloadCommand {
	return &DownloadCommand{
		connector: connector,
		local:     local,
		fetcher:   fetcher,
	}
}

// Execute connects, resolves the folder path and mirrors it into the destination.
// A path that resolves to a document downloads just that document.
func (it *DownloadCommand) Execute(
	ctx context.Context,
	opts DownloadOptions,
) (*entities.DownloadReport, error) {
	repo, err := connect(ctx, it.connector, opts.Connection)
	if err != nil {
		return nil, err
	}

	folderPath := opts.FolderPath
	if folderPath == "" {
		folderPath = rootPath
	}
	destination := opts.Destination
	if destination == "" {
		destination = "."
	}

	node, err := getObjectByPath(ctx, repo, folderPath)
	if err != nil {
		return nil, err
	}

	report := &entities.DownloadReport{}
	switch node.BaseType() {
	case entities.BaseTypeFolder:
		err = it.DownloadFolder(ctx, repo, *node, destination, report)
	case entities.BaseTypeDocument:
		err = it.fetcher.Fetch(ctx, repo, *node, destination, report)
	default:
		err = fmt.Errorf("%w: %s is a %s", entities.ErrNotAFolder, folderPath, node.BaseTypeID)
	}
	if err != nil {
		return report, err
	}

	logger.Infof(
		"Download complete: %d files (%s), %d directories, %d skipped",
		report.Files, humanize.Bytes(uint64(report.Bytes)), report.Directories, report.Skipped,
	)
	return report, nil
}

// DownloadFolder writes every document of folder into localDir, then creates one
// directory per sub-folder and recurses into it. Documents come before sub-folders.
// The destination is threaded through the recursion; the working directory is never changed.
func (it *DownloadCommand) DownloadFolder(
	ctx context.Context,
	repo repositories.CMISRepository,
	folder entities.Node,
	localDir string,
	report *entities.DownloadReport,
) error {
	children, err := repo.GetChildren(ctx, folder)
	if err != nil {
		return fmt.Errorf("failed to list children of %q: %w", folder.Name, err)
	}

	for _, document := range entities.FilterByBaseType(children, entities.BaseTypeDocument) {
		if fetchErr := it.fetcher.Fetch(ctx, repo, document, localDir, report); fetchErr != nil {
			return fetchErr
		}
	}

	for _, subFolder := range entities.FilterByBaseType(children, entities.BaseTypeFolder) {
		if !entities.IsSafeLocalName(subFolder.Name) {
			return fmt.Errorf(
				"%w: folder name %q is not usable as a local directory name",
				entities.ErrDirectoryCreate, subFolder.Name,
			)
		}

		subDir := filepath.Join(localDir, subFolder.Name)
		if mkdirErr := it.local.CreateDirectory(subDir); mkdirErr != nil {
			return mkdirErr
		}
		report.Directories++
		logger.Debugf("Created directory %s", subDir)

		if walkErr := it.DownloadFolder(ctx, repo, subFolder, subDir, report); walkErr != nil {
			return walkErr
		}
	}

	return nil
}
