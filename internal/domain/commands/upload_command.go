package commands

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

// Upload is the interface for the upload command.
type Upload interface {
	Execute(ctx context.Context, opts UploadOptions) (*entities.UploadReport, error)
}

// UploadOptions holds runtime options for a single upload.
type UploadOptions struct {
	Connection entities.ConnectionSettings
	TargetPath string   // slash separated remote folder path, created when missing
	Files      []string // local paths; directories are skipped
}

// UploadCommand creates a remote folder path and uploads local files into it.
type UploadCommand struct {
	connector repositories.Connector
	local     repositories.LocalFileRepository
}

// NewUploadCommand creates a new UploadCommand.
func NewUploadCommand(
	connector repositories.Connector,
	local repositories.LocalFileRepository,
) *UploadCommand {
	return &UploadCommand{
		connector: connector,
		local:     local,
	}
}

// Execute connects, resolves or creates the target folder and uploads the files.
func (it *UploadCommand) Execute(ctx context.Context, opts UploadOptions) (*entities.UploadReport, error) {
	repo, err := connect(ctx, it.connector, opts.Connection)
	if err != nil {
		return nil, err
	}

	report := &entities.UploadReport{}
	folder, err := it.ResolveOrCreatePath(ctx, repo, opts.TargetPath, report)
	if err != nil {
		return report, err
	}

	if uploadErr := it.UploadFiles(ctx, repo, *folder, opts.Files, report); uploadErr != nil {
		return report, uploadErr
	}

	logger.Infof(
		"Upload complete: %d files (%s) uploaded, %d skipped, %d folders created",
		report.Uploaded, humanize.Bytes(uint64(report.Bytes)), report.Skipped, report.CreatedFolders,
	)
	return report, nil
}

// ResolveOrCreatePath walks path segment by segment from the root folder, creating
// every folder that does not exist yet. Re-running with the same path creates nothing.
// Lookup failures other than "not found" are returned instead of creating a folder.
func (it *UploadCommand) ResolveOrCreatePath(
	ctx context.Context,
	repo repositories.CMISRepository,
	path string,
	report *entities.UploadReport,
) (*entities.Node, error) {
	current, err := getObjectByPath(ctx, repo, rootPath)
	if err != nil {
		return nil, err
	}

	var resolved []string
	for _, segment := range splitPath(path) {
		resolved = append(resolved, segment)
		prefix := absolutePath(resolved)

		node, found, lookupErr := repo.LookupObjectByPath(ctx, prefix)
		if lookupErr != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", prefix, lookupErr)
		}

		if !found {
			logger.Infof("Creating folder %s", prefix)
			node, err = repo.CreateFolder(ctx, *current, segment)
			if err != nil {
				return nil, fmt.Errorf("failed to create folder %q: %w", prefix, err)
			}
			report.CreatedFolders++
		} else if !node.IsFolder() {
			return nil, fmt.Errorf("%w: %s is a %s", entities.ErrNotAFolder, prefix, node.BaseTypeID)
		}

		current = node
	}

	return current, nil
}

// UploadFiles uploads every non-directory path as a new document of folder,
// named after the last path element. Existing documents are never replaced.
func (it *UploadCommand) UploadFiles(
	ctx context.Context,
	repo repositories.CMISRepository,
	folder entities.Node,
	paths []string,
	report *entities.UploadReport,
) error {
	for _, path := range paths {
		isDir, err := it.local.IsDirectory(path)
		if err != nil {
			return fmt.Errorf("failed to inspect %q: %w", path, err)
		}
		if isDir {
			logger.Debugf("Skipping directory %s", path)
			report.Skipped++
			continue
		}

		if uploadErr := it.uploadFile(ctx, repo, folder, path, report); uploadErr != nil {
			return uploadErr
		}
	}
	return nil
}

func (it *UploadCommand) uploadFile(
	ctx context.Context,
	repo repositories.CMISRepository,
	folder entities.Node,
	path string,
	report *entities.UploadReport,
) error {
	content, err := it.local.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer content.Reader.Close()

	logger.Infof("Uploading %s to %s", path, folderLabel(folder))
	if _, createErr := repo.CreateDocument(ctx, folder, content.Filename, *content); createErr != nil {
		return fmt.Errorf("failed to upload %q: %w", path, createErr)
	}

	report.Uploaded++
	if content.Length > 0 {
		report.Bytes += content.Length
	}
	return nil
}

func folderLabel(folder entities.Node) string {
	if folder.Path != "" {
		return folder.Path
	}
	return folder.Name
}
