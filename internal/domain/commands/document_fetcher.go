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

// DocumentFetcher saves the content stream of a single document into a local directory.
// Shared by the download and query commands.
type DocumentFetcher struct {
	local repositories.LocalFileRepository
}

// NewDocumentFetcher creates a new DocumentFetcher.
func NewDocumentFetcher(local repositories.LocalFileRepository) *DocumentFetcher {
	return &DocumentFetcher{local: local}
}

// Fetch writes document into localDir under its own name, overwriting an existing file.
// Documents without content, or whose name cannot be a local file name, are skipped
// and counted in report.Skipped. Transport and disk failures are returned.
func (it *DocumentFetcher) Fetch(
	ctx context.Context,
	repo repositories.CMISRepository,
	document entities.Node,
	localDir string,
	report *entities.DownloadReport,
) error {
	logger.Infof("Downloading %s", document.Name)

	if !entities.IsSafeLocalName(document.Name) {
		logger.Warnf("Skipping %q: not usable as a local file name", document.Name)
		report.Skipped++
		return nil
	}

	result, err := repo.GetContentStream(ctx, document)
	if err != nil {
		return fmt.Errorf("failed to fetch content of %q: %w", document.Name, err)
	}
	if result.Outcome == entities.ContentUnavailable {
		logger.Warnf("Skipping %s: no content stream", document.Name)
		report.Skipped++
		return nil
	}
	defer result.Stream.Reader.Close()

	target := filepath.Join(localDir, document.Name)
	written, err := it.local.WriteFile(target, result.Stream.Reader)
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", target, err)
	}

	report.Files++
	report.Bytes += written
	logger.Debugf("Saved %s (%s)", target, humanize.Bytes(uint64(written)))
	return nil
}
