//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cmistools/internal/domain/commands"
	"github.com/rios0rios0/cmistools/internal/domain/entities"
	doubles "github.com/rios0rios0/cmistools/test/infrastructure/repositorydoubles"
)

func newUploadCommand(
	repo *doubles.SpyCMISRepository,
	local *doubles.SpyLocalFileRepository,
) *commands.UploadCommand {
	return commands.NewUploadCommand(&doubles.StubConnector{Repository: repo}, local)
}

func TestUploadCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should create the missing folders and upload every file into the last one", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		local := doubles.NewSpyLocalFileRepository()
		local.Files["file1"] = "first"
		local.Files["file2"] = "second"
		cmd := newUploadCommand(repo, local)

		// when
		report, err := cmd.Execute(context.Background(), commands.UploadOptions{
			TargetPath: "a/b",
			Files:      []string{"file1", "file2"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/a", "/a/b"}, repo.CreatedFolders)
		assert.Equal(t, 2, report.CreatedFolders)
		assert.Equal(t, 2, report.Uploaded)
		require.Len(t, repo.CreatedDocuments, 2)
		target, found, _ := repo.LookupObjectByPath(context.Background(), "/a/b")
		require.True(t, found)
		assert.Equal(t, doubles.CreatedDocument{
			ParentID: target.ID, Name: "file1", MimeType: "text/plain", Content: "first",
		}, repo.CreatedDocuments[0])
		assert.Equal(t, "file2", repo.CreatedDocuments[1].Name)
	})

	t.Run("should reuse existing folders when run twice with the same path", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		local := doubles.NewSpyLocalFileRepository()
		local.Files["file1"] = "first"
		cmd := newUploadCommand(repo, local)
		opts := commands.UploadOptions{TargetPath: "/a/b", Files: []string{"file1"}}
		_, err := cmd.Execute(context.Background(), opts)
		require.NoError(t, err)

		// when
		report, err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, report.CreatedFolders)
		assert.Equal(t, []string{"/a", "/a/b"}, repo.CreatedFolders)
		assert.Len(t, repo.CreatedDocuments, 2)
	})

	t.Run("should skip directories in the file list", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		local := doubles.NewSpyLocalFileRepository()
		local.Files["file1"] = "first"
		local.Directories["somedir"] = true
		local.Files["file2"] = "second"
		cmd := newUploadCommand(repo, local)

		// when
		report, err := cmd.Execute(context.Background(), commands.UploadOptions{
			TargetPath: "docs",
			Files:      []string{"file1", "somedir", "file2"},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, report.Uploaded)
		assert.Equal(t, 1, report.Skipped)
		names := make([]string, 0, len(repo.CreatedDocuments))
		for _, document := range repo.CreatedDocuments {
			names = append(names, document.Name)
		}
		assert.Equal(t, []string{"file1", "file2"}, names)
	})

	t.Run("should upload into the root when the target path is the root", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		local := doubles.NewSpyLocalFileRepository()
		local.Files["notes.txt"] = "notes"
		cmd := newUploadCommand(repo, local)

		// when
		_, err := cmd.Execute(context.Background(), commands.UploadOptions{
			TargetPath: "/",
			Files:      []string{"notes.txt"},
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, repo.CreatedFolders)
		require.Len(t, repo.CreatedDocuments, 1)
		assert.Equal(t, doubles.RootFolderID, repo.CreatedDocuments[0].ParentID)
	})

	t.Run("should not create a folder when the lookup fails for another reason", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		repo.LookupErrs["/a"] = fmt.Errorf("%w: access to /a refused", entities.ErrPermissionDenied)
		local := doubles.NewSpyLocalFileRepository()
		local.Files["file1"] = "first"
		cmd := newUploadCommand(repo, local)

		// when
		_, err := cmd.Execute(context.Background(), commands.UploadOptions{
			TargetPath: "a/b",
			Files:      []string{"file1"},
		})

		// then
		require.ErrorIs(t, err, entities.ErrPermissionDenied)
		assert.Empty(t, repo.CreatedFolders)
		assert.Empty(t, repo.CreatedDocuments)
	})

	t.Run("should refuse a target path that runs through a document", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		repo.AddDocument(doubles.RootFolderID, "a", "not a folder")
		local := doubles.NewSpyLocalFileRepository()
		local.Files["file1"] = "first"
		cmd := newUploadCommand(repo, local)

		// when
		_, err := cmd.Execute(context.Background(), commands.UploadOptions{
			TargetPath: "a/b",
			Files:      []string{"file1"},
		})

		// then
		require.ErrorIs(t, err, entities.ErrNotAFolder)
		assert.Empty(t, repo.CreatedFolders)
	})

	t.Run("should fail on a local file that does not exist", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		cmd := newUploadCommand(repo, doubles.NewSpyLocalFileRepository())

		// when
		_, err := cmd.Execute(context.Background(), commands.UploadOptions{
			TargetPath: "docs",
			Files:      []string{"missing.txt"},
		})

		// then
		require.Error(t, err)
		assert.ErrorContains(t, err, "missing.txt")
		assert.Empty(t, repo.CreatedDocuments)
	})
}
