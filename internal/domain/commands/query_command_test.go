//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/cmistools/internal/domain/commands"
	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/cmistools/test/infrastructure/repositorydoubles"
)

func newQueryCommand(
	repo *doubles.SpyCMISRepository,
	local *doubles.SpyLocalFileRepository,
) *commands.QueryCommand {
	return commands.NewQueryCommand(&doubles.StubConnector{Repository: repo}, commands.NewDocumentFetcher(local))
}

func twoRows() []entities.ResultRow {
	return []entities.ResultRow{
		entitybuilders.NewResultRowBuilder().WithObjectID("doc-1").WithColumn("cmis:name", "a.txt").BuildResultRow(),
		entitybuilders.NewResultRowBuilder().WithObjectID("doc-2").WithColumn("cmis:name", "b.txt").BuildResultRow(),
	}
}

func TestQueryCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should send the statement verbatim and print every row as text", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		repo.Rows = twoRows()
		cmd := newQueryCommand(repo, doubles.NewSpyLocalFileRepository())
		var output bytes.Buffer
		statement := "SELECT * FROM cmis:document WHERE cmis:name LIKE 'a%'"

		// when
		report, err := cmd.Execute(context.Background(), commands.QueryOptions{
			Statement: statement,
			Output:    &output,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{statement}, repo.Statements)
		assert.Equal(t, 2, report.Rows)
		assert.Equal(t, "2 results\n"+
			"\n"+
			"doc-1\n"+
			"  cmis:name: a.txt\n"+
			"  cmis:objectId: doc-1\n"+
			"\n"+
			"doc-2\n"+
			"  cmis:name: b.txt\n"+
			"  cmis:objectId: doc-2\n", output.String())
	})

	t.Run("should print only the count when nothing matches", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		cmd := newQueryCommand(repo, doubles.NewSpyLocalFileRepository())
		var output bytes.Buffer

		// when
		report, err := cmd.Execute(context.Background(), commands.QueryOptions{
			Statement: "SELECT * FROM cmis:document",
			Output:    &output,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, report.Rows)
		assert.Equal(t, "0 results\n", output.String())
	})

	t.Run("should print the rows as JSON", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		repo.Rows = twoRows()
		cmd := newQueryCommand(repo, doubles.NewSpyLocalFileRepository())
		var output bytes.Buffer

		// when
		_, err := cmd.Execute(context.Background(), commands.QueryOptions{
			Statement: "SELECT * FROM cmis:document",
			Format:    entities.OutputFormatJSON,
			Output:    &output,
		})

		// then
		require.NoError(t, err)
		var decoded []struct {
			ObjectID   string         `json:"objectId"`
			Properties map[string]any `json:"properties"`
		}
		require.NoError(t, json.Unmarshal(output.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "doc-1", decoded[0].ObjectID)
		assert.Equal(t, "a.txt", decoded[0].Properties["cmis:name"])
		assert.Equal(t, "doc-2", decoded[1].ObjectID)
	})

	t.Run("should print the rows as YAML", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		repo.Rows = twoRows()
		cmd := newQueryCommand(repo, doubles.NewSpyLocalFileRepository())
		var output bytes.Buffer

		// when
		_, err := cmd.Execute(context.Background(), commands.QueryOptions{
			Statement: "SELECT * FROM cmis:document",
			Format:    entities.OutputFormatYAML,
			Output:    &output,
		})

		// then
		require.NoError(t, err)
		var decoded []struct {
			ObjectID   string            `yaml:"objectId"`
			Properties map[string]string `yaml:"properties"`
		}
		require.NoError(t, yaml.Unmarshal(output.Bytes(), &decoded))
		require.Len(t, decoded, 2)
		assert.Equal(t, "b.txt", decoded[1].Properties["cmis:name"])
	})

	t.Run("should wrap a rejected statement in the query error", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		repo.QueryErr = errors.New("invalidArgument: syntax error near FROM")
		cmd := newQueryCommand(repo, doubles.NewSpyLocalFileRepository())
		var output bytes.Buffer

		// when
		_, err := cmd.Execute(context.Background(), commands.QueryOptions{Statement: "SELEC", Output: &output})

		// then
		require.ErrorIs(t, err, entities.ErrQuery)
		assert.ErrorContains(t, err, "syntax error")
		assert.Empty(t, output.String())
	})

	t.Run("should download every document hit and skip those without content", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		first := repo.AddDocument(doubles.RootFolderID, "first.txt", "one")
		second := repo.AddDocumentWithoutContent(doubles.RootFolderID, "second.txt")
		third := repo.AddDocument(doubles.RootFolderID, "third.txt", "three")
		repo.Rows = []entities.ResultRow{
			entitybuilders.NewResultRowBuilder().WithObjectID(first).BuildResultRow(),
			entitybuilders.NewResultRowBuilder().WithObjectID(second).BuildResultRow(),
			entitybuilders.NewResultRowBuilder().WithObjectID(third).BuildResultRow(),
		}
		local := doubles.NewSpyLocalFileRepository()
		cmd := newQueryCommand(repo, local)

		// when
		report, err := cmd.Execute(context.Background(), commands.QueryOptions{
			Statement:   "SELECT cmis:objectId FROM cmis:document",
			Download:    true,
			Destination: "hits",
			Output:      &bytes.Buffer{},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, report.Rows)
		assert.Equal(t, 2, report.Download.Files)
		assert.Equal(t, 1, report.Download.Skipped)
		assert.Equal(t, map[string]string{
			filepath.Join("hits", "first.txt"): "one",
			filepath.Join("hits", "third.txt"): "three",
		}, local.Files)
		assert.Equal(t, []string{first, second, third}, repo.ObjectIDs)
	})

	t.Run("should skip folder hits and rows without an object id", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		folder := repo.AddFolder(doubles.RootFolderID, "folder")
		repo.AddDocument(folder, "inside.txt", "inside")
		repo.Rows = []entities.ResultRow{
			entitybuilders.NewResultRowBuilder().WithObjectID(folder).BuildResultRow(),
			entitybuilders.NewResultRowBuilder().WithObjectID("").WithColumn("cmis:name", "x").BuildResultRow(),
		}
		local := doubles.NewSpyLocalFileRepository()
		cmd := newQueryCommand(repo, local)

		// when
		report, err := cmd.Execute(context.Background(), commands.QueryOptions{
			Statement: "SELECT cmis:name FROM cmis:folder",
			Download:  true,
			Output:    &bytes.Buffer{},
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 2, report.Download.Skipped)
		assert.Empty(t, local.Files)
	})

	t.Run("should not resolve any row when downloading is off", func(t *testing.T) {
		t.Parallel()

		// given
		repo := doubles.NewSpyCMISRepository()
		repo.Rows = twoRows()
		cmd := newQueryCommand(repo, doubles.NewSpyLocalFileRepository())

		// when
		_, err := cmd.Execute(context.Background(), commands.QueryOptions{
			Statement: "SELECT * FROM cmis:document",
			Output:    &bytes.Buffer{},
		})

		// then
		require.NoError(t, err)
		assert.Empty(t, repo.ObjectIDs)
	})
}
