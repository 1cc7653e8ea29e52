package repositories

import (
	"context"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// CMISRepository abstracts a connected CMIS repository. Implementations own the
// wire protocol; the commands only ever see nodes, content streams and rows.
type CMISRepository interface {
	// Info returns the repository description obtained while connecting.
	Info() entities.RepositoryInfo

	// LookupObjectByPath resolves an absolute repository path. A missing object is
	// reported as found=false with a nil error; any other failure is an error.
	LookupObjectByPath(ctx context.Context, path string) (*entities.Node, bool, error)

	// GetObject resolves an object id, wrapping entities.ErrObjectNotFound when it does not exist.
	GetObject(ctx context.Context, objectID string) (*entities.Node, error)

	// GetChildren lists every child of a folder in repository order.
	GetChildren(ctx context.Context, folder entities.Node) ([]entities.Node, error)

	// GetContentStream fetches the content of a document. Documents without content
	// yield entities.ContentUnavailable; transport failures are errors.
	GetContentStream(ctx context.Context, document entities.Node) (entities.ContentResult, error)

	// CreateFolder creates a folder named name under parent.
	CreateFolder(ctx context.Context, parent entities.Node, name string) (*entities.Node, error)

	// CreateDocument creates a document named name under parent with the given content.
	CreateDocument(
		ctx context.Context,
		parent entities.Node,
		name string,
		content entities.ContentStream,
	) (*entities.Node, error)

	// Query runs a CMIS-SQL statement verbatim and returns every result row.
	Query(ctx context.Context, statement string) ([]entities.ResultRow, error)
}

// Connector opens a CMISRepository for the given settings.
type Connector interface {
	Connect(ctx context.Context, settings entities.ConnectionSettings) (CMISRepository, error)
}
