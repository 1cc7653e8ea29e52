package browser

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/url"
	"strconv"
	"strings"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

const defaultPageSize = 100

// Repository implements repositories.CMISRepository over the Browser Binding.
type Repository struct {
	client        *Client
	info          entities.RepositoryInfo
	repositoryURL string
	rootFolderURL string
	pageSize      int
}

var _ repositories.CMISRepository = (*Repository)(nil)

func newRepository(client *Client, info repositoryInfoJSON) *Repository {
	return &Repository{
		client:        client,
		info:          info.toEntity(),
		repositoryURL: info.RepositoryURL,
		rootFolderURL: info.RootFolderURL,
		pageSize:      defaultPageSize,
	}
}

// Info returns the repository description from the service document.
func (it *Repository) Info() entities.RepositoryInfo {
	return it.info
}

// LookupObjectByPath resolves path below the root folder URL.
func (it *Repository) LookupObjectByPath(ctx context.Context, path string) (*entities.Node, bool, error) {
	var object objectJSON
	err := it.client.getJSON(ctx, it.rootFolderURL+escapePath(path), url.Values{
		"cmisselector": {"object"},
	}, &object)
	if errors.Is(err, entities.ErrObjectNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	node, err := object.toNode()
	if err != nil {
		return nil, false, err
	}
	return node, true, nil
}

// GetObject resolves an object id.
func (it *Repository) GetObject(ctx context.Context, objectID string) (*entities.Node, error) {
	var object objectJSON
	if err := it.client.getJSON(ctx, it.rootFolderURL, url.Values{
		"objectId":     {objectID},
		"cmisselector": {"object"},
	}, &object); err != nil {
		return nil, fmt.Errorf("object %s: %w", objectID, err)
	}
	return object.toNode()
}

// GetChildren pages through the children of folder.
func (it *Repository) GetChildren(ctx context.Context, folder entities.Node) ([]entities.Node, error) {
	var children []entities.Node
	skipCount := 0

	for {
		var page childrenJSON
		if err := it.client.getJSON(ctx, it.rootFolderURL, url.Values{
			"objectId":     {folder.ID},
			"cmisselector": {"children"},
			"maxItems":     {strconv.Itoa(it.pageSize)},
			"skipCount":    {strconv.Itoa(skipCount)},
		}, &page); err != nil {
			return nil, err
		}

		for _, entry := range page.Objects {
			node, err := entry.Object.toNode()
			if err != nil {
				return nil, err
			}
			children = append(children, *node)
		}

		if !page.HasMoreItems || len(page.Objects) == 0 {
			return children, nil
		}
		skipCount += len(page.Objects)
	}
}

// GetContentStream fetches the content of document.
func (it *Repository) GetContentStream(
	ctx context.Context,
	document entities.Node,
) (entities.ContentResult, error) {
	resp, err := it.client.getStream(ctx, it.rootFolderURL, url.Values{
		"objectId":     {document.ID},
		"cmisselector": {"content"},
	})
	if err != nil {
		var cmisErr *CMISError
		if errors.As(err, &cmisErr) && cmisErr.noContent() {
			return entities.NewUnavailableContent(), nil
		}
		return entities.ContentResult{}, err
	}

	return entities.NewAvailableContent(&entities.ContentStream{
		Filename: contentFilename(resp.Header.Get("Content-Disposition"), document.Name),
		MimeType: resp.Header.Get("Content-Type"),
		Length:   resp.ContentLength,
		Reader:   resp.Body,
	}), nil
}

// CreateFolder creates a cmis:folder named name under parent.
func (it *Repository) CreateFolder(
	ctx context.Context,
	parent entities.Node,
	name string,
) (*entities.Node, error) {
	var object objectJSON
	if err := it.client.postForm(ctx, it.rootFolderURL, url.Values{"objectId": {parent.ID}},
		actionForm("createFolder",
			formField{name: entities.PropertyName, value: name},
			formField{name: entities.PropertyObjectTypeID, value: entities.BaseTypeIDFolder},
		), &object); err != nil {
		return nil, err
	}
	return object.toNode()
}

// CreateDocument creates a cmis:document named name under parent.
func (it *Repository) CreateDocument(
	ctx context.Context,
	parent entities.Node,
	name string,
	content entities.ContentStream,
) (*entities.Node, error) {
	var object objectJSON
	if err := it.client.postMultipart(ctx, it.rootFolderURL, url.Values{"objectId": {parent.ID}},
		actionForm("createDocument",
			formField{name: entities.PropertyName, value: name},
			formField{name: entities.PropertyObjectTypeID, value: entities.BaseTypeIDDocument},
		), content, &object); err != nil {
		return nil, err
	}
	return object.toNode()
}

// Query runs statement against the repository URL and pages through the results.
func (it *Repository) Query(ctx context.Context, statement string) ([]entities.ResultRow, error) {
	var rows []entities.ResultRow
	skipCount := 0

	for {
		var page queryResultJSON
		if err := it.client.getJSON(ctx, it.repositoryURL, url.Values{
			"cmisselector":      {"query"},
			"q":                 {statement},
			"searchAllVersions": {"false"},
			"maxItems":          {strconv.Itoa(it.pageSize)},
			"skipCount":         {strconv.Itoa(skipCount)},
		}, &page); err != nil {
			return nil, err
		}

		for _, result := range page.Results {
			properties, err := result.toProperties()
			if err != nil {
				return nil, err
			}
			rows = append(rows, entities.NewResultRow(properties))
		}

		if !page.HasMoreItems || len(page.Results) == 0 {
			return rows, nil
		}
		skipCount += len(page.Results)
	}
}

// escapePath turns a repository path into the suffix of the root folder URL.
func escapePath(path string) string {
	var escaped []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			escaped = append(escaped, url.PathEscape(segment))
		}
	}
	if len(escaped) == 0 {
		return ""
	}
	return "/" + strings.Join(escaped, "/")
}

func contentFilename(disposition, fallback string) string {
	if disposition == "" {
		return fallback
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil || params["filename"] == "" {
		return fallback
	}
	return params["filename"]
}
