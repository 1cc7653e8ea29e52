//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

// RootFolderID is the object id of the root folder of every SpyCMISRepository.
const RootFolderID = "root"

// CreatedDocument records one CreateDocument call.
type CreatedDocument struct {
	ParentID string
	Name     string
	MimeType string
	Content  string
}

// SpyCMISRepository implements repositories.CMISRepository as an in-memory folder tree.
type SpyCMISRepository struct {
	// --- identity ---
	RepositoryInfo entities.RepositoryInfo

	// --- tree ---
	Nodes    map[string]entities.Node // by object id
	Children map[string][]string      // folder id -> child ids in listing order
	Contents map[string]string        // document id -> content; absent means no stream
	nextID   int

	// --- LookupObjectByPath ---
	LookupErrs    map[string]error // by path
	LookedUpPaths []string

	// --- GetObject ---
	GetObjectErr error
	ObjectIDs    []string

	// --- GetChildren ---
	ChildrenErrs map[string]error // by folder id

	// --- GetContentStream ---
	ContentErrs map[string]error // by document id
	FetchedIDs  []string

	// --- CreateFolder ---
	CreateFolderErr error
	CreatedFolders  []string // paths

	// --- CreateDocument ---
	CreateDocumentErr error
	CreatedDocuments  []CreatedDocument

	// --- Query ---
	Rows       []entities.ResultRow
	QueryErr   error
	Statements []string
}

var _ repositories.CMISRepository = (*SpyCMISRepository)(nil)

// NewSpyCMISRepository creates a spy holding only the root folder.
func NewSpyCMISRepository() *SpyCMISRepository {
	spy := &SpyCMISRepository{
		RepositoryInfo: entities.RepositoryInfo{ID: "test", Name: "Test Repository", RootFolderID: RootFolderID},
		Nodes:          map[string]entities.Node{},
		Children:       map[string][]string{},
		Contents:       map[string]string{},
		LookupErrs:     map[string]error{},
		ChildrenErrs:   map[string]error{},
		ContentErrs:    map[string]error{},
	}
	spy.Nodes[RootFolderID] = newNode(RootFolderID, "", entities.BaseTypeIDFolder, "/")
	return spy
}

// AddFolder adds a folder under parentID and returns its id.
func (s *SpyCMISRepository) AddFolder(parentID, name string) string {
	id := s.newID("folder")
	s.insert(parentID, newNode(id, name, entities.BaseTypeIDFolder, joinPath(s.Nodes[parentID].Path, name)))
	return id
}

// AddDocument adds a document with content under parentID and returns its id.
func (s *SpyCMISRepository) AddDocument(parentID, name, content string) string {
	id := s.AddDocumentWithoutContent(parentID, name)
	s.Contents[id] = content
	return id
}

// AddDocumentWithoutContent adds a document that has no content stream.
func (s *SpyCMISRepository) AddDocumentWithoutContent(parentID, name string) string {
	id := s.newID("doc")
	s.insert(parentID, newNode(id, name, entities.BaseTypeIDDocument, ""))
	return id
}

// AddObject adds a child of any base type under parentID and returns its id.
func (s *SpyCMISRepository) AddObject(parentID, name, baseTypeID string) string {
	id := s.newID("object")
	s.insert(parentID, newNode(id, name, baseTypeID, ""))
	return id
}

// PathOf returns the path of the object with the given id.
func (s *SpyCMISRepository) PathOf(id string) string {
	node := s.Nodes[id]
	if node.Path != "" {
		return node.Path
	}
	for parentID, childIDs := range s.Children {
		for _, childID := range childIDs {
			if childID == id {
				return joinPath(s.PathOf(parentID), node.Name)
			}
		}
	}
	return ""
}

func (s *SpyCMISRepository) Info() entities.RepositoryInfo { return s.RepositoryInfo }

func (s *SpyCMISRepository) LookupObjectByPath(
	_ context.Context, path string,
) (*entities.Node, bool, error) {
	s.LookedUpPaths = append(s.LookedUpPaths, path)
	if err := s.LookupErrs[path]; err != nil {
		return nil, false, err
	}

	current := s.Nodes[RootFolderID]
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		child, ok := s.child(current.ID, segment)
		if !ok {
			return nil, false, nil
		}
		current = child
	}
	return &current, true, nil
}

func (s *SpyCMISRepository) GetObject(_ context.Context, objectID string) (*entities.Node, error) {
	s.ObjectIDs = append(s.ObjectIDs, objectID)
	if s.GetObjectErr != nil {
		return nil, s.GetObjectErr
	}
	node, ok := s.Nodes[objectID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entities.ErrObjectNotFound, objectID)
	}
	return &node, nil
}

func (s *SpyCMISRepository) GetChildren(_ context.Context, folder entities.Node) ([]entities.Node, error) {
	if err := s.ChildrenErrs[folder.ID]; err != nil {
		return nil, err
	}
	children := make([]entities.Node, 0, len(s.Children[folder.ID]))
	for _, id := range s.Children[folder.ID] {
		children = append(children, s.Nodes[id])
	}
	return children, nil
}

func (s *SpyCMISRepository) GetContentStream(
	_ context.Context, document entities.Node,
) (entities.ContentResult, error) {
	s.FetchedIDs = append(s.FetchedIDs, document.ID)
	if err := s.ContentErrs[document.ID]; err != nil {
		return entities.ContentResult{}, err
	}
	content, ok := s.Contents[document.ID]
	if !ok {
		return entities.NewUnavailableContent(), nil
	}
	return entities.NewAvailableContent(&entities.ContentStream{
		Filename: document.Name,
		MimeType: "text/plain",
		Length:   int64(len(content)),
		Reader:   io.NopCloser(strings.NewReader(content)),
	}), nil
}

func (s *SpyCMISRepository) CreateFolder(
	_ context.Context, parent entities.Node, name string,
) (*entities.Node, error) {
	if s.CreateFolderErr != nil {
		return nil, s.CreateFolderErr
	}
	id := s.AddFolder(parent.ID, name)
	node := s.Nodes[id]
	s.CreatedFolders = append(s.CreatedFolders, node.Path)
	return &node, nil
}

func (s *SpyCMISRepository) CreateDocument(
	_ context.Context, parent entities.Node, name string, content entities.ContentStream,
) (*entities.Node, error) {
	if s.CreateDocumentErr != nil {
		return nil, s.CreateDocumentErr
	}
	data, err := io.ReadAll(content.Reader)
	if err != nil {
		return nil, err
	}
	s.CreatedDocuments = append(s.CreatedDocuments, CreatedDocument{
		ParentID: parent.ID,
		Name:     name,
		MimeType: content.MimeType,
		Content:  string(data),
	})
	id := s.AddDocument(parent.ID, name, string(data))
	node := s.Nodes[id]
	return &node, nil
}

func (s *SpyCMISRepository) Query(_ context.Context, statement string) ([]entities.ResultRow, error) {
	s.Statements = append(s.Statements, statement)
	return s.Rows, s.QueryErr
}

func (s *SpyCMISRepository) child(parentID, name string) (entities.Node, bool) {
	for _, id := range s.Children[parentID] {
		if s.Nodes[id].Name == name {
			return s.Nodes[id], true
		}
	}
	return entities.Node{}, false
}

func (s *SpyCMISRepository) insert(parentID string, node entities.Node) {
	s.Nodes[node.ID] = node
	s.Children[parentID] = append(s.Children[parentID], node.ID)
}

func (s *SpyCMISRepository) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

func newNode(id, name, baseTypeID, path string) entities.Node {
	properties := entities.Properties{
		entities.PropertyObjectID:   entities.NewStringProperty(entities.PropertyObjectID, entities.PropertyTypeID, id),
		entities.PropertyName:       entities.NewStringProperty(entities.PropertyName, entities.PropertyTypeString, name),
		entities.PropertyBaseTypeID: entities.NewStringProperty(entities.PropertyBaseTypeID, entities.PropertyTypeID, baseTypeID),
	}
	if path != "" {
		properties[entities.PropertyPath] = entities.NewStringProperty(
			entities.PropertyPath, entities.PropertyTypeString, path)
	}
	return entities.NewNode(properties)
}

func joinPath(parent, name string) string {
	return strings.TrimRight(parent, "/") + "/" + name
}
