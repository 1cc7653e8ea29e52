//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cmistools/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// NodeBuilder helps create test nodes with a fluent interface.
type NodeBuilder struct {
	*testkit.BaseBuilder
	id         string
	name       string
	baseTypeID string
	path       string
	extra      entities.Properties
}

// NewNodeBuilder creates a new node builder with sensible defaults.
func NewNodeBuilder() *NodeBuilder {
	return &NodeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "node-1",
		name:        "report.txt",
		baseTypeID:  entities.BaseTypeIDDocument,
		extra:       entities.Properties{},
	}
}

// WithID sets the object id.
func (b *NodeBuilder) WithID(id string) *NodeBuilder {
	b.id = id
	return b
}

// WithName sets the object name.
func (b *NodeBuilder) WithName(name string) *NodeBuilder {
	b.name = name
	return b
}

// WithBaseTypeID sets the raw cmis:baseTypeId.
func (b *NodeBuilder) WithBaseTypeID(baseTypeID string) *NodeBuilder {
	b.baseTypeID = baseTypeID
	return b
}

// AsDocument makes the node a cmis:document.
func (b *NodeBuilder) AsDocument() *NodeBuilder {
	b.baseTypeID = entities.BaseTypeIDDocument
	b.path = ""
	return b
}

// AsFolder makes the node a cmis:folder at the given path.
func (b *NodeBuilder) AsFolder(path string) *NodeBuilder {
	b.baseTypeID = entities.BaseTypeIDFolder
	b.path = path
	return b
}

// WithProperty adds a single-valued string property.
func (b *NodeBuilder) WithProperty(id, value string) *NodeBuilder {
	b.extra[id] = entities.NewStringProperty(id, entities.PropertyTypeString, value)
	return b
}

// Build creates the node (satisfies testkit.Builder interface).
func (b *NodeBuilder) Build() interface{} {
	return b.BuildNode()
}

// BuildNode creates the node with a concrete return type.
func (b *NodeBuilder) BuildNode() entities.Node {
	properties := entities.Properties{
		entities.PropertyObjectID: entities.NewStringProperty(
			entities.PropertyObjectID, entities.PropertyTypeID, b.id),
		entities.PropertyName: entities.NewStringProperty(
			entities.PropertyName, entities.PropertyTypeString, b.name),
	}
	if b.baseTypeID != "" {
		properties[entities.PropertyBaseTypeID] = entities.NewStringProperty(
			entities.PropertyBaseTypeID, entities.PropertyTypeID, b.baseTypeID)
	}
	if b.path != "" {
		properties[entities.PropertyPath] = entities.NewStringProperty(
			entities.PropertyPath, entities.PropertyTypeString, b.path)
	}
	for id, property := range b.extra {
		properties[id] = property
	}
	return entities.NewNode(properties)
}

// Reset clears the builder state, allowing it to be reused.
func (b *NodeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "node-1"
	b.name = "report.txt"
	b.baseTypeID = entities.BaseTypeIDDocument
	b.path = ""
	b.extra = entities.Properties{}
	return b
}

// Clone creates a deep copy of the NodeBuilder.
func (b *NodeBuilder) Clone() testkit.Builder {
	extra := make(entities.Properties, len(b.extra))
	for id, property := range b.extra {
		extra[id] = property
	}
	return &NodeBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		name:        b.name,
		baseTypeID:  b.baseTypeID,
		path:        b.path,
		extra:       extra,
	}
}
