//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cmistools/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ResultRowBuilder helps create query result rows with a fluent interface.
type ResultRowBuilder struct {
	*testkit.BaseBuilder
	objectID   string
	properties entities.Properties
}

// NewResultRowBuilder creates a new result row builder with sensible defaults.
func NewResultRowBuilder() *ResultRowBuilder {
	return &ResultRowBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		objectID:    "doc-1",
		properties:  entities.Properties{},
	}
}

// WithObjectID sets the cmis:objectId column. An empty id leaves the column out.
func (b *ResultRowBuilder) WithObjectID(objectID string) *ResultRowBuilder {
	b.objectID = objectID
	return b
}

// WithColumn adds a string column under its query name.
func (b *ResultRowBuilder) WithColumn(queryName, value string) *ResultRowBuilder {
	b.properties[queryName] = entities.NewStringProperty(queryName, entities.PropertyTypeString, value)
	return b
}

// Build creates the row (satisfies testkit.Builder interface).
func (b *ResultRowBuilder) Build() interface{} {
	return b.BuildResultRow()
}

// BuildResultRow creates the row with a concrete return type.
func (b *ResultRowBuilder) BuildResultRow() entities.ResultRow {
	properties := make(entities.Properties, len(b.properties)+1)
	for key, property := range b.properties {
		properties[key] = property
	}
	if b.objectID != "" {
		properties[entities.PropertyObjectID] = entities.NewStringProperty(
			entities.PropertyObjectID, entities.PropertyTypeID, b.objectID)
	}
	return entities.NewResultRow(properties)
}

// Reset clears the builder state, allowing it to be reused.
func (b *ResultRowBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.objectID = "doc-1"
	b.properties = entities.Properties{}
	return b
}

// Clone creates a deep copy of the ResultRowBuilder.
func (b *ResultRowBuilder) Clone() testkit.Builder {
	properties := make(entities.Properties, len(b.properties))
	for key, property := range b.properties {
		properties[key] = property
	}
	return &ResultRowBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		objectID:    b.objectID,
		properties:  properties,
	}
}
