//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

func TestPropertyString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		property entities.Property
		expected string
	}{
		{
			name:     "should render an unset property as empty",
			property: entities.Property{ID: "cmis:description"},
			expected: "",
		},
		{
			name:     "should render an integer",
			property: entities.Property{ID: "cmis:contentStreamLength", Values: []any{int64(1024)}},
			expected: "1024",
		},
		{
			name:     "should render a boolean",
			property: entities.Property{ID: "cmis:isLatestVersion", Values: []any{true}},
			expected: "true",
		},
		{
			name: "should render a datetime in UTC",
			property: entities.Property{
				ID:     "cmis:creationDate",
				Values: []any{time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
			},
			expected: "2024-03-01T12:30:00Z",
		},
		{
			name:     "should join multiple values",
			property: entities.Property{ID: "tags", Values: []any{"a", "b", "c"}},
			expected: "a, b, c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			property := tt.property

			// when
			result := property.String()

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestPropertyInterface(t *testing.T) {
	t.Parallel()

	t.Run("should unwrap a single value", func(t *testing.T) {
		t.Parallel()

		// given
		property := entities.NewStringProperty("cmis:name", entities.PropertyTypeString, "a.txt")

		// when
		result := property.Interface()

		// then
		assert.Equal(t, "a.txt", result)
	})

	t.Run("should keep multiple values as a slice", func(t *testing.T) {
		t.Parallel()

		// given
		property := entities.Property{ID: "tags", Values: []any{"a", "b"}}

		// when
		result := property.Interface()

		// then
		assert.Equal(t, []any{"a", "b"}, result)
	})
}

func TestPropertiesFind(t *testing.T) {
	t.Parallel()

	t.Run("should find a property by its id when keyed by query name", func(t *testing.T) {
		t.Parallel()

		// given
		properties := entities.Properties{
			"d.cmis:objectId": entities.NewStringProperty(entities.PropertyObjectID, entities.PropertyTypeID, "doc-7"),
		}

		// when
		property, found := properties.Find(entities.PropertyObjectID)

		// then
		assert.True(t, found)
		assert.Equal(t, "doc-7", property.String())
	})

	t.Run("should report a missing property", func(t *testing.T) {
		t.Parallel()

		// given
		properties := entities.Properties{}

		// when
		_, found := properties.Find(entities.PropertyObjectID)

		// then
		assert.False(t, found)
	})
}

func TestNewResultRow(t *testing.T) {
	t.Parallel()

	t.Run("should take the object id from an aliased column", func(t *testing.T) {
		t.Parallel()

		// given
		properties := entities.Properties{
			"id": entities.NewStringProperty(entities.PropertyObjectID, entities.PropertyTypeID, "doc-3"),
		}

		// when
		row := entities.NewResultRow(properties)

		// then
		assert.Equal(t, "doc-3", row.ObjectID)
	})

	t.Run("should leave the object id empty when it is not selected", func(t *testing.T) {
		t.Parallel()

		// given
		properties := entities.Properties{
			"cmis:name": entities.NewStringProperty(entities.PropertyName, entities.PropertyTypeString, "a.txt"),
		}

		// when
		row := entities.NewResultRow(properties)

		// then
		assert.Empty(t, row.ObjectID)
	})
}

func TestPropertiesKeys(t *testing.T) {
	t.Parallel()

	t.Run("should return the keys sorted", func(t *testing.T) {
		t.Parallel()

		// given
		properties := entities.Properties{
			"cmis:name":       entities.Property{},
			"cmis:baseTypeId": entities.Property{},
			"cmis:objectId":   entities.Property{},
		}

		// when
		keys := properties.Keys()

		// then
		assert.Equal(t, []string{"cmis:baseTypeId", "cmis:name", "cmis:objectId"}, keys)
	})
}
