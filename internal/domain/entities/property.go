package entities

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Well-known CMIS property ids.
const (
	PropertyObjectID     = "cmis:objectId"
	PropertyName         = "cmis:name"
	PropertyBaseTypeID   = "cmis:baseTypeId"
	PropertyObjectTypeID = "cmis:objectTypeId"
	PropertyPath         = "cmis:path"
)

// PropertyType is the CMIS data type of a property value.
type PropertyType string

const (
	PropertyTypeString   PropertyType = "string"
	PropertyTypeBoolean  PropertyType = "boolean"
	PropertyTypeInteger  PropertyType = "integer"
	PropertyTypeDecimal  PropertyType = "decimal"
	PropertyTypeDateTime PropertyType = "datetime"
	PropertyTypeID       PropertyType = "id"
	PropertyTypeURI      PropertyType = "uri"
	PropertyTypeHTML     PropertyType = "html"
)

// Property is a single, possibly multi-valued, typed property.
// Values hold string, bool, int64, float64 or time.Time depending on Type.
type Property struct {
	ID     string
	Type   PropertyType
	Values []any
}

// NewStringProperty builds a single-valued property of the given type.
func NewStringProperty(id string, propertyType PropertyType, value string) Property {
	return Property{ID: id, Type: propertyType, Values: []any{value}}
}

// First returns the first value, or nil when the property is not set.
func (it Property) First() any {
	if len(it.Values) == 0 {
		return nil
	}
	return it.Values[0]
}

// Interface returns nil, the single value, or all values, in that order of
// preference. Used by structured output encoders.
func (it Property) Interface() any {
	switch len(it.Values) {
	case 0:
		return nil
	case 1:
		return it.Values[0]
	default:
		return it.Values
	}
}

// String renders the value(s) for display; multiple values are joined with ", ".
func (it Property) String() string {
	parts := make([]string, 0, len(it.Values))
	for _, value := range it.Values {
		parts = append(parts, formatValue(value))
	}
	return strings.Join(parts, ", ")
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case time.Time:
		return typed.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(typed)
	}
}

// Properties maps property ids (or query names for query results) to values.
type Properties map[string]Property

// String returns the display value of the given property, or "" when absent.
func (it Properties) String(id string) string {
	property, ok := it[id]
	if !ok {
		return ""
	}
	return property.String()
}

// BaseTypeID returns the raw cmis:baseTypeId value, or "" when absent.
func (it Properties) BaseTypeID() string {
	return it.String(PropertyBaseTypeID)
}

// BaseType returns the parsed base type discriminator.
func (it Properties) BaseType() BaseType {
	return ParseBaseType(it.BaseTypeID())
}

// Find looks a property up by key first and then by its declared id.
// Query results are keyed by query name, which may differ from the id.
func (it Properties) Find(id string) (Property, bool) {
	if property, ok := it[id]; ok {
		return property, true
	}
	for _, property := range it {
		if property.ID == id {
			return property, true
		}
	}
	return Property{}, false
}

// Keys returns the property keys in sorted order.
func (it Properties) Keys() []string {
	keys := make([]string, 0, len(it))
	for key := range it {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
