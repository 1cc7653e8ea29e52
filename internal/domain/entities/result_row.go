package entities

// ResultRow is one row of a CMIS-SQL query result.
type ResultRow struct {
	ObjectID   string
	Properties Properties
}

// NewResultRow builds a row, picking the object id out of the properties.
func NewResultRow(properties Properties) ResultRow {
	row := ResultRow{Properties: properties}
	if property, ok := properties.Find(PropertyObjectID); ok {
		row.ObjectID = property.String()
	}
	return row
}
