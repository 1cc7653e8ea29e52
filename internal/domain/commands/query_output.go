package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// resultDocument is the structured (json/yaml) shape of a result row.
type resultDocument struct {
	ObjectID   string         `json:"objectId"   yaml:"objectId"`
	Properties map[string]any `json:"properties" yaml:"properties"`
}

func renderRows(output io.Writer, format entities.OutputFormat, rows []entities.ResultRow) error {
	switch format {
	case entities.OutputFormatJSON:
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(toResultDocuments(rows)); err != nil {
			return fmt.Errorf("failed to encode results as JSON: %w", err)
		}
		return nil
	case entities.OutputFormatYAML:
		encoder := yaml.NewEncoder(output)
		encoder.SetIndent(2)
		if err := encoder.Encode(toResultDocuments(rows)); err != nil {
			return fmt.Errorf("failed to encode results as YAML: %w", err)
		}
		return encoder.Close()
	default:
		renderText(output, rows)
		return nil
	}
}

func renderText(output io.Writer, rows []entities.ResultRow) {
	fmt.Fprintf(output, "%d results\n", len(rows))
	for _, row := range rows {
		fmt.Fprintln(output)
		fmt.Fprintln(output, row.ObjectID)
		printProperties(output, row.Properties)
	}
}

func toResultDocuments(rows []entities.ResultRow) []resultDocument {
	documents := make([]resultDocument, 0, len(rows))
	for _, row := range rows {
		properties := make(map[string]any, len(row.Properties))
		for key, property := range row.Properties {
			properties[key] = property.Interface()
		}
		documents = append(documents, resultDocument{
			ObjectID:   row.ObjectID,
			Properties: properties,
		})
	}
	return documents
}
