package browser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// repositoryInfoJSON is one entry of the service document.
type repositoryInfoJSON struct {
	RepositoryID          string `json:"repositoryId"`
	RepositoryName        string `json:"repositoryName"`
	RepositoryDescription string `json:"repositoryDescription"`
	ProductName           string `json:"productName"`
	ProductVersion        string `json:"productVersion"`
	RootFolderID          string `json:"rootFolderId"`
	RepositoryURL         string `json:"repositoryUrl"`
	RootFolderURL         string `json:"rootFolderUrl"`
	CMISVersionSupported  string `json:"cmisVersionSupported"`
	Capabilities          struct {
		CapabilityQuery string `json:"capabilityQuery"`
	} `json:"capabilities"`
}

func (it repositoryInfoJSON) toEntity() entities.RepositoryInfo {
	return entities.RepositoryInfo{
		ID:              it.RepositoryID,
		Name:            it.RepositoryName,
		Description:     it.RepositoryDescription,
		ProductName:     it.ProductName,
		ProductVersion:  it.ProductVersion,
		CMISVersion:     it.CMISVersionSupported,
		RootFolderID:    it.RootFolderID,
		QueryCapability: it.Capabilities.CapabilityQuery,
	}
}

type propertyJSON struct {
	ID    string          `json:"id"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type objectJSON struct {
	Properties map[string]propertyJSON `json:"properties"`
}

type childrenJSON struct {
	Objects []struct {
		Object objectJSON `json:"object"`
	} `json:"objects"`
	HasMoreItems bool `json:"hasMoreItems"`
}

type queryResultJSON struct {
	Results      []objectJSON `json:"results"`
	HasMoreItems bool         `json:"hasMoreItems"`
}

func (it objectJSON) toProperties() (entities.Properties, error) {
	properties := make(entities.Properties, len(it.Properties))
	for key, raw := range it.Properties {
		property, err := raw.toProperty(key)
		if err != nil {
			return nil, err
		}
		properties[key] = property
	}
	return properties, nil
}

func (it objectJSON) toNode() (*entities.Node, error) {
	properties, err := it.toProperties()
	if err != nil {
		return nil, err
	}
	node := entities.NewNode(properties)
	return &node, nil
}

func (it propertyJSON) toProperty(key string) (entities.Property, error) {
	property := entities.Property{ID: it.ID, Type: entities.PropertyType(it.Type)}
	if property.ID == "" {
		property.ID = key
	}

	raw := bytes.TrimSpace(it.Value)
	if len(raw) == 0 || string(raw) == "null" {
		return property, nil
	}

	rawValues := []json.RawMessage{raw}
	if raw[0] == '[' {
		rawValues = nil
		if err := json.Unmarshal(raw, &rawValues); err != nil {
			return property, fmt.Errorf("property %s: %w", property.ID, err)
		}
	}

	for _, rawValue := range rawValues {
		value, err := convertValue(property.Type, rawValue)
		if err != nil {
			return property, fmt.Errorf("property %s: %w", property.ID, err)
		}
		if value != nil {
			property.Values = append(property.Values, value)
		}
	}
	return property, nil
}

// convertValue decodes one JSON value according to the declared CMIS type.
// Datetimes arrive as milliseconds since the epoch.
func convertValue(propertyType entities.PropertyType, raw json.RawMessage) (any, error) {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, err
	}

	switch typed := value.(type) {
	case json.Number:
		return convertNumber(propertyType, typed)
	case string:
		if propertyType == entities.PropertyTypeDateTime {
			if parsed, err := time.Parse(time.RFC3339Nano, typed); err == nil {
				return parsed.UTC(), nil
			}
		}
		return typed, nil
	default:
		// bool, nil, or nested structures this adapter does not interpret
		return typed, nil
	}
}

func convertNumber(propertyType entities.PropertyType, number json.Number) (any, error) {
	switch propertyType {
	case entities.PropertyTypeDateTime:
		millis, err := number.Int64()
		if err != nil {
			return nil, err
		}
		return time.UnixMilli(millis).UTC(), nil
	case entities.PropertyTypeInteger:
		if integer, err := number.Int64(); err == nil {
			return integer, nil
		}
		return number.Float64()
	default:
		return number.Float64()
	}
}
