package entities

import (
	"path/filepath"
	"strings"
)

// Node is a remote CMIS object as seen by the commands.
type Node struct {
	ID         string
	Name       string
	BaseTypeID string
	Path       string // only set for folders
	Properties Properties
}

// NewNode builds a Node from its property bag.
func NewNode(properties Properties) Node {
	return Node{
		ID:         properties.String(PropertyObjectID),
		Name:       properties.String(PropertyName),
		BaseTypeID: properties.BaseTypeID(),
		Path:       properties.String(PropertyPath),
		Properties: properties,
	}
}

// BaseType returns the closed base type discriminator of the node.
func (it Node) BaseType() BaseType {
	return ParseBaseType(it.BaseTypeID)
}

// IsDocument reports whether the node is a document.
func (it Node) IsDocument() bool {
	return it.BaseType() == BaseTypeDocument
}

// IsFolder reports whether the node is a folder.
func (it Node) IsFolder() bool {
	return it.BaseType() == BaseTypeFolder
}

// IsSafeLocalName reports whether name can be used as a single local path
// element without escaping the directory it is written into.
func IsSafeLocalName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
		return false
	}
	return filepath.VolumeName(name) == ""
}
