package entities

import "errors"

var (
	// ErrConnection is returned when the repository is unreachable or rejects the credentials.
	ErrConnection = errors.New("cannot connect to CMIS repository")
	// ErrObjectNotFound is returned when a path or object id does not resolve.
	ErrObjectNotFound = errors.New("object not found")
	// ErrPermissionDenied is returned when the repository refuses an operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrDirectoryCreate is returned when a local mirror directory cannot be created.
	ErrDirectoryCreate = errors.New("cannot create local directory")
	// ErrQuery is returned when the repository rejects a query statement.
	ErrQuery = errors.New("query failed")
	// ErrNotAFolder is returned when a path expected to be a folder resolves to something else.
	ErrNotAFolder = errors.New("not a folder")
)
