package controllers

import (
	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"go.uber.org/dig"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewConnectionFlags,
		NewDownloadController,
		NewListController,
		NewQueryController,
		NewUploadController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	downloadController *DownloadController,
	listController *ListController,
	queryController *QueryController,
	uploadController *UploadController,
) *[]entities.Controller {
	return &[]entities.Controller{
		downloadController,
		listController,
		queryController,
		uploadController,
	}
}
