package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewDocumentFetcher,
		NewDownloadCommand,
		NewListCommand,
		NewQueryCommand,
		NewUploadCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *DownloadCommand) Download {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ListCommand) List {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *QueryCommand) Query {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *UploadCommand) Upload {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
