package repositories

import (
	domainRepos "github.com/rios0rios0/cmistools/internal/domain/repositories"
	"github.com/rios0rios0/cmistools/internal/infrastructure/repositories/browser"
	"github.com/rios0rios0/cmistools/internal/infrastructure/repositories/filesystem"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Browser Binding is the only CMIS binding this tool speaks
	if err := container.Provide(func() domainRepos.Connector {
		return browser.NewConnector()
	}); err != nil {
		return err
	}

	if err := container.Provide(func() domainRepos.LocalFileRepository {
		return filesystem.NewLocalFileRepository()
	}); err != nil {
		return err
	}

	return nil
}
