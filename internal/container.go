package internal

import (
	"github.com/rios0rios0/cmistools/internal/domain/commands"
	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/infrastructure/controllers"
	"github.com/rios0rios0/cmistools/internal/infrastructure/repositories"
	"go.uber.org/dig"
)

// RegisterProviders registers all internal providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register all layers (bottom-up: infrastructure repos -> domain entities -> domain commands -> controllers)
	if err := repositories.RegisterProviders(container); err != nil {
		return err
	}
	if err := entities.RegisterProviders(container); err != nil {
		return err
	}
	if err := commands.RegisterProviders(container); err != nil {
		return err
	}
	if err := controllers.RegisterProviders(container); err != nil {
		return err
	}

	// Register the main app internal
	if err := container.Provide(NewAppInternal); err != nil {
		return err
	}

	return nil
}

// InjectAppContext builds the DIG container and resolves the AppInternal.
func InjectAppContext() (*AppInternal, error) {
	container := dig.New()

	// Register all providers
	if err := RegisterProviders(container); err != nil {
		return nil, err
	}

	var appInternal *AppInternal
	if err := container.Invoke(func(ai *AppInternal) {
		appInternal = ai
	}); err != nil {
		return nil, err
	}

	return appInternal, nil
}
