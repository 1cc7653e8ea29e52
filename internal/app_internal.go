package internal

import (
	"strings"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// AppInternal holds every controller the binaries can expose.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the AppInternal from the aggregated controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns all registered controllers.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}

// GetController returns the controller whose command name is the given one.
func (it *AppInternal) GetController(name string) (entities.Controller, bool) {
	for _, controller := range it.controllers {
		if CommandName(controller.GetBind()) == name {
			return controller, true
		}
	}
	return nil, false
}

// CommandName returns the first word of the bind's usage line.
func CommandName(bind entities.ControllerBind) string {
	name, _, _ := strings.Cut(bind.Use, " ")
	return name
}
