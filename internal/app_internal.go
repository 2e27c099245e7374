package internal

import "github.com/rios0rios0/cracgen/internal/domain/entities"

// AppInternal holds everything the CLI entry point mounts.
type AppInternal struct {
	controllers []entities.Controller
}

// NewAppInternal creates the application root from the registered controllers.
func NewAppInternal(controllers *[]entities.Controller) *AppInternal {
	return &AppInternal{controllers: *controllers}
}

// GetControllers returns the controllers to mount as subcommands.
func (it *AppInternal) GetControllers() []entities.Controller {
	return it.controllers
}
