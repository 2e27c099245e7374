package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCreateAppController); err != nil {
		return err
	}
	if err := container.Provide(NewFeaturesController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	createAppController *CreateAppController,
	featuresController *FeaturesController,
) *[]entities.Controller {
	return &[]entities.Controller{
		createAppController,
		featuresController,
	}
}
