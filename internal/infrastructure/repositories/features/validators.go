package features

import (
	"fmt"

	"github.com/rios0rios0/cracgen/internal/domain/entities"
	"github.com/rios0rios0/cracgen/internal/domain/repositories"
)

// CracFeatureValidator rejects selections combining CRaC with GraalVM native
// images, which cannot checkpoint a running JVM.
type CracFeatureValidator struct{}

var _ repositories.FeatureValidator = (*CracFeatureValidator)(nil)

// NewCracFeatureValidator creates the CRaC compatibility rule.
func NewCracFeatureValidator() *CracFeatureValidator {
	return &CracFeatureValidator{}
}

func (v *CracFeatureValidator) ValidatePreProcessing(
	_ entities.Options, _ entities.ApplicationType, _ *entities.FeatureSet,
) error {
	return nil
}

func (v *CracFeatureValidator) ValidatePostProcessing(
	_ entities.Options, _ entities.ApplicationType, features *entities.FeatureSet,
) error {
	if features.Contains(CracName) && features.Contains(GraalVMName) {
		return fmt.Errorf("%w: CRaC and GraalVM cannot be combined", entities.ErrInvalidArgument)
	}
	return nil
}

// ApplicationTypeValidator rejects features that do not support the
// requested application type.
type ApplicationTypeValidator struct{}

var _ repositories.FeatureValidator = (*ApplicationTypeValidator)(nil)

// NewApplicationTypeValidator creates the application type rule.
func NewApplicationTypeValidator() *ApplicationTypeValidator {
	return &ApplicationTypeValidator{}
}

func (v *ApplicationTypeValidator) ValidatePreProcessing(
	_ entities.Options, applicationType entities.ApplicationType, features *entities.FeatureSet,
) error {
	for _, f := range features.All() {
		if !f.Supports(applicationType) {
			return fmt.Errorf(
				"%w: feature %q does not support application type %q",
				entities.ErrInvalidArgument, f.Name, applicationType,
			)
		}
	}
	return nil
}

func (v *ApplicationTypeValidator) ValidatePostProcessing(
	_ entities.Options, _ entities.ApplicationType, _ *entities.FeatureSet,
) error {
	return nil
}

// Validators returns every feature validator the generator runs.
func Validators() []repositories.FeatureValidator {
	return []repositories.FeatureValidator{
		NewApplicationTypeValidator(),
		NewCracFeatureValidator(),
	}
}
