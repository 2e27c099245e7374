package features

import "github.com/rios0rios0/cracgen/internal/domain/entities"

// GraalVMName is the name of the native-image feature.
const GraalVMName = "graalvm"

// NewGraalVMFeature prepares the application for GraalVM native-image builds.
func NewGraalVMFeature() *entities.Feature {
	return &entities.Feature{
		Name:                    GraalVMName,
		Title:                   "GraalVM Native Image",
		Description:             "Allows building a native executable of the application with GraalVM native-image",
		Category:                entities.CategoryPackaging,
		ThirdPartyDocumentation: "https://www.graalvm.org/latest/reference-manual/native-image/",
		MicronautDocumentation:  "https://docs.micronaut.io/latest/guide/#graal",
		Visible:                 true,
		ApplyFunc: func(ctx *entities.GeneratorContext) {
			ctx.AddDependency(entities.LookupDependency("micronaut-graal", entities.ScopeAnnotationProcessor))
		},
	}
}
