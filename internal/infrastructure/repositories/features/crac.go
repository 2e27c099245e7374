package features

import "github.com/rios0rios0/cracgen/internal/domain/entities"

// CracName is the name users select the CRaC capability with.
const CracName = "crac"

// NewCracFeature adds the Micronaut CRaC runtime to any application type.
func NewCracFeature() *entities.Feature {
	return &entities.Feature{
		Name:                    CracName,
		Title:                   "CRaC support",
		Description:             "Adds the Java CRaC library to the Micronaut application to enable CRaC support",
		Category:                entities.CategoryPackaging,
		ThirdPartyDocumentation: "https://www.azul.com/blog/superfast-application-startup-java-on-crac/",
		MicronautDocumentation:  "https://micronaut-projects.github.io/micronaut-crac/latest/guide/",
		Visible:                 true,
		SupportsFunc:            func(entities.ApplicationType) bool { return true },
		ApplyFunc: func(ctx *entities.GeneratorContext) {
			ctx.AddDependency(entities.LookupDependency(entities.CracArtifactID, entities.ScopeRuntime))
		},
	}
}
