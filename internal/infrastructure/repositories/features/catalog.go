package features

import "github.com/rios0rios0/cracgen/internal/domain/entities"

// NewYAMLFeature configures the application with application.yml.
func NewYAMLFeature() *entities.Feature {
	return &entities.Feature{
		Name:          "yaml",
		Title:         "YAML Configuration",
		Description:   "Adds support for YAML configuration files (application.yml)",
		Category:      entities.CategoryConfiguration,
		Visible:       true,
		IsDefaultFunc: func(entities.ApplicationType, entities.Options) bool { return true },
		ApplyFunc: func(ctx *entities.GeneratorContext) {
			ctx.AddDependency(entities.LookupDependency("snakeyaml", entities.ScopeRuntime))
		},
	}
}

// NewHTTPClientFeature adds the declarative HTTP client.
func NewHTTPClientFeature() *entities.Feature {
	return &entities.Feature{
		Name:                   "http-client",
		Title:                  "HTTP Client",
		Description:            "Adds support for the Micronaut HTTP client",
		Category:               entities.CategoryClient,
		MicronautDocumentation: "https://docs.micronaut.io/latest/guide/#nettyHttpClient",
		Visible:                true,
		ApplyFunc: func(ctx *entities.GeneratorContext) {
			ctx.AddDependency(entities.LookupDependency("micronaut-http-client", entities.ScopeCompile))
		},
	}
}

// NewManagementFeature adds the management endpoints.
func NewManagementFeature() *entities.Feature {
	return &entities.Feature{
		Name:                   "management",
		Title:                  "Micronaut Management",
		Description:            "Adds support for monitoring of the application with endpoints",
		Category:               entities.CategoryManagement,
		MicronautDocumentation: "https://docs.micronaut.io/latest/guide/#management",
		Visible:                true,
		SupportsFunc:           serverApplicationsOnly,
		ApplyFunc: func(ctx *entities.GeneratorContext) {
			ctx.AddDependency(entities.LookupDependency("micronaut-management", entities.ScopeCompile))
			ctx.AddConfiguration("endpoints.health.enabled", "true")
		},
	}
}

// NewNettyServerFeature is the HTTP server of "default" applications.
func NewNettyServerFeature() *entities.Feature {
	return &entities.Feature{
		Name:         "netty-server",
		Title:        "Netty Server",
		Description:  "Uses Netty as the HTTP server of the application",
		Category:     entities.CategoryServer,
		SupportsFunc: serverApplicationsOnly,
		IsDefaultFunc: func(t entities.ApplicationType, _ entities.Options) bool {
			return t == entities.ApplicationTypeDefault
		},
		ApplyFunc: func(ctx *entities.GeneratorContext) {
			ctx.AddDependency(entities.LookupDependency("micronaut-http-server-netty", entities.ScopeCompile))
		},
	}
}

// NewPicocliFeature is the command line support of "cli" applications.
func NewPicocliFeature() *entities.Feature {
	return typeFeature(
		"picocli", "Picocli", "Builds the application as a Picocli command line tool",
		entities.CategoryCLI, entities.ApplicationTypeCLI, "micronaut-picocli",
	)
}

// NewFunctionFeature is the serverless support of "function" applications.
func NewFunctionFeature() *entities.Feature {
	return typeFeature(
		"function", "Serverless Function", "Builds the application as a serverless function",
		entities.CategoryServerless, entities.ApplicationTypeFunction, "micronaut-function",
	)
}

// NewGRPCFeature is the runtime of "grpc" applications.
func NewGRPCFeature() *entities.Feature {
	return typeFeature(
		"grpc", "gRPC", "Builds the application as a gRPC server",
		entities.CategoryAPI, entities.ApplicationTypeGRPC, "micronaut-grpc-runtime",
	)
}

// NewMessagingFeature is the runtime of "messaging" applications.
func NewMessagingFeature() *entities.Feature {
	return typeFeature(
		"messaging", "Messaging", "Builds the application as a message-driven service",
		entities.CategoryMessaging, entities.ApplicationTypeMessaging, "micronaut-messaging",
	)
}

// All returns every feature the generator ships with.
func All() []*entities.Feature {
	return []*entities.Feature{
		NewCracFeature(),
		NewGraalVMFeature(),
		NewYAMLFeature(),
		NewHTTPClientFeature(),
		NewManagementFeature(),
		NewNettyServerFeature(),
		NewPicocliFeature(),
		NewFunctionFeature(),
		NewGRPCFeature(),
		NewMessagingFeature(),
	}
}

// typeFeature builds the hidden feature that defines an application type.
func typeFeature(
	name, title, description string,
	category entities.Category,
	applicationType entities.ApplicationType,
	artifactID string,
) *entities.Feature {
	return &entities.Feature{
		Name:        name,
		Title:       title,
		Description: description,
		Category:    category,
		SupportsFunc: func(t entities.ApplicationType) bool {
			return t == applicationType
		},
		IsDefaultFunc: func(t entities.ApplicationType, _ entities.Options) bool {
			return t == applicationType
		},
		ApplyFunc: func(ctx *entities.GeneratorContext) {
			ctx.AddDependency(entities.LookupDependency(artifactID, entities.ScopeCompile))
		},
	}
}

func serverApplicationsOnly(t entities.ApplicationType) bool {
	return t == entities.ApplicationTypeDefault
}
