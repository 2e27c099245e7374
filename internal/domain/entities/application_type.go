package entities

import (
	"fmt"
	"strings"
)

// ApplicationType is the shape of the generated application.
type ApplicationType string

const (
	ApplicationTypeDefault   ApplicationType = "default"
	ApplicationTypeCLI       ApplicationType = "cli"
	ApplicationTypeFunction  ApplicationType = "function"
	ApplicationTypeGRPC      ApplicationType = "grpc"
	ApplicationTypeMessaging ApplicationType = "messaging"
)

// ApplicationTypes lists every type the generator knows about.
func ApplicationTypes() []ApplicationType {
	return []ApplicationType{
		ApplicationTypeDefault,
		ApplicationTypeCLI,
		ApplicationTypeFunction,
		ApplicationTypeGRPC,
		ApplicationTypeMessaging,
	}
}

// ParseApplicationType converts a user supplied name, defaulting to the HTTP
// server application when empty.
func ParseApplicationType(name string) (ApplicationType, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" {
		return ApplicationTypeDefault, nil
	}
	for _, t := range ApplicationTypes() {
		if string(t) == trimmed {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown application type %q", ErrInvalidArgument, name)
}
