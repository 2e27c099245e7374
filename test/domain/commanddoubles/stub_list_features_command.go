//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cracgen/internal/domain/commands"
	"github.com/rios0rios0/cracgen/internal/domain/entities"
)

// StubListFeaturesCommand is a stub implementation of commands.ListFeatures.
type StubListFeaturesCommand struct {
	ExecuteCallCount int
	Features         []*entities.Feature
	ExecuteErr       error
	LastOpts         commands.ListFeaturesOptions
}

var _ commands.ListFeatures = (*StubListFeaturesCommand)(nil)

func (s *StubListFeaturesCommand) Execute(
	_ context.Context,
	opts commands.ListFeaturesOptions,
) ([]*entities.Feature, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Features, s.ExecuteErr
}
