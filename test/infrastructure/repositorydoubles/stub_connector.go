//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

// StubConnector implements repositories.Connector returning a fixed repository.
type StubConnector struct {
	Repository       repositories.CMISRepository
	ConnectErr       error
	ConnectCallCount int
	LastSettings     entities.ConnectionSettings
}

var _ repositories.Connector = (*StubConnector)(nil)

func (s *StubConnector) Connect(
	_ context.Context,
	settings entities.ConnectionSettings,
) (repositories.CMISRepository, error) {
	s.ConnectCallCount++
	s.LastSettings = settings
	if s.ConnectErr != nil {
		return nil, s.ConnectErr
	}
	return s.Repository, nil
}
