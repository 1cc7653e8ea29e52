package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

const rootPath = "/"

// connect opens the repository and reports where the command is working.
func connect(
	ctx context.Context,
	connector repositories.Connector,
	settings entities.ConnectionSettings,
) (repositories.CMISRepository, error) {
	logger.Infof("Connecting to %s", settings.URL)

	repo, err := connector.Connect(ctx, settings)
	if err != nil {
		return nil, err
	}

	logger.Infof("Connected to repository %q", repo.Info().Name)
	return repo, nil
}

// getObjectByPath resolves a path argument and fails when it does not exist.
func getObjectByPath(
	ctx context.Context,
	repo repositories.CMISRepository,
	path string,
) (*entities.Node, error) {
	node, found, err := repo.LookupObjectByPath(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %q: %w", path, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", entities.ErrObjectNotFound, path)
	}
	return node, nil
}

// splitPath breaks a slash separated path into its non-empty segments.
func splitPath(path string) []string {
	var segments []string
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return segments
}

// absolutePath joins segments into a rooted repository path.
func absolutePath(segments []string) string {
	return rootPath + strings.Join(segments, "/")
}
