package browser

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
	"github.com/rios0rios0/cmistools/internal/domain/repositories"
)

// minimumCMISVersion is the first CMIS version that defines the Browser Binding.
const minimumCMISVersion = "v1.1"

// Connector implements repositories.Connector for Browser Binding endpoints.
type Connector struct{}

var _ repositories.Connector = (*Connector)(nil)

// NewConnector creates a new Connector.
func NewConnector() *Connector {
	return &Connector{}
}

// Connect reads the service document at settings.URL and binds to one repository.
// Every failure is wrapped in entities.ErrConnection.
func (it *Connector) Connect(
	ctx context.Context,
	settings entities.ConnectionSettings,
) (repositories.CMISRepository, error) {
	client := NewClient(settings)

	var infos map[string]repositoryInfoJSON
	if err := client.getJSON(ctx, settings.URL, nil, &infos); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrConnection, settings.URL, err)
	}

	info, err := selectRepository(infos, settings.RepositoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entities.ErrConnection, settings.URL, err)
	}
	if info.RootFolderURL == "" || info.RepositoryURL == "" {
		return nil, fmt.Errorf(
			"%w: %s: repository %q does not advertise Browser Binding URLs",
			entities.ErrConnection, settings.URL, info.RepositoryID,
		)
	}

	checkCMISVersion(info.CMISVersionSupported)
	return newRepository(client, info), nil
}

// selectRepository picks the requested repository, or the first one by id when none is requested.
func selectRepository(infos map[string]repositoryInfoJSON, repositoryID string) (repositoryInfoJSON, error) {
	if len(infos) == 0 {
		return repositoryInfoJSON{}, errors.New("service document lists no repository")
	}

	if repositoryID != "" {
		info, ok := infos[repositoryID]
		if !ok {
			return repositoryInfoJSON{}, fmt.Errorf("repository %q not found", repositoryID)
		}
		return withID(info, repositoryID), nil
	}

	ids := make([]string, 0, len(infos))
	for id := range infos {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return withID(infos[ids[0]], ids[0]), nil
}

func withID(info repositoryInfoJSON, id string) repositoryInfoJSON {
	if info.RepositoryID == "" {
		info.RepositoryID = id
	}
	return info
}

func checkCMISVersion(version string) {
	normalized := normalizeVersion(version)
	if !semver.IsValid(normalized) {
		logger.Warnf("Repository reports an unrecognised CMIS version %q", version)
		return
	}
	if semver.Compare(normalized, minimumCMISVersion) < 0 {
		logger.Warnf(
			"Repository reports CMIS %s; the Browser Binding requires %s",
			version, strings.TrimPrefix(minimumCMISVersion, "v"),
		)
	}
}

// normalizeVersion ensures version has 'v' prefix for semver compatibility
func normalizeVersion(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
