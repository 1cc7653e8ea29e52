package entities

import (
	"os"
	"time"
)

const (
	// DefaultURL is used when neither a flag nor CMIS_URL provides an endpoint.
	DefaultURL = "http://localhost:8080/flexive-atompub/cmis/repository"

	EnvURL      = "CMIS_URL"
	EnvUsername = "CMIS_USERNAME"
	EnvPassword = "CMIS_PASSWORD"

	// DefaultRetries is the number of retries for idempotent requests.
	DefaultRetries = 3
)

// ConnectionSettings holds everything needed to reach a repository.
type ConnectionSettings struct {
	URL          string
	Username     string
	Password     string
	RepositoryID string        // empty selects the first repository of the service document
	Timeout      time.Duration // zero means no timeout
	Retries      int
	RateLimit    float64 // requests per second, zero means unlimited
}

// NewConnectionSettings resolves URL and credentials with the precedence
// explicit value > environment variable > built-in default.
func NewConnectionSettings(url, username, password string) ConnectionSettings {
	return ConnectionSettings{
		URL:      firstNonEmpty(url, os.Getenv(EnvURL), DefaultURL),
		Username: firstNonEmpty(username, os.Getenv(EnvUsername)),
		Password: firstNonEmpty(password, os.Getenv(EnvPassword)),
		Retries:  DefaultRetries,
	}
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
