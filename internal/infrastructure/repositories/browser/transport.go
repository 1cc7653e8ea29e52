package browser

import (
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	logger "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// newReadClient returns the client used for GET requests. They are idempotent,
// so connection failures and 5xx answers are retried.
func newReadClient(settings entities.ConnectionSettings) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = max(settings.Retries, 0)
	retryClient.Logger = leveledLogger{}
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = settings.Timeout
	return retryClient.StandardClient()
}

// newWriteClient returns the client used for POST requests. Creating a document
// twice is worse than failing once, so nothing is retried here.
func newWriteClient(settings entities.ConnectionSettings) *http.Client {
	return &http.Client{Timeout: settings.Timeout}
}

// newLimiter throttles requests to settings.RateLimit per second; zero disables it.
func newLimiter(settings entities.ConnectionSettings) *rate.Limiter {
	if settings.RateLimit <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Limit(settings.RateLimit), 1)
}

// leveledLogger routes retryablehttp logging through logrus.
type leveledLogger struct{}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	logger.WithFields(toFields(keysAndValues)).Error(msg)
}

func (leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.WithFields(toFields(keysAndValues)).Info(msg)
}

func (leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	logger.WithFields(toFields(keysAndValues)).Debug(msg)
}

func (leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	logger.WithFields(toFields(keysAndValues)).Warn(msg)
}

func toFields(keysAndValues []interface{}) logger.Fields {
	fields := logger.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}
