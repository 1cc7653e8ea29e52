package browser

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

// Browser Binding exception names this adapter reacts to.
const (
	exceptionObjectNotFound   = "objectNotFound"
	exceptionPermissionDenied = "permissionDenied"
	exceptionUnauthorized     = "unauthorized"
	exceptionConstraint       = "constraint"

	maxErrorBodySize = 64 * 1024
)

// CMISError is a non-2xx answer of the Browser Binding.
type CMISError struct {
	StatusCode int
	Exception  string
	Message    string
}

func (e *CMISError) Error() string {
	if e.Exception == "" {
		return fmt.Sprintf("CMIS error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("CMIS %s (status %d): %s", e.Exception, e.StatusCode, e.Message)
}

// Unwrap maps the exception onto the domain sentinels so callers can use errors.Is.
func (e *CMISError) Unwrap() error {
	switch {
	case e.Exception == exceptionObjectNotFound,
		e.Exception == "" && e.StatusCode == http.StatusNotFound:
		return entities.ErrObjectNotFound
	case e.Exception == exceptionPermissionDenied,
		e.Exception == exceptionUnauthorized,
		e.StatusCode == http.StatusUnauthorized,
		e.StatusCode == http.StatusForbidden:
		return entities.ErrPermissionDenied
	default:
		return nil
	}
}

// noContent reports whether a content request failed only because the document has no stream.
func (e *CMISError) noContent() bool {
	return e.Exception == exceptionConstraint ||
		e.Exception == exceptionObjectNotFound ||
		(e.Exception == "" && e.StatusCode == http.StatusNotFound)
}

// newCMISError reads the error body of resp. Bodies that are not the JSON
// exception document end up verbatim in Message.
func newCMISError(resp *http.Response) *CMISError {
	cmisErr := &CMISError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		cmisErr.Message = http.StatusText(resp.StatusCode)
		return cmisErr
	}

	var payload struct {
		Exception string `json:"exception"`
		Message   string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Exception != "" {
		cmisErr.Exception = payload.Exception
		cmisErr.Message = payload.Message
		return cmisErr
	}

	cmisErr.Message = strings.TrimSpace(string(body))
	if cmisErr.Message == "" {
		cmisErr.Message = http.StatusText(resp.StatusCode)
	}
	return cmisErr
}
