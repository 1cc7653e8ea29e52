//go:build unit

package browser

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

func TestEscapePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "should map the root to the root folder URL itself", input: "/", expected: ""},
		{name: "should drop empty segments", input: "//a//b/", expected: "/a/b"},
		{name: "should escape every segment", input: "/my docs/50%", expected: "/my%20docs/50%25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			input := tt.input

			// when
			result := escapePath(input)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	t.Run("should add the v prefix once", func(t *testing.T) {
		t.Parallel()

		// given
		versions := []string{"1.1", "v1.0"}

		// when
		first, second := normalizeVersion(versions[0]), normalizeVersion(versions[1])

		// then
		assert.Equal(t, "v1.1", first)
		assert.Equal(t, "v1.0", second)
	})
}

func TestCMISErrorUnwrap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *CMISError
		expected error
	}{
		{
			name:     "should map objectNotFound to the not found sentinel",
			err:      &CMISError{StatusCode: http.StatusNotFound, Exception: exceptionObjectNotFound},
			expected: entities.ErrObjectNotFound,
		},
		{
			name:     "should map a bare 404 to the not found sentinel",
			err:      &CMISError{StatusCode: http.StatusNotFound},
			expected: entities.ErrObjectNotFound,
		},
		{
			name:     "should map a 403 to the permission sentinel",
			err:      &CMISError{StatusCode: http.StatusForbidden, Exception: exceptionPermissionDenied},
			expected: entities.ErrPermissionDenied,
		},
		{
			name:     "should leave other failures unmapped",
			err:      &CMISError{StatusCode: http.StatusInternalServerError, Exception: "runtime"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			cmisErr := tt.err

			// when
			result := cmisErr.Unwrap()

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestContentFilename(t *testing.T) {
	t.Parallel()

	t.Run("should prefer the disposition file name and fall back to the given one", func(t *testing.T) {
		t.Parallel()

		// given
		disposition := `attachment; filename="stored.bin"`

		// when
		fromHeader := contentFilename(disposition, "fallback")
		fromFallback := contentFilename("", "fallback")

		// then
		assert.Equal(t, "stored.bin", fromHeader)
		assert.Equal(t, "fallback", fromFallback)
	})
}
