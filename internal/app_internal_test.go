//go:build unit

package internal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cmistools/internal"
)

func TestInjectAppContext(t *testing.T) {
	t.Parallel()

	t.Run("should wire one controller per command", func(t *testing.T) {
		t.Parallel()

		// given
		expected := []string{"download", "list", "query", "upload"}

		// when
		appContext, err := internal.InjectAppContext()

		// then
		require.NoError(t, err)
		names := make([]string, 0, len(appContext.GetControllers()))
		for _, controller := range appContext.GetControllers() {
			names = append(names, internal.CommandName(controller.GetBind()))
		}
		assert.Equal(t, expected, names)
	})
}

func TestBuildRootCommand(t *testing.T) {
	t.Parallel()

	t.Run("should expose every command and the shared connection flags", func(t *testing.T) {
		t.Parallel()

		// given
		appContext, err := internal.InjectAppContext()
		require.NoError(t, err)

		// when
		cmd := internal.BuildRootCommand(appContext)

		// then
		for _, name := range []string{"download", "list", "query", "upload"} {
			sub, _, findErr := cmd.Find([]string{name})
			require.NoError(t, findErr)
			assert.Equal(t, name, sub.Name())
		}
		assert.NotNil(t, cmd.PersistentFlags().Lookup("url"))
		assert.NotNil(t, cmd.PersistentFlags().Lookup("ask-password"))
	})
}

func TestBuildStandaloneCommand(t *testing.T) {
	t.Parallel()

	t.Run("should prefix the command name for the standalone binary", func(t *testing.T) {
		t.Parallel()

		// given
		appContext, err := internal.InjectAppContext()
		require.NoError(t, err)

		// when
		cmd, buildErr := internal.BuildStandaloneCommand(appContext, "upload")

		// then
		require.NoError(t, buildErr)
		assert.Equal(t, "cmis-upload", cmd.Name())
		assert.NotNil(t, cmd.PersistentFlags().Lookup("url"))
	})

	t.Run("should fail for an unknown command", func(t *testing.T) {
		t.Parallel()

		// given
		appContext, err := internal.InjectAppContext()
		require.NoError(t, err)

		// when
		_, buildErr := internal.BuildStandaloneCommand(appContext, "delete")

		// then
		require.Error(t, buildErr)
	})
}
