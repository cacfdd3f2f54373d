package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("fresh directory is stamped with the minor version", func(t *testing.T) {
		dir := t.TempDir()

		st, err := NewStore(dir, testLogger(), "1.1.3")
		require.NoError(t, err)

		v, err := st.System().GetVersion()
		require.NoError(t, err)
		assert.Equal(t, "1.1.0", v)
	})
	t.Run("stored version survives a reopen", func(t *testing.T) {
		dir := t.TempDir()
		_, err := NewStore(dir, testLogger(), testVersion)
		require.NoError(t, err)

		st, err := NewStore(dir, testLogger(), testVersion)
		require.NoError(t, err)
		v, err := st.System().GetVersion()
		require.NoError(t, err)
		assert.Equal(t, testVersion, v)
	})
	t.Run("invalid version", func(t *testing.T) {
		_, err := NewStore(t.TempDir(), testLogger(), "not-a-version")
		assert.Error(t, err)
	})
}
