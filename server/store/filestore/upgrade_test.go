package filestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollbase/pollbase/server/utils/testutils"
)

func TestUpdateDatabase(t *testing.T) {
	t.Run("upgrade to 1.1.0 normalizes nil vote maps", func(t *testing.T) {
		dir := t.TempDir()
		st, err := NewStore(dir, testLogger(), "1.0.0")
		require.NoError(t, err)

		p := testutils.GetPoll()
		p.Votes = nil
		require.NoError(t, st.(*Store).Poll().Insert(p))

		upgraded, err := NewStore(dir, testLogger(), "1.1.0")
		require.NoError(t, err)

		got, err := upgraded.Poll().Get(p.ID)
		require.NoError(t, err)
		assert.NotNil(t, got.Votes)
		assert.Empty(t, got.Votes)

		v, err := upgraded.System().GetVersion()
		require.NoError(t, err)
		assert.Equal(t, "1.1.0", v)
	})
	t.Run("current version performs no upgrade", func(t *testing.T) {
		dir := t.TempDir()
		_, err := NewStore(dir, testLogger(), testVersion)
		require.NoError(t, err)

		st, err := NewStore(dir, testLogger(), testVersion)
		require.NoError(t, err)
		v, err := st.System().GetVersion()
		require.NoError(t, err)
		assert.Equal(t, testVersion, v)
	})
}
