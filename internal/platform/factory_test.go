package platform

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotkit/jot/pkg/adapters/fs"
	"github.com/jotkit/jot/pkg/core"
)

func TestNew(t *testing.T) {
	t.Run("Creates Data Directory And Empty Store", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data")

		store, err := New(path)
		require.NoError(t, err)
		assert.Equal(t, 0, store.Len())

		_, err = os.Stat(path)
		assert.NoError(t, err, "data directory should exist")
	})

	t.Run("Persists Across Instances", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data")
		ctx := context.Background()

		store, err := New(path)
		require.NoError(t, err)
		n := store.CreateNote()
		store.Close(ctx)

		reopened, err := New(path)
		require.NoError(t, err)
		defer reopened.Close(ctx)

		require.Equal(t, 1, reopened.Len())
		got, ok := reopened.Get(n.ID)
		assert.True(t, ok)
		assert.Equal(t, n.ID, got.ID)

		// The first loaded note becomes active.
		active, ok := reopened.ActiveNote()
		assert.True(t, ok)
		assert.Equal(t, n.ID, active.ID)
	})

	t.Run("Honors Injected Gateway", func(t *testing.T) {
		gw := fs.NewSlot(fs.Config{Path: filepath.Join(t.TempDir(), "custom.json"), AutoInit: true})
		require.NoError(t, gw.Initialize(context.Background()))
		gw.Save(context.Background(), []core.Note{{ID: "seeded"}})

		store, err := New("ignored-path", WithGateway(gw))
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("Honors Slot File Override", func(t *testing.T) {
		path := t.TempDir()

		store, err := New(path, WithSlotFile("custom-slot.json"))
		require.NoError(t, err)
		store.CreateNote()
		store.Close(context.Background())

		_, err = os.Stat(filepath.Join(path, "custom-slot.json"))
		assert.NoError(t, err, "custom slot file should exist")
	})
}
