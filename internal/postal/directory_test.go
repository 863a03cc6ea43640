package postal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir, err := Load()
	require.NoError(t, err)
	require.NotNil(t, dir)
}

func TestLookup(t *testing.T) {
	dir, err := Load()
	require.NoError(t, err)

	t.Run("known code returns all entries in dataset order", func(t *testing.T) {
		entries := dir.Lookup("01000")
		require.Len(t, entries, 2)
		assert.Equal(t, "Centro", entries[0].Neighborhood)
		assert.Equal(t, "Centro Histórico", entries[1].Neighborhood)
		assert.Equal(t, "Cuauhtémoc", entries[0].Municipality)
		assert.Equal(t, "Ciudad de México", entries[0].State)
		assert.Equal(t, "01000", entries[0].Code)
	})

	t.Run("unknown code returns nothing", func(t *testing.T) {
		assert.Empty(t, dir.Lookup("99999"))
	})

	t.Run("short and malformed codes match nothing", func(t *testing.T) {
		assert.Empty(t, dir.Lookup("0100"))
		assert.Empty(t, dir.Lookup(""))
		assert.Empty(t, dir.Lookup("01a00"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		entries := dir.Lookup("01000")
		entries[0].Neighborhood = "mutated"
		again := dir.Lookup("01000")
		assert.Equal(t, "Centro", again[0].Neighborhood)
	})
}

func TestNeighborhoods(t *testing.T) {
	entries := []Entry{
		{Neighborhood: "Centro"},
		{Neighborhood: "Centro"},
		{Neighborhood: "Roma Norte"},
	}
	assert.Equal(t, []string{"Centro", "Roma Norte"}, Neighborhoods(entries))
	assert.Nil(t, Neighborhoods(nil))
}
