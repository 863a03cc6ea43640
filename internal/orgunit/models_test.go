package orgunit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Run("lowercase keys win over uppercase", func(t *testing.T) {
		unit := Resolve(Document{ID: "1", Fields: map[string]any{
			"sector": "1",
			"Sector": "2",
			"SECTOR": "3",
		}})
		assert.Equal(t, "1", unit.Sector)
	})

	t.Run("empty alias falls through to a populated one", func(t *testing.T) {
		unit := Resolve(Document{ID: "1", Fields: map[string]any{
			"SM": "",
			"sm": "UNIT-X",
		}})
		assert.Equal(t, "UNIT-X", unit.SM)
	})

	t.Run("falls through empty values", func(t *testing.T) {
		unit := Resolve(Document{ID: "1", Fields: map[string]any{
			"sector": "",
			"SECTOR": "3",
		}})
		assert.Equal(t, "3", unit.Sector)
	})

	t.Run("numeric values are stringified", func(t *testing.T) {
		unit := Resolve(Document{ID: "1", Fields: map[string]any{
			"SM":      "A",
			"seccion": float64(12),
			"sector":  float64(3.5),
		}})
		assert.Equal(t, "12", unit.Seccion)
		assert.Equal(t, "3.5", unit.Sector)
	})

	t.Run("absent keys resolve empty", func(t *testing.T) {
		unit := Resolve(Document{ID: "1", Fields: map[string]any{"SM": "A"}})
		assert.Equal(t, "A", unit.SM)
		assert.Empty(t, unit.Sector)
		assert.Empty(t, unit.Seccion)
		assert.Empty(t, unit.Fraccion)
	})
}

func TestResolveAll(t *testing.T) {
	docs := []Document{
		{ID: "a", Fields: map[string]any{"SM": "A", "sector": "1"}},
		{ID: "b", Fields: map[string]any{"sm": "", "Sector": "2"}},
		{ID: "c", Fields: map[string]any{"Sm": "C"}},
	}
	units := ResolveAll(docs)
	assert.Len(t, units, 2)
	assert.Equal(t, "A", units[0].SM)
	assert.Equal(t, "C", units[1].SM)
}
