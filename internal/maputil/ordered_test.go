package maputil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/pomgen/internal/maputil"
)

func TestOrderedMap_PreservesInsertionOrder(t *testing.T) {
	m := maputil.NewOrderedMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	assert.Equal(t, []string{"c", "a", "b"}, m.Keys())
	assert.Equal(t, []int{3, 1, 2}, m.Values())
	assert.Equal(t, 3, m.Len())
}

func TestOrderedMap_ReplaceKeepsPosition(t *testing.T) {
	var m maputil.OrderedMap[string, string]
	m.Set("first", "1")
	m.Set("second", "2")
	m.Set("first", "one")

	assert.Equal(t, []string{"first", "second"}, m.Keys())

	v, ok := m.Get("first")
	assert.True(t, ok)
	assert.Equal(t, "one", v)
}

func TestOrderedMap_Delete(t *testing.T) {
	m := maputil.NewOrderedMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	assert.True(t, m.Delete("b"))
	assert.False(t, m.Delete("missing"))
	assert.False(t, m.Has("b"))
	assert.Equal(t, []string{"a", "c"}, m.Keys())
}

func TestOrderedMap_AllIsRestartable(t *testing.T) {
	m := maputil.NewOrderedMap[string, int]()
	m.Set("x", 1)
	m.Set("y", 2)

	collect := func() []string {
		var out []string
		for k := range m.All() {
			out = append(out, k)
		}

		return out
	}

	assert.Equal(t, []string{"x", "y"}, collect())
	assert.Equal(t, []string{"x", "y"}, collect())
}

func TestOrderedMap_AllStopsEarly(t *testing.T) {
	m := maputil.NewOrderedMap[string, int]()
	m.Set("x", 1)
	m.Set("y", 2)

	var seen int
	for range m.All() {
		seen++
		break
	}

	assert.Equal(t, 1, seen)
}

func TestSortedKeys(t *testing.T) {
	got := maputil.SortedKeys(map[string]bool{"zeta": true, "alpha": true, "mid": false})
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, got)
}
