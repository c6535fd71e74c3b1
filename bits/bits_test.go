package bits_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/0x0mar/wraith/bits"
)

func TestLeast(t *testing.T) {
	assert.Equal(t, uint64(0x0F), bits.Least(4, 0xFF))
	assert.Equal(t, uint64(0), bits.Least(4, 0xF0))
	assert.Equal(t, uint64(0x3), bits.Least(2, 0b1011))
}

func TestMid(t *testing.T) {
	// bits 4..7 of 0xFF kept in place, i.e. 0xF0
	assert.Equal(t, uint64(0xF0), bits.Mid(4, 4, 0xFF))
	assert.Equal(t, uint64(0), bits.Mid(4, 4, 0x0F))
}

func TestMost(t *testing.T) {
	assert.Equal(t, uint64(0x0F), bits.Most(4, 0xFF))
	assert.Equal(t, uint64(0), bits.Most(8, 0xFF))
}

var flagTable = bits.Table{
	"a": 1 << 0,
	"b": 1 << 1,
	"c": 1 << 2,
}

func TestTableList(t *testing.T) {
	assert.Empty(t, flagTable.List(0))
	assert.ElementsMatch(t, []string{"a", "c"}, flagTable.List(0b101))
}

func TestTableMap(t *testing.T) {
	m := flagTable.Map(0b010)
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 0}, m)
}

func TestTableGetUnknownFlag(t *testing.T) {
	_, err := flagTable.Get(0, "z")
	require.Error(t, err)
}

func TestTableSetUnset(t *testing.T) {
	v, err := flagTable.Set(0, "b")
	require.NoError(t, err)
	assert.Equal(t, uint64(0b010), v)

	v2, err := flagTable.Unset(0b111, "b")
	require.NoError(t, err)
	assert.Equal(t, uint64(0b101), v2)
}

// P6: flags_list(t, 0) == [] for every table t.
func TestPropertyListZeroIsEmpty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(rt, "n")
		tbl := bits.Table{}
		for i := 0; i < n; i++ {
			tbl[string(rune('a'+i))] = uint64(1) << uint(i)
		}
		assert.Empty(rt, tbl.List(0))
	})
}

// P7: flag_set(t, flag_unset(t, v, n), n) == v | t[n].
func TestPropertySetUnsetRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Uint64Range(0, 0xFF).Draw(rt, "v")
		name := rapid.SampledFrom([]string{"a", "b", "c"}).Draw(rt, "name")

		unset, err := flagTable.Unset(v, name)
		require.NoError(rt, err)
		set, err := flagTable.Set(unset, name)
		require.NoError(rt, err)

		assert.Equal(rt, v|flagTable[name], set)
	})
}
