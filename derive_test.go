package keyedList

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceIsIndependent(t *testing.T) {
	l := sites(t)

	s, err := l.Slice(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	it, _ := s.At(0)
	assert.Equal(t, site("56", "site3"), it)
	assert.Equal(t, "siteId", s.KeyField())

	// mutating the original must not affect the sliced copy
	_, err = l.Push(site("34", "site2"))
	require.NoError(t, err)
	l.DeleteKey("56")
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.ContainsKey("56"))
	assert.Equal(t, 0, s.IndexOfKey("56"))
	assertSynced(t, s)
}

func TestSliceBounds(t *testing.T) {
	l, err := FromSlice("id", []MapRecord{
		{"id": 1}, {"id": 2}, {"id": 3}, {"id": 4},
	})
	require.NoError(t, err)

	s, err := l.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []any{2, 3}, s.Keys())

	s, err = l.Slice(-2, 99)
	require.NoError(t, err)
	assert.Equal(t, []any{3, 4}, s.Keys())

	s, err = l.Slice(0, -1)
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, s.Keys())

	s, err = l.Slice(3, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestMap(t *testing.T) {
	l := sites(t)

	upper, err := l.Map(func(r MapRecord) MapRecord {
		c := MapRecord{}
		for k, v := range r {
			c[k] = v
		}
		c["name"] = "mapped"
		return c
	})
	require.NoError(t, err)
	assert.Equal(t, 2, upper.Len())
	it, _ := upper.Find("56")
	assert.Equal(t, "mapped", it["name"])

	// the source is untouched
	it, _ = l.Find("56")
	assert.Equal(t, "site3", it["name"])
	assertSynced(t, upper)
}

func TestMapDroppingKeyFails(t *testing.T) {
	l := sites(t)
	_, err := l.Map(func(r MapRecord) MapRecord {
		return MapRecord{"name": "no-key"}
	})
	assert.Error(t, err)
}

func TestConcat(t *testing.T) {
	a := sites(t)
	b, err := FromSlice("siteId", []MapRecord{site("34", "site2")})
	require.NoError(t, err)
	c, err := FromSlice("siteId", []MapRecord{site("12", "site1")})
	require.NoError(t, err)

	all, err := a.Concat(b, c)
	require.NoError(t, err)
	assert.Equal(t, []any{"56", "78", "34", "12"}, all.Keys())
	assert.Equal(t, "siteId", all.KeyField())
	assert.Equal(t, 2, a.Len())
	assertSynced(t, all)
}

func TestAccept(t *testing.T) {
	l, err := FromSlice("id", []MapRecord{
		{"id": 1}, {"id": 2}, {"id": 3}, {"id": 4},
	})
	require.NoError(t, err)

	even, err := l.Accept(func(r MapRecord) (bool, error) {
		return r["id"].(int)%2 == 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []any{2, 4}, even.Keys())
	assert.Equal(t, 0, even.IndexOfKey(2))
	assertSynced(t, even)
}

func TestIter(t *testing.T) {
	l, err := FromSlice("id", []MapRecord{
		{"id": 1}, {"id": 2}, {"id": 3},
	})
	require.NoError(t, err)

	var sum int
	for r, err := range l.Iter() {
		require.NoError(t, err)
		sum += r["id"].(int)
	}
	assert.Equal(t, 6, sum)

	sum = 0
	for r := range l.Iter() {
		sum += r["id"].(int)
		break
	}
	assert.Equal(t, 1, sum)
}
