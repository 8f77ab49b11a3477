package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupBy_PreservesFirstSeenOrder(t *testing.T) {
	words := []string{"apple", "banana", "avocado", "cherry", "blueberry"}

	groups := groupBy(words, func(w string) byte { return w[0] })

	require.Len(t, groups, 3)
	assert.Equal(t, byte('a'), groups[0].key)
	assert.Equal(t, []string{"apple", "avocado"}, groups[0].items)
	assert.Equal(t, byte('b'), groups[1].key)
	assert.Equal(t, []string{"banana", "blueberry"}, groups[1].items)
	assert.Equal(t, byte('c'), groups[2].key)
	assert.Equal(t, []string{"cherry"}, groups[2].items)
}

func TestGroupBy_Empty(t *testing.T) {
	groups := groupBy(nil, func(n int) int { return n })
	assert.Empty(t, groups)
}

func TestGroupBy_SingleGroup(t *testing.T) {
	groups := groupBy([]int{1, 2, 3}, func(int) string { return "all" })

	require.Len(t, groups, 1)
	assert.Equal(t, "all", groups[0].key)
	assert.Equal(t, []int{1, 2, 3}, groups[0].items)
}
