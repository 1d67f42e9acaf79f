package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(0), Sum[uint64](nil))
	assert.Equal(t, uint64(15), Sum([]uint64{8, 1, 6}))
	assert.Equal(t, -2, Sum([]int{1, -3}))
}

func TestSumPerGroup(t *testing.T) {
	groups := [][]uint64{{1000, 2000, 3000}, {4000}, {5000, 6000}, {7000, 8000, 9000}, {10000}}
	assert.Equal(t, []uint64{6000, 4000, 11000, 24000, 10000}, SumPerGroup(groups))
	assert.Empty(t, SumPerGroup[uint64](nil))
}

func TestMaxWithIndex(t *testing.T) {
	idx, v, ok := MaxWithIndex([]uint64{6000, 4000, 11000, 24000, 10000})
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, uint64(24000), v)

	_, _, ok = MaxWithIndex[uint64](nil)
	assert.False(t, ok)
}

func TestMaxWithIndex_FirstWinsTies(t *testing.T) {
	idx, v, ok := MaxWithIndex([]int{5, 9, 2, 9, 9})
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 9, v)
}

func TestTopKSum(t *testing.T) {
	sums := []uint64{6000, 4000, 11000, 24000, 10000}

	tests := []struct {
		name string
		k    int
		want uint64
	}{
		{name: "top three", k: 3, want: 45000},
		{name: "top one equals max", k: 1, want: 24000},
		{name: "zero", k: 0, want: 0},
		{name: "negative", k: -2, want: 0},
		{name: "exactly all", k: 5, want: 55000},
		{name: "more than available", k: 10, want: 55000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopKSum(sums, tt.k))
		})
	}

	assert.Equal(t, []uint64{6000, 4000, 11000, 24000, 10000}, sums, "input must not be reordered")
}
