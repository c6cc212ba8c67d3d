package filling

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func members(pt *partition, x int) []int {
	var ms []int
	for i := range pt.component(x) {
		ms = append(ms, i)
	}
	return ms
}

func TestPartitionSingletons(t *testing.T) {
	pt := newPartition(5)
	for i := range 5 {
		assert.Equal(t, i, pt.canonify(i))
		assert.Equal(t, 1, pt.count(i))
		assert.Equal(t, []int{i}, members(pt, i))
	}
}

func TestPartitionMergeSplicesRings(t *testing.T) {
	pt := newPartition(6)
	pt.merge(0, 1)
	pt.merge(2, 3)
	pt.merge(0, 2)

	require.Equal(t, 4, pt.count(3))
	assert.Equal(t, pt.canonify(0), pt.canonify(3))

	/* the ring visits every member exactly once, from any member */
	for _, start := range []int{0, 1, 2, 3} {
		ms := members(pt, start)
		assert.Len(t, ms, 4, "ring from %d", start)
		assert.ElementsMatch(t, []int{0, 1, 2, 3}, ms)
	}
	assert.Equal(t, []int{4}, members(pt, 4))
}

func TestPartitionMergeIdempotent(t *testing.T) {
	pt := newPartition(4)
	pt.merge(1, 2)
	pt.merge(2, 1)
	pt.merge(1, 1)
	assert.Equal(t, 2, pt.count(1))
	assert.Len(t, members(pt, 2), 2)
}

func TestPartitionRandomMerges(t *testing.T) {
	const n = 100
	r := rand.New(rand.NewPCG(1, 2))
	pt := newPartition(n)
	for range 200 {
		pt.merge(r.IntN(n), r.IntN(n))
	}
	for i := range n {
		ms := members(pt, i)
		assert.Len(t, ms, pt.count(i), "cell %d", i)
		for _, m := range ms {
			assert.Equal(t, pt.canonify(i), pt.canonify(m))
		}
	}
}

func TestPartitionReset(t *testing.T) {
	pt := newPartition(4)
	pt.merge(0, 1)
	pt.merge(1, 2)
	pt.reset()
	for i := range 4 {
		assert.Equal(t, 1, pt.count(i))
		assert.Equal(t, []int{i}, members(pt, i))
	}
}
