package valuepool_test

import (
	"fmt"
	"testing"
	"testing/quick"

	"github.com/peczenyj/opool/valuepool"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type particle struct {
	x, y float64
	live bool
}

func TestNewWithInvalidCapacity(t *testing.T) {
	t.Parallel()

	for _, capacity := range []int{0, -1} {
		pool, err := valuepool.New[particle](capacity)

		require.ErrorIs(t, err, valuepool.ErrInvalidCapacity)
		assert.Nil(t, pool)
	}
}

func TestAcquireOrderAndExhaustion(t *testing.T) {
	t.Parallel()

	pool, err := valuepool.New[particle](3)
	require.NoError(t, err)

	// the initial free list pops highest indices first
	for _, want := range []int{2, 1, 0} {
		_, index, ok := pool.TryAcquire()

		require.True(t, ok)
		assert.Equal(t, want, index)
	}

	value, index, ok := pool.TryAcquire()

	assert.False(t, ok, "capacity is hard, no overflow")
	assert.Equal(t, -1, index)
	assert.Zero(t, value)

	require.NoError(t, pool.Release(1))

	_, index, ok = pool.TryAcquire()

	require.True(t, ok)
	assert.Equal(t, 1, index, "released slot is reused first")
}

func TestReleaseOutOfRange(t *testing.T) {
	t.Parallel()

	pool, err := valuepool.New[particle](2)
	require.NoError(t, err)

	_, _, ok := pool.TryAcquire()
	require.True(t, ok)

	for _, index := range []int{-1, 2, 100} {
		require.ErrorIs(t, pool.Release(index), valuepool.ErrIndexOutOfRange)
	}

	assert.Equal(t, 1, pool.FreeCount(), "free list untouched on error")
}

func TestFreePlusUsedEqualsCapacity(t *testing.T) {
	t.Parallel()

	f := func(rawCapacity, rawAcquires uint8) bool {
		capacity := int(rawCapacity%64) + 1

		pool, err := valuepool.New[particle](capacity)
		if err != nil {
			return false
		}

		if pool.Capacity() != capacity {
			return false
		}

		acquired := make([]int, 0, capacity)

		for i := 0; i < int(rawAcquires); i++ {
			if _, index, ok := pool.TryAcquire(); ok {
				acquired = append(acquired, index)
			}

			if pool.FreeCount()+pool.UsedCount() != pool.Capacity() {
				return false
			}
		}

		for _, index := range acquired {
			if err := pool.Release(index); err != nil {
				return false
			}

			if pool.FreeCount()+pool.UsedCount() != pool.Capacity() {
				return false
			}
		}

		return pool.UsedCount() == 0
	}

	err := quick.Check(f, nil)
	require.NoError(t, err)
}

func TestSlotIsAuthoritative(t *testing.T) {
	t.Parallel()

	pool, err := valuepool.New[particle](4)
	require.NoError(t, err)

	value, index, ok := pool.TryAcquire()
	require.True(t, ok)

	// editing the returned copy does not touch the slot
	value.x = 99
	assert.Zero(t, pool.At(index).x)

	// editing through the handle does
	pool.At(index).x = 1.5
	pool.At(index).live = true

	assert.Equal(t, 1.5, pool.Items()[index].x)

	// the next acquisition of the slot sees the slot contents
	require.NoError(t, pool.Release(index))

	value, again, ok := pool.TryAcquire()

	require.True(t, ok)
	require.Equal(t, index, again)
	assert.Equal(t, 1.5, value.x)
	assert.True(t, value.live)
}

func TestItemsAliasesBackingStore(t *testing.T) {
	t.Parallel()

	pool, err := valuepool.New[particle](8)
	require.NoError(t, err)

	items := pool.Items()
	require.Len(t, items, 8)

	_, index, ok := pool.TryAcquire()
	require.True(t, ok)

	pool.At(index).y = 7

	assert.Equal(t, 7.0, items[index].y, "bulk view observes in-place edits")
}

func ExampleNew() {
	pool, _ := valuepool.New[particle](2)

	_, first, _ := pool.TryAcquire()
	pool.At(first).live = true

	_, second, _ := pool.TryAcquire()
	pool.At(second).live = true

	if _, _, ok := pool.TryAcquire(); !ok {
		fmt.Println("exhausted")
	}

	_ = pool.Release(first)

	fmt.Println(pool.FreeCount(), pool.UsedCount())
	// Output:
	// exhausted
	// 1 1
}
