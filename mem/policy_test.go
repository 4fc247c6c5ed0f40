package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPolicyNeverRefuses(t *testing.T) {
	pol := Default()
	for _, size := range []int{0, 1, 1 << 10, 1 << 30} {
		require.NoError(t, pol.Allocate(size))
		pol.Deallocate(size)
	}
	assert.IsType(t, &AtomicCounter{}, pol.NewCounter())
}

func TestSerialPolicyCounters(t *testing.T) {
	pol := Serial()
	require.NoError(t, pol.Allocate(128))
	assert.IsType(t, &SerialCounter{}, pol.NewCounter())
}

func TestNewComposesAllocatorAndCounters(t *testing.T) {
	cnt := NewCounting()
	pol := New(cnt, SerialCounters)

	require.NoError(t, pol.Allocate(64))
	pol.Deallocate(64)

	stats := cnt.Stats()
	assert.Equal(t, int64(1), stats.Allocations)
	assert.Equal(t, int64(1), stats.Deallocations)
	assert.Equal(t, int64(0), stats.LiveBytes)
	assert.IsType(t, &SerialCounter{}, pol.NewCounter())
}

func TestLimitBudget(t *testing.T) {
	l := NewLimit(100)

	require.NoError(t, l.Allocate(60))
	require.NoError(t, l.Allocate(40))
	assert.Equal(t, int64(100), l.InUse())

	err := l.Allocate(1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	l.Deallocate(40)
	require.NoError(t, l.Allocate(40), "freed budget must be reusable")

	l.Deallocate(40)
	l.Deallocate(60)
	assert.Equal(t, int64(0), l.InUse())
}

func TestLimitDeallocateBelowZeroPanics(t *testing.T) {
	l := NewLimit(10)
	assert.Panics(t, func() { l.Deallocate(1) })
}
