package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y int
}

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		blockSize int
		expected  int
	}{
		{"default block size", 0, DefaultBlockSize},
		{"negative block size", -1, DefaultBlockSize},
		{"custom block size", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New[point](tt.blockSize, Unbounded)
			assert.Equal(t, tt.expected, a.BlockSize())
			assert.Equal(t, 1, a.NumBlocks())
			assert.Equal(t, tt.expected, a.Cap())
			assert.Equal(t, 0, a.Len())
		})
	}
}

func TestAcquireUniqueAddresses(t *testing.T) {
	a := New[point](8, Unbounded)

	seen := make(map[*point]Ref)
	for i := 0; i < 50; i++ {
		ref, p, err := a.Acquire()
		require.NoError(t, err)
		require.NotNil(t, p)
		_, dup := seen[p]
		require.False(t, dup, "address handed out twice while live")
		seen[p] = ref
		p.X = i
	}

	assert.Equal(t, 50, a.Len())
	assert.Equal(t, 7, a.NumBlocks())

	for p, ref := range seen {
		got, err := a.Get(ref)
		require.NoError(t, err)
		assert.Same(t, p, got)
	}
}

func TestReleaseReusesSlotOnce(t *testing.T) {
	a := New[point](4, Fixed)

	ref, p, err := a.Acquire()
	require.NoError(t, err)
	p.X = 42

	require.NoError(t, a.Release(ref))
	assert.Equal(t, 0, a.Len())

	ref2, p2, err := a.Acquire()
	require.NoError(t, err)
	assert.Same(t, p, p2, "released slot is reused by the next acquire")
	assert.Equal(t, point{}, *p2, "acquired slots are zeroed")
	assert.NotEqual(t, ref, ref2, "generation changes on reuse")

	_, p3, err := a.Acquire()
	require.NoError(t, err)
	assert.NotSame(t, p2, p3)
}

func TestReleaseErrors(t *testing.T) {
	a := New[point](4, Unbounded)
	ref := a.MustCreate(point{X: 1})

	require.NoError(t, a.Release(ref))
	assert.ErrorIs(t, a.Release(ref), ErrDoubleRelease)
	assert.ErrorIs(t, a.Release(Ref{}), ErrInvalidRef)
	assert.ErrorIs(t, a.Release(Ref{Block: 9, Slot: 0, Gen: 1}), ErrInvalidRef)

	// the slot now belongs to someone else
	_ = a.MustCreate(point{X: 2})
	assert.ErrorIs(t, a.Release(ref), ErrInvalidRef)
}

func TestGetStaleRef(t *testing.T) {
	a := New[point](2, Unbounded)
	ref := a.MustCreate(point{X: 7})

	v, err := a.Get(ref)
	require.NoError(t, err)
	assert.Equal(t, 7, v.X)
	assert.True(t, a.Valid(ref))

	require.NoError(t, a.Release(ref))
	_, err = a.Get(ref)
	assert.ErrorIs(t, err, ErrInvalidRef)
	assert.False(t, a.Valid(ref))
	assert.Panics(t, func() { a.MustGet(ref) })
}

func TestGrowthPolicies(t *testing.T) {
	t.Run("fixed", func(t *testing.T) {
		a := New[int](3, Fixed)
		for i := 0; i < 3; i++ {
			_, err := a.Create(i)
			require.NoError(t, err)
		}
		_, _, err := a.Acquire()
		assert.ErrorIs(t, err, ErrAllocationExhausted)
		assert.Equal(t, 1, a.NumBlocks())
		assert.Equal(t, uint64(1), a.Stats().Exhausted)
	})

	t.Run("capped", func(t *testing.T) {
		a := New[int](2, Capped(3))
		for i := 0; i < 6; i++ {
			_, err := a.Create(i)
			require.NoError(t, err)
		}
		_, err := a.Create(6)
		assert.ErrorIs(t, err, ErrAllocationExhausted)
		assert.Equal(t, 3, a.NumBlocks())
		assert.Panics(t, func() { a.MustAcquire() })
	})

	t.Run("capped recovers after release", func(t *testing.T) {
		a := New[int](1, Capped(1))
		ref := a.MustCreate(1)
		_, err := a.Create(2)
		require.ErrorIs(t, err, ErrAllocationExhausted)

		require.NoError(t, a.Release(ref))
		_, err = a.Create(3)
		assert.NoError(t, err)
	})

	t.Run("unbounded", func(t *testing.T) {
		a := New[int](2, Unbounded)
		for i := 0; i < 100; i++ {
			_ = a.MustCreate(i)
		}
		assert.Equal(t, 50, a.NumBlocks())
	})
}

func TestAcquirePrefersMostRecentlyUsedBlock(t *testing.T) {
	a := New[int](2, Unbounded)
	refs := make([]Ref, 6)
	for i := range refs {
		refs[i] = a.MustCreate(i)
	}
	require.Equal(t, 3, a.NumBlocks())

	// free one slot in block 0 and one in block 1, block 1 last
	require.NoError(t, a.Release(refs[0]))
	require.NoError(t, a.Release(refs[2]))

	ref := a.MustCreate(10)
	assert.Equal(t, uint32(1), ref.Block)
	ref = a.MustCreate(11)
	assert.Equal(t, uint32(0), ref.Block)
	assert.Equal(t, 3, a.NumBlocks(), "free slots are used before growing")
}

func TestDestroyRunsDestructor(t *testing.T) {
	a := New[point](4, Unbounded)
	var destroyed []point
	a.SetDestructor(func(p *point) { destroyed = append(destroyed, *p) })

	ref := a.MustCreate(point{X: 3, Y: 4})
	p := a.MustGet(ref)

	require.NoError(t, a.Destroy(ref))
	assert.Equal(t, []point{{X: 3, Y: 4}}, destroyed)
	assert.Equal(t, point{}, *p, "destroyed value is zeroed")
	assert.ErrorIs(t, a.Destroy(ref), ErrInvalidRef)

	ref = a.MustCreate(point{X: 1})
	require.NoError(t, a.Release(ref))
	assert.Len(t, destroyed, 1, "Release never runs the destructor")
}

func TestReset(t *testing.T) {
	a := New[int](4, Capped(2))
	var refs []Ref
	for i := 0; i < 8; i++ {
		refs = append(refs, a.MustCreate(i))
	}
	_, err := a.Create(8)
	require.ErrorIs(t, err, ErrAllocationExhausted)

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 2, a.NumBlocks(), "blocks are kept")
	for _, ref := range refs {
		assert.False(t, a.Valid(ref))
	}

	for i := 0; i < 8; i++ {
		_, err := a.Create(i)
		require.NoError(t, err)
	}
	assert.Equal(t, 8, a.Len())
}

func TestStats(t *testing.T) {
	a := New[int](4, Unbounded)
	r1 := a.MustCreate(1)
	_ = a.MustCreate(2)
	require.NoError(t, a.Release(r1))

	s := a.Stats()
	assert.Equal(t, 1, s.Live)
	assert.Equal(t, 4, s.Capacity)
	assert.Equal(t, 1, s.NumBlocks)
	assert.Equal(t, 4, s.BlockSize)
	assert.InDelta(t, 0.25, s.Utilization, 1e-9)
	assert.Equal(t, uint64(2), s.Acquires)
	assert.Equal(t, uint64(1), s.Releases)
}

func TestGrowthString(t *testing.T) {
	assert.Equal(t, "unbounded", Unbounded.String())
	assert.Equal(t, "fixed", Fixed.String())
	assert.Equal(t, "capped(4)", Capped(4).String())
	assert.Equal(t, "capped(1)", Capped(0).String())
}

func BenchmarkAcquireRelease(b *testing.B) {
	a := New[point](1024, Unbounded)
	refs := make([]Ref, 0, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ref, _, _ := a.Acquire()
		refs = append(refs, ref)
		if len(refs) == cap(refs) {
			for _, r := range refs {
				_ = a.Release(r)
			}
			refs = refs[:0]
		}
	}
}
