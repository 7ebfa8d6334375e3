package lazyvec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lazyvec "github.com/BartMassey/lazy-vec"
)

func TestLazyVec_WriteRead(t *testing.T) {
	a := lazyvec.New[int8]()
	a.Write(77, -12)

	v, err := a.Read(77)
	require.NoError(t, err)
	assert.Equal(t, int8(-12), v)
}

func TestLazyVec_ReadErrors(t *testing.T) {
	a := lazyvec.New[int8]()
	a.Write(77, -12)

	t.Run("out of range", func(t *testing.T) {
		_, err := a.Read(78)
		var oor *lazyvec.ErrOutOfRange
		require.ErrorAs(t, err, &oor)
		assert.Equal(t, 78, oor.Index)
		assert.Equal(t, 78, oor.Len)
		assert.NotNil(t, errors.Unwrap(err))
	})

	t.Run("uninitialized", func(t *testing.T) {
		_, err := a.Read(76)
		var un *lazyvec.ErrUninitialized
		require.ErrorAs(t, err, &un)
		assert.Equal(t, 76, un.Index)
	})

	t.Run("negative index", func(t *testing.T) {
		_, err := a.Read(-1)
		var oor *lazyvec.ErrOutOfRange
		assert.ErrorAs(t, err, &oor)
	})

	t.Run("errors are distinct", func(t *testing.T) {
		_, errOOR := a.Read(1000)
		_, errUn := a.Read(0)

		var oor *lazyvec.ErrOutOfRange
		assert.False(t, errors.As(errUn, &oor))
		var un *lazyvec.ErrUninitialized
		assert.False(t, errors.As(errOOR, &un))
	})
}

func TestLazyVec_Overwrite(t *testing.T) {
	a := lazyvec.New[rune]()
	a.Write(5, 'a')
	a.Write(5, 'b')

	v, err := a.Read(5)
	require.NoError(t, err)
	assert.Equal(t, 'b', v)

	assert.Equal(t, 1, a.Stats().Slots, "rewriting an index must not occupy a new slot")
}

func TestLazyVec_LenCap(t *testing.T) {
	a := lazyvec.New[string]()
	assert.Equal(t, 0, a.Len())

	a.Write(9, "nine")
	assert.Equal(t, 10, a.Len())
	assert.GreaterOrEqual(t, a.Cap(), a.Len())

	a.Write(2, "two")
	assert.Equal(t, 10, a.Len())
}

func TestLazyVec_WithCapacity(t *testing.T) {
	a := lazyvec.New[int](lazyvec.WithCapacity(1000))

	assert.Equal(t, 0, a.Len())
	assert.GreaterOrEqual(t, a.Cap(), 1000)

	_, err := a.Read(0)
	var oor *lazyvec.ErrOutOfRange
	require.ErrorAs(t, err, &oor, "pre-allocation must not imply initialization")

	a.Write(999, 1)
	assert.Equal(t, 0, a.Stats().Grows)
}

func TestLazyVec_SparseStorage(t *testing.T) {
	a := lazyvec.New[int]()

	for _, i := range []int{1 << 20, 3, 77777, 0} {
		a.Write(i, i)
	}

	st := a.Stats()
	assert.Equal(t, 4, st.Slots, "storage must be proportional to distinct indexes written")
	assert.Equal(t, 1<<20+1, st.Len)
	assert.GreaterOrEqual(t, st.Cap, st.Len)

	for _, i := range []int{1 << 20, 3, 77777, 0} {
		v, err := a.Read(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
}

func TestLazyVec_Ref(t *testing.T) {
	type blob struct{ n int }

	a := lazyvec.New[blob]()
	a.Write(3, blob{n: 30})

	p, err := a.Ref(3)
	require.NoError(t, err)
	p.n = 31

	v, err := a.Read(3)
	require.NoError(t, err)
	assert.Equal(t, 31, v.n)

	_, err = a.Ref(2)
	var un *lazyvec.ErrUninitialized
	assert.ErrorAs(t, err, &un)
}

func TestLazyVec_GetOrInsert(t *testing.T) {
	a := lazyvec.New[int]()

	p := a.GetOrInsert(8, 80)
	assert.Equal(t, 80, *p)
	assert.Equal(t, 9, a.Len())

	p = a.GetOrInsert(8, 999)
	assert.Equal(t, 80, *p, "existing value must be left untouched")

	*p = 81
	v, err := a.Read(8)
	require.NoError(t, err)
	assert.Equal(t, 81, v)
}

func TestLazyVec_GetOrInsertFunc(t *testing.T) {
	a := lazyvec.New[[]int]()

	calls := 0
	p := a.GetOrInsertFunc(2, func() []int {
		calls++
		return make([]int, 3)
	})
	require.Len(t, *p, 3)

	a.GetOrInsertFunc(2, func() []int {
		calls++
		return nil
	})
	assert.Equal(t, 1, calls, "producer must not run for an initialized index")
}

func TestLazyVec_WritePanics(t *testing.T) {
	a := lazyvec.New[int]()

	assert.Panics(t, func() { a.Write(-1, 0) })
	assert.Panics(t, func() { a.GetOrInsert(-1, 0) })
}

func TestLazyVec_Metrics(t *testing.T) {
	mc := &lazyvec.BasicMetricsCollector{}
	a := lazyvec.New[int](lazyvec.WithMetricsCollector(mc))

	a.Write(10, 1) // first write, grows
	a.Write(10, 2) // overwrite
	_, _ = a.Read(10)
	_, _ = a.Read(5) // uninitialized

	st := mc.GetStats()
	assert.Equal(t, int64(2), st.WriteCount)
	assert.Equal(t, int64(1), st.FirstWriteCount)
	assert.Equal(t, int64(2), st.ReadCount)
	assert.Equal(t, int64(1), st.ReadErrors)
	assert.Equal(t, int64(1), st.GrowCount)
}

func TestLazyVec_NilOptionFallbacks(t *testing.T) {
	a := lazyvec.New[int](
		lazyvec.WithLogger(nil),
		lazyvec.WithMetricsCollector(nil),
		lazyvec.WithCapacity(-5),
	)

	a.Write(0, 1)
	v, err := a.Read(0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
