package distmatrix_test

import (
	"testing"

	"github.com/katalvlaran/wavepick/distmatrix"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRowMin(t *testing.T) {
	m := distmatrix.New(4)
	a := m.Append(func(k int) float64 { return 0 })
	require.Equal(t, 0, a)

	b := m.Append(func(k int) float64 { return 0.5 })
	require.Equal(t, 1, b)

	c := m.Append(func(k int) float64 {
		if k == 0 {
			return 0.9
		}
		return 0.1
	})
	require.Equal(t, 2, c)

	require.InDelta(t, 0.5, m.RowMin(a), 1e-9)
	require.InDelta(t, 0.1, m.RowMin(c), 1e-9)
}

func TestRemove_Compacts(t *testing.T) {
	m := distmatrix.New(3)
	m.Append(func(k int) float64 { return 0 })
	m.Append(func(k int) float64 { return 1 })
	m.Append(func(k int) float64 { return 2 })
	require.Equal(t, 3, m.N())

	m.Remove(1)
	require.Equal(t, 2, m.N())
	d, err := m.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 2, d, 1e-9)
}

func TestAppend_CapacityExhausted(t *testing.T) {
	m := distmatrix.New(1)
	a := m.Append(func(k int) float64 { return 0 })
	require.Equal(t, 0, a)
	b := m.Append(func(k int) float64 { return 0 })
	require.Equal(t, -1, b)
}
