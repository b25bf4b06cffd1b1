package instance_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/wavepick/instance"
	"github.com/stretchr/testify/require"
)

// trivialInstanceText: O=1 I=1 A=1,
// order 0 demands (0,3), aisle 0 stocks (0,5), LB=3 UB=3.
const trivialInstanceText = "1 1 1\n1 0 3\n1 0 5\n3 3\n"

func TestParse_Trivial(t *testing.T) {
	ins, err := instance.Parse(strings.NewReader(trivialInstanceText))
	require.NoError(t, err)
	require.Equal(t, 1, ins.NumItems)
	require.Equal(t, 1, ins.NumOrders())
	require.Equal(t, 1, ins.NumAisles())
	require.Equal(t, 3, ins.Order(0).Demand(0))
	require.Equal(t, 5, ins.Aisle(0).Stock(0))
	require.Equal(t, 3, ins.WaveSizeLB)
	require.Equal(t, 3, ins.WaveSizeUB)

	// Adjacency: order 0 touches aisle 0 and vice versa.
	require.Equal(t, []int{0}, ins.OrderToAisles(0))
	require.Equal(t, []int{0}, ins.AisleToOrders(0))
}

func TestParse_TwoAisleCover(t *testing.T) {
	// Scenario 2: O=1 I=2 A=2; order demands (0,2)(1,2); aisle0 (0,2); aisle1 (1,2); LB=4 UB=4.
	text := "1 2 2\n2 0 2 1 2\n1 0 2\n1 1 2\n4 4\n"
	ins, err := instance.Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, 2, ins.Order(0).Demand(0))
	require.Equal(t, 2, ins.Order(0).Demand(1))
	require.ElementsMatch(t, []int{0, 1}, ins.OrderToAisles(0))
}

func TestParse_BadBounds(t *testing.T) {
	text := "0 0 0\n5 3\n"
	_, err := instance.Parse(strings.NewReader(text))
	require.Error(t, err)
	require.True(t, errors.Is(err, instance.ErrBadBounds))
}

func TestParse_ItemIDOutOfRange(t *testing.T) {
	text := "1 1 1\n1 5 3\n1 0 5\n1 1\n"
	_, err := instance.Parse(strings.NewReader(text))
	require.Error(t, err)
	require.True(t, errors.Is(err, instance.ErrItemIDOutOfRange))
}

func TestParse_NonPositiveUnits(t *testing.T) {
	text := "1 1 1\n1 0 0\n1 0 5\n1 1\n"
	_, err := instance.Parse(strings.NewReader(text))
	require.Error(t, err)
	require.True(t, errors.Is(err, instance.ErrNonPositiveUnits))
}

func TestParse_Truncated(t *testing.T) {
	text := "1 1 1\n1 0 3\n"
	_, err := instance.Parse(strings.NewReader(text))
	require.Error(t, err)
	require.True(t, errors.Is(err, instance.ErrTruncated))
}

func TestParse_NotInteger(t *testing.T) {
	text := "1 1 1\n1 0 x\n1 0 5\n1 1\n"
	_, err := instance.Parse(strings.NewReader(text))
	require.Error(t, err)
	require.True(t, errors.Is(err, instance.ErrNotInteger))
}

func TestInstance_UncoverableItem(t *testing.T) {
	// Item 0 is demanded by the only order but stocked by no aisle.
	ins, err := instance.NewInstance(
		2,
		[][2]int{{0, 1}},
		[][2]int{{1, 5}},
		[]int{1},
		[]int{1},
		1, 1,
	)
	require.NoError(t, err)
	require.True(t, ins.IsUncoverable(0))
	require.False(t, ins.IsUncoverable(1))
}

func TestInstance_ConnectedComponents(t *testing.T) {
	// Two disjoint (order,aisle) pairs never share an item -> two components.
	ins, err := instance.NewInstance(
		2,
		[][2]int{{0, 1}, {1, 1}},
		[][2]int{{0, 5}, {1, 5}},
		[]int{1, 1},
		[]int{1, 1},
		1, 2,
	)
	require.NoError(t, err)
	comps := ins.ConnectedComponents()
	require.Len(t, comps, 2)
}
