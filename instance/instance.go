package instance

import (
	"fmt"
	"sort"
)

// NewInstance builds an Instance from in-memory order/aisle data, validating
// id ranges and unit positivity and precomputing adjacency.
//
// orderItems[o] and aisleItems[a] are the raw (itemId, units) pairs for
// order o / aisle a, in file order (their index becomes the id).
func NewInstance(numItems int, orderItems, aisleItems [][2]int, orderCounts, aisleCounts []int, waveLB, waveUB int) (*Instance, error) {
	if numItems < 0 {
		return nil, ErrNegativeCount
	}
	if waveLB > waveUB {
		return nil, ErrBadBounds
	}

	orders, err := buildOrders(numItems, orderItems, orderCounts)
	if err != nil {
		return nil, err
	}
	aisles, err := buildAisles(numItems, aisleItems, aisleCounts)
	if err != nil {
		return nil, err
	}

	ins := &Instance{
		NumItems:   numItems,
		Orders:     orders,
		Aisles:     aisles,
		WaveSizeLB: waveLB,
		WaveSizeUB: waveUB,
	}
	ins.orderToAisles, ins.aisleToOrders = buildAdjacency(orders, aisles, numItems)
	ins.uncoverableItems = uncoverableItems(orders, aisles, numItems)
	return ins, nil
}

// buildOrders consumes a flat (itemId,units) stream grouped by orderCounts[o]
// entries per order, validating ranges and positivity.
func buildOrders(numItems int, flat [][2]int, counts []int) ([]Order, error) {
	orders := make([]Order, len(counts))
	pos := 0
	for oid, k := range counts {
		demand := make(map[int]int, k)
		total := 0
		for j := 0; j < k; j++ {
			if pos >= len(flat) {
				return nil, ErrTruncated
			}
			itemID, units := flat[pos][0], flat[pos][1]
			pos++
			if itemID < 0 || itemID >= numItems {
				return nil, fmt.Errorf("order %d: %w", oid, ErrItemIDOutOfRange)
			}
			if units <= 0 {
				return nil, fmt.Errorf("order %d: %w", oid, ErrNonPositiveUnits)
			}
			demand[itemID] += units
			total += units
		}
		items, itemPos := sortedItems(demand)
		orders[oid] = Order{ID: oid, Items: items, demand: demand, itemPos: itemPos, totalUnits: total}
	}
	return orders, nil
}

// buildAisles is buildOrders's mirror for aisle stock records.
func buildAisles(numItems int, flat [][2]int, counts []int) ([]Aisle, error) {
	aisles := make([]Aisle, len(counts))
	pos := 0
	for aid, k := range counts {
		stock := make(map[int]int, k)
		for j := 0; j < k; j++ {
			if pos >= len(flat) {
				return nil, ErrTruncated
			}
			itemID, units := flat[pos][0], flat[pos][1]
			pos++
			if itemID < 0 || itemID >= numItems {
				return nil, fmt.Errorf("aisle %d: %w", aid, ErrItemIDOutOfRange)
			}
			if units <= 0 {
				return nil, fmt.Errorf("aisle %d: %w", aid, ErrNonPositiveUnits)
			}
			stock[itemID] += units
		}
		items, _ := sortedItems(stock)
		aisles[aid] = Aisle{ID: aid, Items: items, stock: stock}
	}
	return aisles, nil
}

// sortedItems turns an aggregated item->units map into a deterministic,
// item-id-ascending Items slice plus its item->position index.
func sortedItems(agg map[int]int) ([]ItemDemand, map[int]int) {
	ids := make([]int, 0, len(agg))
	for id := range agg {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	items := make([]ItemDemand, len(ids))
	pos := make(map[int]int, len(ids))
	for i, id := range ids {
		items[i] = ItemDemand{ItemID: id, Units: agg[id]}
		pos[id] = i
	}
	return items, pos
}
