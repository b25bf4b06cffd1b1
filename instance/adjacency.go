package instance

// buildAdjacency computes orderToAisles and aisleToOrders by iterating
// (aisle, stocked item) × (order containing item).
//
// Complexity: O(Σ_a |stock(a)| · avg-orders-per-item), bounded in practice by
// the sparsity of real wave-picking instances; a temporary item→orders index
// keeps the join linear in the number of (order,item) and (aisle,item) pairs
// instead of quadratic in |orders|×|aisles|.
func buildAdjacency(orders []Order, aisles []Aisle, numItems int) (orderToAisles, aisleToOrders [][]int) {
	itemToOrders := make([][]int, numItems)
	for oid := range orders {
		for _, d := range orders[oid].Items {
			itemToOrders[d.ItemID] = append(itemToOrders[d.ItemID], oid)
		}
	}

	orderToAisles = make([][]int, len(orders))
	aisleToOrders = make([][]int, len(aisles))
	orderSeen := make([]int, len(orders)) // last aisle id that touched this order, +1 (0 = never)

	for aid := range aisles {
		aisleOrders := make(map[int]bool)
		for _, s := range aisles[aid].Items {
			if s.ItemID < 0 || s.ItemID >= numItems {
				continue
			}
			for _, oid := range itemToOrders[s.ItemID] {
				if orderSeen[oid] != aid+1 {
					orderSeen[oid] = aid + 1
					orderToAisles[oid] = append(orderToAisles[oid], aid)
				}
				aisleOrders[oid] = true
			}
		}
		aisleList := make([]int, 0, len(aisleOrders))
		for oid := range aisleOrders {
			aisleList = append(aisleList, oid)
		}
		aisleToOrders[aid] = aisleList
	}
	return orderToAisles, aisleToOrders
}

// uncoverableItems returns the set of item ids stocked by no aisle at all.
func uncoverableItems(orders []Order, aisles []Aisle, numItems int) map[int]bool {
	stocked := make([]bool, numItems)
	for aid := range aisles {
		for _, s := range aisles[aid].Items {
			if s.ItemID >= 0 && s.ItemID < numItems {
				stocked[s.ItemID] = true
			}
		}
	}
	demanded := make([]bool, numItems)
	for oid := range orders {
		for _, d := range orders[oid].Items {
			if d.ItemID >= 0 && d.ItemID < numItems {
				demanded[d.ItemID] = true
			}
		}
	}
	out := make(map[int]bool)
	for i := 0; i < numItems; i++ {
		if demanded[i] && !stocked[i] {
			out[i] = true
		}
	}
	return out
}
