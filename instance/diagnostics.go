package instance

// Component is one connected cluster of the order↔aisle bipartite adjacency
// graph: orders and aisles that can only ever interact with each other.
// Wave-picking instances that are dominated by one giant component gain
// little from clustering-based neighborhoods; many small components are a
// signal that LNS/ObjectiveFocused operators could be scoped per-component
// (not done here; this is read-only diagnostic info, not a new operator).
type Component struct {
	Orders []int
	Aisles []int
}

// ConnectedComponents computes the connected components of the bipartite
// graph whose nodes are orders and aisles and whose edges are the
// orderToAisles/aisleToOrders adjacency, via breadth-first search.
//
// A queue of (kind,id) pairs stands in for a single-namespace BFS queue,
// since two disjoint id spaces (orders, aisles) share one graph here.
//
// Complexity: O(|orders| + |aisles| + Σ adjacency sizes).
func (ins *Instance) ConnectedComponents() []Component {
	visitedOrder := make([]bool, len(ins.Orders))
	visitedAisle := make([]bool, len(ins.Aisles))

	type node struct {
		isAisle bool
		id      int
	}

	var components []Component
	for start := 0; start < len(ins.Orders); start++ {
		if visitedOrder[start] {
			continue
		}
		comp := Component{}
		queue := []node{{false, start}}
		visitedOrder[start] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			if cur.isAisle {
				comp.Aisles = append(comp.Aisles, cur.id)
				for _, oid := range ins.aisleToOrders[cur.id] {
					if !visitedOrder[oid] {
						visitedOrder[oid] = true
						queue = append(queue, node{false, oid})
					}
				}
			} else {
				comp.Orders = append(comp.Orders, cur.id)
				for _, aid := range ins.orderToAisles[cur.id] {
					if !visitedAisle[aid] {
						visitedAisle[aid] = true
						queue = append(queue, node{true, aid})
					}
				}
			}
		}
		components = append(components, comp)
	}

	// Aisles with no adjacent order at all (e.g. stocking only uncoverable
	// or unused items) never get visited above; each forms its own component.
	for aid := range ins.Aisles {
		if !visitedAisle[aid] {
			components = append(components, Component{Aisles: []int{aid}})
		}
	}

	return components
}
