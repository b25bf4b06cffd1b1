package instance

// ItemDemand pairs an item id with the units an order demands or an aisle
// stocks. Stored densely per order/aisle rather than as a full [NumItems]
// array, since real instances are sparse.
type ItemDemand struct {
	ItemID int
	Units  int
}

// Order is a customer request: a sparse set of distinct (item, units)
// pairs, sorted by item id. Items is deduplicated at construction time even
// if the source file listed the same item twice for one order.
type Order struct {
	ID    int
	Items []ItemDemand
	// demand indexes Items by item id for O(1) lookup.
	demand map[int]int
	// itemPos maps an item id to its index within Items, so solution.Solution
	// can address coverage[o][pos] in O(1) without a linear scan.
	itemPos map[int]int
	// totalUnits is the sum of Items[*].Units, cached at construction.
	totalUnits int
}

// Demand returns the units of itemID demanded by this order, or 0 if the
// order does not demand that item.
func (o *Order) Demand(itemID int) int { return o.demand[itemID] }

// TotalUnits returns the sum of units demanded across all items.
func (o *Order) TotalUnits() int { return o.totalUnits }

// PositionOf returns the index of itemID within Items and true, or (0,
// false) if the order does not demand itemID.
func (o *Order) PositionOf(itemID int) (int, bool) {
	p, ok := o.itemPos[itemID]
	return p, ok
}

// Aisle is a warehouse location: a sparse set of distinct (item, units)
// pairs, sorted by item id.
type Aisle struct {
	ID    int
	Items []ItemDemand
	stock map[int]int
}

// Stock returns the units of itemID stocked by this aisle, or 0 if the
// aisle does not stock that item.
func (a *Aisle) Stock(itemID int) int { return a.stock[itemID] }

// Instance is the immutable SBPO wave-picking problem data.
type Instance struct {
	NumItems   int
	Orders     []Order
	Aisles     []Aisle
	WaveSizeLB int
	WaveSizeUB int

	// orderToAisles[o] is the set of aisle ids whose stock intersects the
	// demand set of order o. Computed once in NewInstance; never mutated.
	orderToAisles [][]int
	// aisleToOrders[a] is the set of order ids whose demand set intersects
	// the stock of aisle a. Computed once in NewInstance; never mutated.
	aisleToOrders [][]int

	// uncoverableItems holds items that no aisle stocks at all; any order
	// demanding one of these items can never be fully covered.
	uncoverableItems map[int]bool
}

// NumOrders returns the number of orders in the instance.
func (ins *Instance) NumOrders() int { return len(ins.Orders) }

// NumAisles returns the number of aisles in the instance.
func (ins *Instance) NumAisles() int { return len(ins.Aisles) }

// Order returns a pointer to the order with the given id. The caller must
// ensure 0 <= id < NumOrders(); out-of-range access is a contract violation
// and panics via slice bounds.
func (ins *Instance) Order(id int) *Order { return &ins.Orders[id] }

// Aisle returns a pointer to the aisle with the given id. Same contract as Order.
func (ins *Instance) Aisle(id int) *Aisle { return &ins.Aisles[id] }

// OrderToAisles returns the (read-only) set of aisle ids adjacent to order o:
// aisles that stock at least one item o demands.
func (ins *Instance) OrderToAisles(o int) []int { return ins.orderToAisles[o] }

// AisleToOrders returns the (read-only) set of order ids adjacent to aisle a:
// orders that demand at least one item a stocks.
func (ins *Instance) AisleToOrders(a int) []int { return ins.aisleToOrders[a] }

// IsUncoverable reports whether itemID is stocked by no aisle whatsoever,
// meaning any order demanding it can never be fully covered.
func (ins *Instance) IsUncoverable(itemID int) bool { return ins.uncoverableItems[itemID] }
