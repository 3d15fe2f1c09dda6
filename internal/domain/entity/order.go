package entity

// Order is a client's purchase of one or more items.
type Order struct {
	ID       uint64            `json:"id"`
	ClientID uint64            `json:"client_id"`
	Items    map[uint64]uint64 `json:"items"` // item id -> quantity
	// Total is fixed at creation time and not recomputed when prices change.
	Total     uint64 `json:"total"`
	Status    string `json:"status"`
	Delivered bool   `json:"delivered"`
}
