package entity

// Review is a client's rating of an item.
type Review struct {
	ID       uint64 `json:"id"`
	ClientID uint64 `json:"client_id"`
	ItemID   uint64 `json:"item_id"`
	Rating   uint64 `json:"rating"`
	Comment  string `json:"comment"`
}
