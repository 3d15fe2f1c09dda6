package entity

import "strings"

// Item is a food item offered for ordering.
type Item struct {
	ID          uint64 `json:"id"`
	Owner       string `json:"owner"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       uint64 `json:"price"`
	Category    string `json:"category"`
}

// IsOwnedBy reports whether identity recorded this item.
func (i *Item) IsOwnedBy(identity string) bool {
	return i.Owner == identity
}

// MatchesCategory reports whether term occurs in the category or the description.
func (i *Item) MatchesCategory(term string) bool {
	return strings.Contains(i.Category, term) || strings.Contains(i.Description, term)
}
