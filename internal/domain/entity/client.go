// Package entity contains the core business objects of the project.
package entity

// Client is a customer placing orders. Owner is the identity that created the
// record and never changes afterwards.
type Client struct {
	ID      uint64 `json:"id"`
	Owner   string `json:"owner"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// IsOwnedBy reports whether identity recorded this client.
func (c *Client) IsOwnedBy(identity string) bool {
	return c.Owner == identity
}
