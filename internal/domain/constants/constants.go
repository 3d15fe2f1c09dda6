// Package constants contains string values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Storage drivers
const (
	StorageDriverBolt     = "bolt"
	StorageDriverPostgres = "postgres"
)

// Order status markers written by the service itself. Any other status string
// comes from an explicit status update.
const (
	OrderStatusPlaced    = "order placed"
	OrderStatusDelivered = "order delivered"
)

// Order event types
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderDelivered     = "order.delivered"
)
