// Package model holds the GORM table structs of the postgres backend.
package model

import "time"

// Entity tables share one shape: the numeric id and the JSON-encoded record.
const (
	TableClients = "clients"
	TableItems   = "items"
	TableOrders  = "orders"
	TableReviews = "reviews"
)

// RecordModel is one row of an entity table. The table name is chosen per
// query with db.Table. The id column is a signed bigint, so ids above
// math.MaxInt64 cannot be stored.
type RecordModel struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement:false"`
	Payload   string `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// SequenceModel is the GORM-specific struct for the 'sequences' table.
// Value maps to a signed bigint, so it is scanned as int64 and range checked.
type SequenceModel struct {
	Name  string `gorm:"type:varchar(64);primaryKey"`
	Value int64  `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (SequenceModel) TableName() string {
	return "sequences"
}
