package model

import (
	"time"

	"github.com/google/uuid"
)

// PrincipalModel is the GORM-specific struct for the 'principals' table.
type PrincipalModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	SecretHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrincipalModel) TableName() string {
	return "principals"
}
