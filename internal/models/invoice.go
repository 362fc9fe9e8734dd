package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index;not null"`
	Customer   Customer  `gorm:"foreignKey:CustomerID"`
	Amount     int64     `gorm:"not null;index"` // cents
	Status     string    `gorm:"index"`
	Date       time.Time `gorm:"index"`
	CreatedAt  time.Time
}
