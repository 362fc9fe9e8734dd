package models

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"index"`
	Email     string    `gorm:"uniqueIndex"`
	ImageURL  string    `gorm:"column:image_url"`
	CreatedAt time.Time
}
