package repository

import (
	"invoice-dashboard-backend/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// All returns the revenue rows as stored, no reordering.
func (r *RevenueRepository) All() ([]models.Revenue, error) {
	var rows []models.Revenue
	err := r.db.Find(&rows).Error
	return rows, err
}
