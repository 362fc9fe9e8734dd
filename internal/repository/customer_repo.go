package repository

import (
	"strings"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// CustomerField is the minimal shape used to populate selection lists.
type CustomerField struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// CustomerWithTotals is one row of the customers table, with per-customer
// invoice aggregates (sums in cents).
type CustomerWithTotals struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ImageURL      string    `json:"image_url"`
	TotalInvoices int64     `json:"total_invoices"`
	TotalPending  int64     `json:"total_pending"`
	TotalPaid     int64     `json:"total_paid"`
}

// All returns every customer's id and name, alphabetically.
func (r *CustomerRepository) All() ([]CustomerField, error) {
	var fields []CustomerField
	err := r.db.Model(&models.Customer{}).
		Select("id, name").
		Order("name ASC").
		Scan(&fields).Error
	return fields, err
}

// FilteredWithTotals matches customers by name/email substring and annotates
// each with its invoice count and pending/paid sums.
func (r *CustomerRepository) FilteredWithTotals(query string) ([]CustomerWithTotals, error) {
	like := "%" + strings.ToLower(query) + "%"
	var rows []CustomerWithTotals
	err := r.db.Model(&models.Customer{}).
		Select(`customers.id, customers.name, customers.email, customers.image_url,
COUNT(invoices.id) AS total_invoices,
COALESCE(SUM(CASE WHEN invoices.status = 'pending' THEN invoices.amount ELSE 0 END), 0) AS total_pending,
COALESCE(SUM(CASE WHEN invoices.status = 'paid' THEN invoices.amount ELSE 0 END), 0) AS total_paid`).
		Joins("LEFT JOIN invoices ON invoices.customer_id = customers.id").
		Where("LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ?", like, like).
		Group("customers.id, customers.name, customers.email, customers.image_url").
		Order("customers.name ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *CustomerRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Customer{}).Count(&count).Error
	return count, err
}
