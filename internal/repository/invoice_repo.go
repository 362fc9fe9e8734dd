package repository

import (
	"strings"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// InvoiceRow is one row of the invoice listing, joined with its customer.
type InvoiceRow struct {
	ID       uuid.UUID `json:"id"`
	Amount   int64     `json:"amount"`
	Date     time.Time `json:"date"`
	Status   string    `json:"status"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}

const invoiceRowSelect = `invoices.id, invoices.amount, invoices.date, invoices.status,
customers.name, customers.email, customers.image_url`

// Latest returns the n most recently dated invoices with their customer.
func (r *InvoiceRepository) Latest(n int) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := r.db.Model(&models.Invoice{}).
		Select(invoiceRowSelect).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Order("invoices.date DESC").
		Limit(n).
		Scan(&rows).Error
	return rows, err
}

// filteredQuery matches the search term against customer name/email and the
// invoice amount, date and status rendered as text.
func (r *InvoiceRepository) filteredQuery(query string) *gorm.DB {
	like := "%" + strings.ToLower(query) + "%"
	return r.db.Model(&models.Invoice{}).
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where(`LOWER(customers.name) LIKE ? OR
LOWER(customers.email) LIKE ? OR
CAST(invoices.amount AS TEXT) LIKE ? OR
CAST(invoices.date AS TEXT) LIKE ? OR
LOWER(invoices.status) LIKE ?`,
			like, like, like, like, like)
}

// Filtered returns one page of the filtered invoice listing, newest first.
func (r *InvoiceRepository) Filtered(query string, limit, offset int) ([]InvoiceRow, error) {
	var rows []InvoiceRow
	err := r.filteredQuery(query).
		Select(invoiceRowSelect).
		Order("invoices.date DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	return rows, err
}

// CountFiltered returns how many rows match the same filter.
func (r *InvoiceRepository) CountFiltered(query string) (int64, error) {
	var count int64
	err := r.filteredQuery(query).Count(&count).Error
	return count, err
}

// GetByID fetches a single invoice by ID. gorm.ErrRecordNotFound passes
// through so the caller can tell "absent" from "failed".
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	return r.db.Create(invoice).Error
}

// UpdateByID rewrites customer, amount and status in place. The id and date
// stay as they were at creation. Returns the number of rows touched.
func (r *InvoiceRepository) UpdateByID(id, customerID uuid.UUID, amountCents int64, status string) (int64, error) {
	res := r.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amountCents,
			"status":      status,
		})
	return res.RowsAffected, res.Error
}

// DeleteByID removes one invoice and reports how many rows went away.
func (r *InvoiceRepository) DeleteByID(id uuid.UUID) (int64, error) {
	res := r.db.Delete(&models.Invoice{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *InvoiceRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Invoice{}).Count(&count).Error
	return count, err
}

// SumAmountByStatus totals invoice amounts (in cents) for one status.
func (r *InvoiceRepository) SumAmountByStatus(status string) (int64, error) {
	var sum int64
	err := r.db.Model(&models.Invoice{}).
		Where("status = ?", status).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	return sum, err
}
