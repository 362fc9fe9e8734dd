package invoices

import (
	"encoding/json"
	"log"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/dashboard"
	"invoice-dashboard-backend/internal/validation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Presenter receives the post-mutation side effects: marking the listing view
// stale and sending the caller back to it. The HTTP layer provides the
// production implementation.
type Presenter interface {
	Invalidate(viewKey string)
	Navigate(path string)
}

// ActionResult is the single result convention for all three mutations.
// Validation failures carry field errors, database failures carry a generic
// message; neither raises.
type ActionResult struct {
	OK      bool                   `json:"ok"`
	Errors  validation.FieldErrors `json:"errors,omitempty"`
	Message string                 `json:"message,omitempty"`
}

type Actions struct {
	repo *repository.InvoiceRepository
	db   *gorm.DB
}

func NewActions(repo *repository.InvoiceRepository) *Actions {
	return &Actions{repo: repo, db: repo.DB()}
}

// Create validates the form, inserts the invoice with the current timestamp,
// and on success invalidates the listing and navigates back to it.
func (a *Actions) Create(customerID, amount, status string, p Presenter) ActionResult {
	fields, errs := validation.ParseInvoiceForm(customerID, amount, status)
	if errs != nil {
		return ActionResult{Errors: errs, Message: "Missing fields. Failed to create invoice."}
	}

	custID, err := uuid.Parse(fields.CustomerID)
	if err != nil {
		return ActionResult{
			Errors:  validation.FieldErrors{"customerId": {"Please select a customer"}},
			Message: "Missing fields. Failed to create invoice.",
		}
	}

	now := time.Now().UTC()
	invoice := &models.Invoice{
		ID:         uuid.New(),
		CustomerID: custID,
		Amount:     fields.AmountCents,
		Status:     fields.Status,
		Date:       now,
		CreatedAt:  now,
	}

	if err := a.repo.Create(invoice); err != nil {
		log.Println("database error creating invoice:", err)
		return ActionResult{Message: "Database error: Failed to create invoice"}
	}

	a.audit(invoice.ID, "create", map[string]interface{}{
		"customer_id": custID.String(),
		"amount":      fields.AmountCents,
		"status":      fields.Status,
	})

	p.Invalidate(dashboard.InvoiceListingView)
	p.Navigate(dashboard.InvoiceListingView)
	return ActionResult{OK: true}
}

// Update rewrites customer, amount and status of an existing invoice. The id
// and date are immutable after creation.
func (a *Actions) Update(id uuid.UUID, customerID, amount, status string, p Presenter) ActionResult {
	fields, errs := validation.ParseInvoiceForm(customerID, amount, status)
	if errs != nil {
		return ActionResult{Errors: errs, Message: "Missing fields. Failed to update invoice."}
	}

	custID, err := uuid.Parse(fields.CustomerID)
	if err != nil {
		return ActionResult{
			Errors:  validation.FieldErrors{"customerId": {"Please select a customer"}},
			Message: "Missing fields. Failed to update invoice.",
		}
	}

	rows, err := a.repo.UpdateByID(id, custID, fields.AmountCents, fields.Status)
	if err != nil || rows == 0 {
		if err != nil {
			log.Println("database error updating invoice:", err)
		}
		return ActionResult{Message: "Database error: Failed to update invoice"}
	}

	a.audit(id, "update", map[string]interface{}{
		"customer_id": custID.String(),
		"amount":      fields.AmountCents,
		"status":      fields.Status,
	})

	p.Invalidate(dashboard.InvoiceListingView)
	p.Navigate(dashboard.InvoiceListingView)
	return ActionResult{OK: true}
}

// Delete removes the invoice. Deleting an id with no row is reported as a
// failure and leaves the listing cache alone. No navigation on success, the
// caller is already on the listing.
func (a *Actions) Delete(id uuid.UUID, p Presenter) ActionResult {
	rows, err := a.repo.DeleteByID(id)
	if err != nil || rows == 0 {
		if err != nil {
			log.Println("database error deleting invoice:", err)
		}
		return ActionResult{Message: "Database error: Failed to delete invoice"}
	}

	a.audit(id, "delete", nil)

	p.Invalidate(dashboard.InvoiceListingView)
	return ActionResult{OK: true}
}

// audit records the mutation for operators. A failed audit write is logged
// and swallowed, it never fails the mutation itself.
func (a *Actions) audit(invoiceID uuid.UUID, action string, details map[string]interface{}) {
	if details == nil {
		details = map[string]interface{}{}
	}
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}
	entry := &models.InvoiceAuditLog{
		ID:          uuid.New(),
		InvoiceID:   invoiceID,
		Action:      action,
		PerformedBy: "dashboard",
		Details:     datatypes.JSON(payload),
		CreatedAt:   time.Now().UTC(),
	}
	if err := a.db.Create(entry).Error; err != nil {
		log.Println("failed to write invoice audit log:", err)
	}
}
