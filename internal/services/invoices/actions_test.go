package invoices

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakePresenter records the side effects the actions are supposed to trigger.
type fakePresenter struct {
	invalidated []string
	navigated   []string
}

func (p *fakePresenter) Invalidate(viewKey string) { p.invalidated = append(p.invalidated, viewKey) }
func (p *fakePresenter) Navigate(path string)      { p.navigated = append(p.navigated, path) }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Invoice{},
		&models.InvoiceAuditLog{},
	))
	return db
}

func newTestActions(t *testing.T) (*Actions, *gorm.DB, models.Customer) {
	t.Helper()
	db := newTestDB(t)
	customer := models.Customer{
		ID:       uuid.New(),
		Name:     "Amy Burns",
		Email:    "amy@burns.com",
		ImageURL: "/customers/amy-burns.png",
	}
	require.NoError(t, db.Create(&customer).Error)
	return NewActions(repository.NewInvoiceRepository(db)), db, customer
}

func invoiceCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	return count
}

func TestCreateInvoice(t *testing.T) {
	actions, db, customer := newTestActions(t)
	p := &fakePresenter{}

	before := time.Now().UTC().Add(-time.Second)
	res := actions.Create(customer.ID.String(), "50.00", "pending", p)
	require.True(t, res.OK, "unexpected failure: %+v", res)

	var stored models.Invoice
	require.NoError(t, db.First(&stored).Error)
	assert.Equal(t, customer.ID, stored.CustomerID)
	assert.Equal(t, int64(5000), stored.Amount)
	assert.Equal(t, models.StatusPending, stored.Status)
	assert.True(t, stored.Date.After(before), "date must be set to creation time")

	assert.Equal(t, []string{"/dashboard/invoices"}, p.invalidated)
	assert.Equal(t, []string{"/dashboard/invoices"}, p.navigated)

	var audit models.InvoiceAuditLog
	require.NoError(t, db.First(&audit, "invoice_id = ?", stored.ID).Error)
	assert.Equal(t, "create", audit.Action)
}

func TestCreateInvoiceValidationFailures(t *testing.T) {
	cases := []struct {
		name     string
		customer string
		amount   string
		status   string
		badField string
	}{
		{"zero amount", "valid", "0", "pending", "amount"},
		{"negative amount", "valid", "-5", "pending", "amount"},
		{"garbage amount", "valid", "fifty", "pending", "amount"},
		{"nan amount", "valid", "NaN", "pending", "amount"},
		{"inf amount", "valid", "Infinity", "pending", "amount"},
		{"bad status", "valid", "50.00", "overdue", "status"},
		{"missing customer", "", "50.00", "pending", "customerId"},
		{"non-uuid customer", "cust_1", "50.00", "pending", "customerId"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			actions, db, customer := newTestActions(t)
			p := &fakePresenter{}

			custID := tc.customer
			if custID == "valid" {
				custID = customer.ID.String()
			}

			res := actions.Create(custID, tc.amount, tc.status, p)
			assert.False(t, res.OK)
			assert.NotEmpty(t, res.Errors[tc.badField])
			assert.Equal(t, "Missing fields. Failed to create invoice.", res.Message)

			assert.Equal(t, int64(0), invoiceCount(t, db), "validation failure must not write")
			assert.Empty(t, p.invalidated)
			assert.Empty(t, p.navigated)
		})
	}
}

func TestUpdateInvoice(t *testing.T) {
	actions, db, customer := newTestActions(t)
	p := &fakePresenter{}

	require.True(t, actions.Create(customer.ID.String(), "50.00", "pending", p).OK)

	var created models.Invoice
	require.NoError(t, db.First(&created).Error)

	p = &fakePresenter{}
	res := actions.Update(created.ID, customer.ID.String(), "75.50", "paid", p)
	require.True(t, res.OK, "unexpected failure: %+v", res)

	var updated models.Invoice
	require.NoError(t, db.First(&updated, "id = ?", created.ID).Error)
	assert.Equal(t, int64(7550), updated.Amount)
	assert.Equal(t, models.StatusPaid, updated.Status)
	assert.Equal(t, created.Date.Unix(), updated.Date.Unix(), "date is immutable after creation")
	assert.Equal(t, created.ID, updated.ID)

	assert.Equal(t, []string{"/dashboard/invoices"}, p.invalidated)
	assert.Equal(t, []string{"/dashboard/invoices"}, p.navigated)
}

func TestUpdateInvoiceValidationFailure(t *testing.T) {
	actions, db, customer := newTestActions(t)
	require.True(t, actions.Create(customer.ID.String(), "50.00", "pending", &fakePresenter{}).OK)

	var created models.Invoice
	require.NoError(t, db.First(&created).Error)

	p := &fakePresenter{}
	res := actions.Update(created.ID, customer.ID.String(), "0", "pending", p)
	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Errors["amount"])

	var unchanged models.Invoice
	require.NoError(t, db.First(&unchanged, "id = ?", created.ID).Error)
	assert.Equal(t, int64(5000), unchanged.Amount)
	assert.Empty(t, p.invalidated)
}

func TestUpdateMissingInvoice(t *testing.T) {
	actions, _, customer := newTestActions(t)
	p := &fakePresenter{}

	res := actions.Update(uuid.New(), customer.ID.String(), "75.50", "paid", p)
	assert.False(t, res.OK)
	assert.Equal(t, "Database error: Failed to update invoice", res.Message)
	assert.Empty(t, p.invalidated)
	assert.Empty(t, p.navigated)
}

func TestDeleteInvoice(t *testing.T) {
	actions, db, customer := newTestActions(t)
	require.True(t, actions.Create(customer.ID.String(), "50.00", "pending", &fakePresenter{}).OK)

	var created models.Invoice
	require.NoError(t, db.First(&created).Error)

	p := &fakePresenter{}
	res := actions.Delete(created.ID, p)
	require.True(t, res.OK)

	assert.Equal(t, int64(0), invoiceCount(t, db))
	assert.Equal(t, []string{"/dashboard/invoices"}, p.invalidated)
	assert.Empty(t, p.navigated, "delete does not navigate")

	var audit models.InvoiceAuditLog
	require.NoError(t, db.First(&audit, "invoice_id = ? AND action = ?", created.ID, "delete").Error)
}

func TestDeleteMissingInvoice(t *testing.T) {
	actions, _, _ := newTestActions(t)
	p := &fakePresenter{}

	res := actions.Delete(uuid.New(), p)
	assert.False(t, res.OK)
	assert.Equal(t, "Database error: Failed to delete invoice", res.Message)
	assert.Empty(t, p.invalidated, "the listing cache is only invalidated on actual success")
}

func TestCreateThenFetchRoundTrip(t *testing.T) {
	actions, db, customer := newTestActions(t)
	require.True(t, actions.Create(customer.ID.String(), "50.00", "pending", &fakePresenter{}).OK)

	repo := repository.NewInvoiceRepository(db)
	var created models.Invoice
	require.NoError(t, db.First(&created).Error)

	fetched, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), fetched.Amount)
	assert.InDelta(t, 50.00, float64(fetched.Amount)/100, 0.0001)
}
