package validation

import (
	"math"
	"strconv"
	"strings"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/money"
)

// InvoiceFields is the validated shape of an invoice form submission.
type InvoiceFields struct {
	CustomerID  string
	AmountCents int64
	Status      string
}

// FieldErrors maps a form field name to its validation messages.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// ParseInvoiceForm validates raw form strings and coerces the amount to cents.
// It never fails hard: malformed input comes back as field errors, a nil map
// means every field passed.
func ParseInvoiceForm(customerID, amount, status string) (InvoiceFields, FieldErrors) {
	errs := FieldErrors{}
	fields := InvoiceFields{}

	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		errs.add("customerId", "Please select a customer")
	} else {
		fields.CustomerID = customerID
	}

	amount = strings.TrimSpace(amount)
	dollars, err := strconv.ParseFloat(amount, 64)
	// ParseFloat accepts "NaN" and "Inf"; neither is greater than $0.
	if err != nil || math.IsNaN(dollars) || math.IsInf(dollars, 0) || dollars <= 0 {
		errs.add("amount", "Please enter an amount greater than $0.")
	} else {
		fields.AmountCents = money.ToCents(dollars)
	}

	status = strings.TrimSpace(status)
	if status != models.StatusPending && status != models.StatusPaid {
		errs.add("status", "Please select an invoice status.")
	} else {
		fields.Status = status
	}

	if len(errs) == 0 {
		return fields, nil
	}
	return fields, errs
}
