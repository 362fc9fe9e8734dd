package validation

import "testing"

func TestParseInvoiceForm(t *testing.T) {
	cases := []struct {
		name       string
		customerID string
		amount     string
		status     string
		ok         bool
		badFields  []string
		cents      int64
	}{
		{"valid pending", "cust_1", "50.00", "pending", true, nil, 5000},
		{"valid paid", "cust_1", "75.50", "paid", true, nil, 7550},
		{"whole dollars", "cust_1", "3", "paid", true, nil, 300},
		{"zero amount", "cust_1", "0", "pending", false, []string{"amount"}, 0},
		{"negative amount", "cust_1", "-12.50", "pending", false, []string{"amount"}, 0},
		{"garbage amount", "cust_1", "abc", "pending", false, []string{"amount"}, 0},
		{"nan amount", "cust_1", "NaN", "pending", false, []string{"amount"}, 0},
		{"inf amount", "cust_1", "Inf", "pending", false, []string{"amount"}, 0},
		{"positive inf amount", "cust_1", "+Inf", "pending", false, []string{"amount"}, 0},
		{"infinity amount", "cust_1", "Infinity", "pending", false, []string{"amount"}, 0},
		{"empty amount", "cust_1", "", "pending", false, []string{"amount"}, 0},
		{"missing customer", "", "50.00", "pending", false, []string{"customerId"}, 0},
		{"bad status", "cust_1", "50.00", "overdue", false, []string{"status"}, 0},
		{"empty status", "cust_1", "50.00", "", false, []string{"status"}, 0},
		{"everything wrong", "", "nope", "maybe", false, []string{"customerId", "amount", "status"}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields, errs := ParseInvoiceForm(tc.customerID, tc.amount, tc.status)
			if tc.ok {
				if errs != nil {
					t.Fatalf("expected valid input, got errors %v", errs)
				}
				if fields.AmountCents != tc.cents {
					t.Fatalf("amount = %d cents, want %d", fields.AmountCents, tc.cents)
				}
				if fields.CustomerID != tc.customerID || fields.Status != tc.status {
					t.Fatalf("unexpected fields %+v", fields)
				}
				return
			}
			if len(errs) != len(tc.badFields) {
				t.Fatalf("expected errors on %v, got %v", tc.badFields, errs)
			}
			for _, f := range tc.badFields {
				if len(errs[f]) == 0 {
					t.Fatalf("expected an error on field %q, got %v", f, errs)
				}
			}
		})
	}
}

func TestParseInvoiceFormMessages(t *testing.T) {
	_, errs := ParseInvoiceForm("", "0", "bogus")
	want := map[string]string{
		"customerId": "Please select a customer",
		"amount":     "Please enter an amount greater than $0.",
		"status":     "Please select an invoice status.",
	}
	for field, msg := range want {
		if len(errs[field]) != 1 || errs[field][0] != msg {
			t.Fatalf("field %q: got %v, want %q", field, errs[field], msg)
		}
	}
}
