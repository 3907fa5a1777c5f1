package models

import (
	"context"
	"testing"
)

// Only the pure checks run here; the ownership lookups behind them need a
// database and are exercised against a live instance.
func TestNewInvoiceItemValidateRejects(t *testing.T) {
	testCases := []struct {
		name  string
		input NewInvoiceItem
	}{
		{"missing name", NewInvoiceItem{Type: InvoiceItemTypeProduct, Quantity: 1}},
		{"zero quantity", NewInvoiceItem{Name: "Widget", Type: InvoiceItemTypeProduct, Quantity: 0}},
		{"negative quantity", NewInvoiceItem{Name: "Widget", Type: InvoiceItemTypeProduct, Quantity: -2}},
		{"fractional quantity below one", NewInvoiceItem{Name: "Widget", Type: InvoiceItemTypeProduct, Quantity: 0.5}},
		{"tax row with quantity above one", NewInvoiceItem{Name: "VAT", Type: InvoiceItemTypeTax, Quantity: 2}},
		{"discount row with quantity above one", NewInvoiceItem{Name: "Promo", Type: InvoiceItemTypeDiscount, Quantity: 3}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.input.validate(context.Background(), "owner"); err == nil {
				t.Fatalf("validate() = nil, expected an error")
			}
		})
	}
}
