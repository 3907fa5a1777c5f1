package pdf

import (
	"testing"

	"github.com/jirajara/invoices_backend/models"
)

func taxedItem(price float64, quantity float64, taxId string) *models.InvoiceItem {
	return &models.InvoiceItem{
		Type:     models.InvoiceItemTypeProduct,
		Quantity: quantity,
		Price:    price,
		TaxId:    &taxId,
	}
}

func TestSplitTaxesVatBucket(t *testing.T) {
	items := []*models.InvoiceItem{
		taxedItem(100, 1, "t1"),
		taxedItem(50, 2, "t2"),
	}
	taxes := []*models.InvoiceTaxEntry{
		{TaxId: "t1", Name: "IVA", Rate: 21, CalcType: models.TaxCalcTypePercentage},
		{TaxId: "t2", Name: "Eco levy", Rate: 10, CalcType: models.TaxCalcTypePercentage},
	}

	split := SplitTaxes(items, taxes)
	if split.VatAmount != 21 {
		t.Fatalf("VatAmount = %v, expected 21", split.VatAmount)
	}
	if split.VatLabel != "IVA" {
		t.Fatalf("VatLabel = %q, expected IVA", split.VatLabel)
	}
	if split.OtherAmount != 10 {
		t.Fatalf("OtherAmount = %v, expected 10", split.OtherAmount)
	}
}

func TestSplitTaxesVatByName(t *testing.T) {
	testCases := []struct {
		name  string
		isVat bool
	}{
		{"VAT 21%", true},
		{"iva reducido", true},
		{"Sales tax", false},
		{"Stamp duty", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			items := []*models.InvoiceItem{taxedItem(100, 1, "t1")}
			taxes := []*models.InvoiceTaxEntry{
				{TaxId: "t1", Name: tc.name, Rate: 10, CalcType: models.TaxCalcTypePercentage},
			}
			split := SplitTaxes(items, taxes)
			if tc.isVat && (split.VatAmount != 10 || split.OtherAmount != 0) {
				t.Fatalf("expected vat bucket, got %+v", split)
			}
			if !tc.isVat && (split.VatAmount != 0 || split.OtherAmount != 10) {
				t.Fatalf("expected other bucket, got %+v", split)
			}
		})
	}
}

func TestSplitTaxesFixedRate(t *testing.T) {
	items := []*models.InvoiceItem{taxedItem(100, 3, "t1")}
	taxes := []*models.InvoiceTaxEntry{
		{TaxId: "t1", Name: "Stamp duty", Rate: 5, CalcType: models.TaxCalcTypeFixed},
	}

	split := SplitTaxes(items, taxes)
	if split.OtherAmount != 5 {
		t.Fatalf("OtherAmount = %v, expected flat 5 regardless of quantity", split.OtherAmount)
	}
}

func TestSplitTaxesBareTaxLine(t *testing.T) {
	items := []*models.InvoiceItem{
		{Type: models.InvoiceItemTypeTax, Quantity: 1, Price: 15},
	}

	split := SplitTaxes(items, nil)
	if split.OtherAmount != 15 {
		t.Fatalf("OtherAmount = %v, expected 15 from the bare tax line", split.OtherAmount)
	}
	if split.VatAmount != 0 {
		t.Fatalf("VatAmount = %v, expected 0", split.VatAmount)
	}
}

func TestSplitTaxesEmpty(t *testing.T) {
	split := SplitTaxes(nil, nil)
	if split.VatAmount != 0 || split.OtherAmount != 0 {
		t.Fatalf("expected zero split, got %+v", split)
	}
}

func TestMoneyFormatting(t *testing.T) {
	testCases := []struct {
		in       float64
		expected string
	}{
		{0, "0.00"},
		{100, "100.00"},
		{12.5, "12.50"},
		{19.999, "20.00"},
	}

	for _, tc := range testCases {
		if got := money(tc.in); got != tc.expected {
			t.Fatalf("money(%v) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
