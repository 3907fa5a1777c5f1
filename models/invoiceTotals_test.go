package models

import (
	"testing"
)

func productRow(price float64, quantity float64) ItemTaxRow {
	return ItemTaxRow{Item: InvoiceItem{Type: InvoiceItemTypeProduct, Quantity: quantity, Price: price}}
}

func taxedRow(price float64, quantity float64, tax TaxRef) ItemTaxRow {
	row := productRow(price, quantity)
	id := tax.ID
	row.Item.TaxId = &id
	row.Tax = &tax
	return row
}

func discountRow(price float64) ItemTaxRow {
	return ItemTaxRow{Item: InvoiceItem{Type: InvoiceItemTypeDiscount, Quantity: 1, Price: price}}
}

func bareTaxRow(price float64) ItemTaxRow {
	return ItemTaxRow{Item: InvoiceItem{Type: InvoiceItemTypeTax, Quantity: 1, Price: price}}
}

var vat12 = TaxRef{ID: "tax-vat", Name: "IVA", Rate: 12, CalcType: TaxCalcTypePercentage}
var flat5 = TaxRef{ID: "tax-flat", Name: "Stamp duty", Rate: 5, CalcType: TaxCalcTypeFixed}
var zeroRate = TaxRef{ID: "tax-zero", Name: "Exempt", Rate: 0, CalcType: TaxCalcTypePercentage}

func TestSumSubtotal(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []ItemTaxRow
		expected float64
	}{
		{"empty invoice", nil, 0},
		{"single product", []ItemTaxRow{productRow(100, 1)}, 100},
		{"quantity multiplies", []ItemTaxRow{productRow(25, 4)}, 100},
		{"discount subtracts raw price", []ItemTaxRow{productRow(100, 1), discountRow(20)}, 80},
		{"tax on a row does not change the subtotal", []ItemTaxRow{taxedRow(100, 1, vat12)}, 100},
		{"mixed rows", []ItemTaxRow{productRow(50, 2), taxedRow(30, 1, vat12), discountRow(10)}, 120},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sumSubtotal(tc.rows); got != tc.expected {
				t.Fatalf("sumSubtotal() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSumDiscount(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []ItemTaxRow
		expected float64
	}{
		{"empty invoice", nil, 0},
		{"no discount rows", []ItemTaxRow{productRow(100, 1)}, 0},
		{"single discount", []ItemTaxRow{discountRow(20)}, 20},
		{"discounts add up", []ItemTaxRow{discountRow(20), discountRow(5)}, 25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sumDiscount(tc.rows); got != tc.expected {
				t.Fatalf("sumDiscount() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSumDiscountIgnoresQuantity(t *testing.T) {
	row := discountRow(20)
	row.Item.Quantity = 3
	if got := sumDiscount([]ItemTaxRow{row}); got != 20 {
		t.Fatalf("sumDiscount() = %v, expected 20 (quantity must not multiply)", got)
	}
}

func TestSumTaxable(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []ItemTaxRow
		expected float64
	}{
		{"empty invoice", nil, 0},
		{"untaxed row is not taxable", []ItemTaxRow{productRow(100, 1)}, 0},
		{"taxed row counts price times quantity", []ItemTaxRow{taxedRow(40, 2, vat12)}, 80},
		{"zero-rate tax still marks the row taxed", []ItemTaxRow{taxedRow(100, 1, zeroRate)}, 100},
		{"discount row with a tax counts too", []ItemTaxRow{
			func() ItemTaxRow {
				row := discountRow(20)
				row.Tax = &vat12
				return row
			}(),
		}, 20},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sumTaxable(tc.rows); got != tc.expected {
				t.Fatalf("sumTaxable() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSumNonTaxable(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []ItemTaxRow
		expected float64
	}{
		{"empty invoice", nil, 0},
		{"untaxed row counts raw price", []ItemTaxRow{productRow(100, 1)}, 100},
		{"quantity is deliberately not applied", []ItemTaxRow{productRow(25, 4)}, 25},
		{"taxed row does not count", []ItemTaxRow{taxedRow(100, 1, vat12)}, 0},
		{"zero-rate tax counts as non-taxable too", []ItemTaxRow{taxedRow(100, 1, zeroRate)}, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sumNonTaxable(tc.rows); got != tc.expected {
				t.Fatalf("sumNonTaxable() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestZeroRateRowIsBothTaxableAndNonTaxable(t *testing.T) {
	rows := []ItemTaxRow{taxedRow(100, 1, zeroRate)}
	if got := sumTaxable(rows); got != 100 {
		t.Fatalf("sumTaxable() = %v, expected 100", got)
	}
	if got := sumNonTaxable(rows); got != 100 {
		t.Fatalf("sumNonTaxable() = %v, expected 100", got)
	}
}

func TestSumTaxAmount(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []ItemTaxRow
		expected float64
	}{
		{"empty invoice", nil, 0},
		{"untaxed row contributes nothing", []ItemTaxRow{productRow(100, 1)}, 0},
		{"percentage tax", []ItemTaxRow{taxedRow(100, 1, vat12)}, 12},
		{"percentage tax scales with quantity", []ItemTaxRow{taxedRow(100, 2, vat12)}, 24},
		{"fixed tax adds its rate once per row", []ItemTaxRow{taxedRow(100, 3, flat5)}, 5},
		{"bare tax line contributes its price", []ItemTaxRow{bareTaxRow(15)}, 15},
		{"mixed", []ItemTaxRow{taxedRow(100, 1, vat12), taxedRow(10, 1, flat5), bareTaxRow(15)}, 32},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sumTaxAmount(tc.rows); got != tc.expected {
				t.Fatalf("sumTaxAmount() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestSumTotal(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []ItemTaxRow
		expected float64
	}{
		{"empty invoice", nil, 0},
		{"single product", []ItemTaxRow{productRow(100, 1)}, 100},
		{"product with percentage tax", []ItemTaxRow{taxedRow(100, 1, vat12)}, 112},
		{"discount subtracts only its price", []ItemTaxRow{taxedRow(100, 1, vat12), discountRow(20)}, 92},
		{"fixed tax", []ItemTaxRow{taxedRow(100, 2, flat5)}, 205},
		{"bare tax line", []ItemTaxRow{productRow(100, 1), bareTaxRow(15)}, 130},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sumTotal(tc.rows); got != tc.expected {
				t.Fatalf("sumTotal() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFoldsAreRepeatable(t *testing.T) {
	rows := []ItemTaxRow{taxedRow(100, 1, vat12), discountRow(20), bareTaxRow(15)}
	first := sumTotal(rows)
	second := sumTotal(rows)
	if first != second {
		t.Fatalf("sumTotal() changed between calls: %v then %v", first, second)
	}
}

func TestCollectTaxes(t *testing.T) {
	rows := []ItemTaxRow{
		taxedRow(100, 1, vat12),
		productRow(50, 1),
		taxedRow(30, 2, vat12),
		taxedRow(10, 1, flat5),
	}

	entries := collectTaxes(rows)
	if len(entries) != 3 {
		t.Fatalf("collectTaxes() returned %d entries, expected 3", len(entries))
	}
	// one entry per taxed row, in row order, duplicates kept
	if entries[0].TaxId != vat12.ID || entries[1].TaxId != vat12.ID || entries[2].TaxId != flat5.ID {
		t.Fatalf("collectTaxes() order/duplication wrong: %v %v %v",
			entries[0].TaxId, entries[1].TaxId, entries[2].TaxId)
	}
	if entries[0].Name != "IVA" || entries[0].Rate != 12 || entries[0].CalcType != TaxCalcTypePercentage {
		t.Fatalf("collectTaxes() entry fields wrong: %+v", entries[0])
	}
}

func TestCollectTaxesEmpty(t *testing.T) {
	if entries := collectTaxes(nil); len(entries) != 0 {
		t.Fatalf("collectTaxes(nil) returned %d entries, expected 0", len(entries))
	}
	if entries := collectTaxes([]ItemTaxRow{productRow(100, 1)}); len(entries) != 0 {
		t.Fatalf("collectTaxes() returned %d entries for untaxed rows, expected 0", len(entries))
	}
}

func TestCollectItems(t *testing.T) {
	rows := []ItemTaxRow{
		{Item: InvoiceItem{ID: "a", Type: InvoiceItemTypeProduct, Quantity: 1, Price: 10}},
		{Item: InvoiceItem{ID: "b", Type: InvoiceItemTypeDiscount, Quantity: 1, Price: 2}},
	}
	items := collectItems(rows)
	if len(items) != 2 {
		t.Fatalf("collectItems() returned %d items, expected 2", len(items))
	}
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("collectItems() order wrong: %v %v", items[0].ID, items[1].ID)
	}
}
