package pdf

import (
	"context"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jirajara/invoices_backend/models"
)

const dateLayout = "2006-01-02"

func money(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

func isVatName(name string) bool {
	upper := strings.ToUpper(name)
	return strings.Contains(upper, "VAT") || strings.Contains(upper, "IVA")
}

// TaxSplit groups the tax charges of an invoice for presentation:
// value added tax on one line, everything else on another.
type TaxSplit struct {
	VatLabel    string
	VatAmount   float64
	OtherAmount float64
}

// SplitTaxes walks the invoice rows in order and buckets each tax charge.
// Referenced taxes come from the tax list, which carries one entry per taxed
// row in the same order. Tax-type rows without a referenced tax count their
// price as an "other" charge, matching how the totals are computed.
func SplitTaxes(items []*models.InvoiceItem, taxes []*models.InvoiceTaxEntry) TaxSplit {
	split := TaxSplit{VatLabel: "VAT"}
	next := 0
	for _, item := range items {
		if item.TaxId != nil && *item.TaxId != "" {
			if next >= len(taxes) {
				continue
			}
			entry := taxes[next]
			next++

			var amount float64
			switch entry.CalcType {
			case models.TaxCalcTypeFixed:
				amount = entry.Rate
			default:
				amount = item.Price * item.Quantity * entry.Rate / 100
			}

			if isVatName(entry.Name) {
				split.VatLabel = entry.Name
				split.VatAmount += amount
			} else {
				split.OtherAmount += amount
			}
			continue
		}
		if item.Type == models.InvoiceItemTypeTax {
			split.OtherAmount += item.Price
		}
	}
	return split
}

func addressLines(address *models.Address) []string {
	lines := make([]string, 0, 3)
	street := strings.TrimSpace(address.Street + " " + address.Number)
	if street != "" {
		lines = append(lines, street)
	}
	locality := strings.TrimSpace(strings.Join(nonEmpty(address.Zipcode, address.City, address.State), " "))
	if locality != "" {
		lines = append(lines, locality)
	}
	if address.Country != "" {
		lines = append(lines, address.Country)
	}
	return lines
}

func nonEmpty(values ...string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

// Render produces the PDF document for one invoice. Every figure on the
// document is computed from the stored rows at render time.
func Render(ctx context.Context, invoiceId string) ([]byte, error) {
	invoice, err := models.GetInvoice(ctx, invoiceId)
	if err != nil {
		return nil, err
	}
	address, err := models.GetAddress(ctx, invoice.AddressId)
	if err != nil {
		return nil, err
	}
	clientAddress, err := models.GetAddress(ctx, invoice.ClientAddressId)
	if err != nil {
		return nil, err
	}
	items, err := models.GetInvoiceItems(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	taxes, err := models.GetInvoiceTaxes(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	discount, err := models.GetInvoiceDiscount(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	subtotal, err := models.GetInvoiceSubtotal(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	total, err := models.GetInvoiceTotal(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}

	split := SplitTaxes(items, taxes)

	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()

	m := maroto.New(cfg)

	m.AddRow(10,
		text.NewCol(12, strings.ToUpper(string(invoice.Type)), props.Text{
			Size:  20,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(16,
		col.New(6).Add(
			text.New("Number: "+invoice.Number, props.Text{Top: 0}),
			text.New("Date: "+invoice.Date.Format(dateLayout), props.Text{Top: 4}),
			text.New("Due date: "+invoice.DueDate.Format(dateLayout), props.Text{Top: 8}),
			text.New("Status: "+string(invoice.Status), props.Text{Top: 12}),
		),
		col.New(6),
	)

	fromCol := col.New(6).Add(
		text.New("From", props.Text{Style: fontstyle.Bold}),
		text.New(address.Name, props.Text{Top: 5}),
	)
	for i, line := range addressLines(address) {
		fromCol.Add(text.New(line, props.Text{Top: float64(9 + i*4)}))
	}
	toCol := col.New(6).Add(
		text.New("Bill to", props.Text{Style: fontstyle.Bold}),
		text.New(clientAddress.Name, props.Text{Top: 5}),
	)
	for i, line := range addressLines(clientAddress) {
		toCol.Add(text.New(line, props.Text{Top: float64(9 + i*4)}))
	}
	m.AddRow(32, fromCol, toCol)

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	for _, item := range items {
		label := item.Name
		if item.Description != "" {
			label = item.Name + " - " + item.Description
		}
		m.AddRow(12,
			text.NewCol(6, label, props.Text{Size: 9}),
			text.NewCol(2, money(item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(item.Price), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, money(item.Price*item.Quantity), props.Text{Size: 9, Align: align.Right}),
		)
	}

	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Subtotal", props.Text{Size: 9}),
		text.NewCol(2, money(subtotal), props.Text{Size: 9, Align: align.Right}),
	)
	if discount != 0 {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, "Discount", props.Text{Size: 9}),
			text.NewCol(2, money(discount), props.Text{Size: 9, Align: align.Right}),
		)
	}
	if split.VatAmount != 0 {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, split.VatLabel, props.Text{Size: 9}),
			text.NewCol(2, money(split.VatAmount), props.Text{Size: 9, Align: align.Right}),
		)
	}
	if split.OtherAmount != 0 {
		m.AddRow(8,
			col.New(8),
			text.NewCol(2, "Other taxes", props.Text{Size: 9}),
			text.NewCol(2, money(split.OtherAmount), props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(8,
		col.New(8),
		text.NewCol(2, "Total", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, money(total), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)

	if invoice.Terms != "" {
		m.AddRow(20,
			text.NewCol(12, invoice.Terms, props.Text{Size: 8, Top: 4}),
		)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}
