package models

import (
	"context"
	"time"

	"github.com/jirajara/invoices_backend/config"
)

// TaxRef is the joined tax carried by an item row. A nil TaxRef means
// the item has no tax attached (or its tax no longer exists).
type TaxRef struct {
	ID        string
	UserId    string
	Name      string
	Rate      float64
	CalcType  TaxCalcType
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemTaxRow is one row of the items-with-taxes join an invoice's
// financial figures are folded from.
type ItemTaxRow struct {
	Item InvoiceItem
	Tax  *TaxRef
}

// InvoiceTaxEntry is one element of an invoice's tax list. The list
// carries one entry per item-with-tax row, so a tax attached to several
// items appears several times.
type InvoiceTaxEntry struct {
	TaxId     string      `json:"tax_id"`
	UserId    string      `json:"user_id"`
	Name      string      `json:"name"`
	Rate      float64     `json:"rate"`
	CalcType  TaxCalcType `json:"calc_type"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type itemTaxScan struct {
	ID          string
	InvoiceId   string
	TaxId       *string
	Type        InvoiceItemType
	Name        string
	Description string
	Quantity    float64
	Price       float64
	CreatedAt   time.Time
	UpdatedAt   time.Time

	JoinedTaxId  *string
	TaxUserId    *string
	TaxName      *string
	TaxRate      *float64
	TaxCalcType  *TaxCalcType
	TaxCreatedAt *time.Time
	TaxUpdatedAt *time.Time
}

// fetchItemsAndTaxes loads an invoice's items LEFT JOINed with their
// taxes, in item creation order. itemType narrows the fetch when set.
// An unknown invoice id or an invoice without items yields an empty
// slice, not an error.
func fetchItemsAndTaxes(ctx context.Context, invoiceId string, itemType *InvoiceItemType) ([]ItemTaxRow, error) {
	db := config.GetDB()

	dbCtx := db.WithContext(ctx).Table("invoice_items").
		Select("invoice_items.id, invoice_items.invoice_id, invoice_items.tax_id, " +
			"invoice_items.type, invoice_items.name, invoice_items.description, " +
			"invoice_items.quantity, invoice_items.price, " +
			"invoice_items.created_at, invoice_items.updated_at, " +
			"taxes.id AS joined_tax_id, taxes.user_id AS tax_user_id, " +
			"taxes.name AS tax_name, taxes.rate AS tax_rate, " +
			"taxes.calc_type AS tax_calc_type, " +
			"taxes.created_at AS tax_created_at, taxes.updated_at AS tax_updated_at").
		Joins("LEFT JOIN taxes ON taxes.id = invoice_items.tax_id AND taxes.deleted_at IS NULL").
		Where("invoice_items.invoice_id = ?", invoiceId).
		Where("invoice_items.deleted_at IS NULL")
	if itemType != nil {
		dbCtx = dbCtx.Where("invoice_items.type = ?", *itemType)
	}

	var scans []itemTaxScan
	err := dbCtx.Order("invoice_items.created_at, invoice_items.id").Scan(&scans).Error
	if err != nil {
		return nil, err
	}

	rows := make([]ItemTaxRow, 0, len(scans))
	for _, s := range scans {
		row := ItemTaxRow{
			Item: InvoiceItem{
				ID:          s.ID,
				InvoiceId:   s.InvoiceId,
				TaxId:       s.TaxId,
				Type:        s.Type,
				Name:        s.Name,
				Description: s.Description,
				Quantity:    s.Quantity,
				Price:       s.Price,
				CreatedAt:   s.CreatedAt,
				UpdatedAt:   s.UpdatedAt,
			},
		}
		if s.JoinedTaxId != nil {
			ref := TaxRef{ID: *s.JoinedTaxId}
			if s.TaxUserId != nil {
				ref.UserId = *s.TaxUserId
			}
			if s.TaxName != nil {
				ref.Name = *s.TaxName
			}
			if s.TaxRate != nil {
				ref.Rate = *s.TaxRate
			}
			if s.TaxCalcType != nil {
				ref.CalcType = *s.TaxCalcType
			}
			if s.TaxCreatedAt != nil {
				ref.CreatedAt = *s.TaxCreatedAt
			}
			if s.TaxUpdatedAt != nil {
				ref.UpdatedAt = *s.TaxUpdatedAt
			}
			row.Tax = &ref
		}
		rows = append(rows, row)
	}
	return rows, nil
}

/*
	Pure folds. All accumulation is plain float64 in row order with no
	rounding; every figure an invoice reports is derived from these and
	never stored.
*/

// sum of discount prices. Discount rows ignore quantity here.
func sumDiscount(rows []ItemTaxRow) float64 {
	var total float64
	for _, row := range rows {
		if row.Item.Type == InvoiceItemTypeDiscount {
			total += row.Item.Price
		}
	}
	return total
}

// price*quantity of every row, with discount rows subtracting their
// raw price instead.
func sumSubtotal(rows []ItemTaxRow) float64 {
	var total float64
	for _, row := range rows {
		if row.Item.Type == InvoiceItemTypeDiscount {
			total -= row.Item.Price
		} else {
			total += row.Item.Price * row.Item.Quantity
		}
	}
	return total
}

// price*quantity of every row carrying a tax. A zero-rate tax still
// marks the row as taxed.
func sumTaxable(rows []ItemTaxRow) float64 {
	var total float64
	for _, row := range rows {
		if row.Tax != nil {
			total += row.Item.Price * row.Item.Quantity
		}
	}
	return total
}

// raw price of every row whose tax is absent or zero-rate. The price is
// deliberately not multiplied by quantity.
func sumNonTaxable(rows []ItemTaxRow) float64 {
	var total float64
	for _, row := range rows {
		if row.Tax == nil || row.Tax.Rate == 0 {
			total += row.Item.Price
		}
	}
	return total
}

// a single row's contribution to the invoice's tax amount
func rowTaxContribution(row ItemTaxRow) float64 {
	if row.Tax != nil {
		switch row.Tax.CalcType {
		case TaxCalcTypePercentage:
			return row.Item.Price * row.Item.Quantity * row.Tax.Rate / 100
		case TaxCalcTypeFixed:
			return row.Tax.Rate
		}
		return 0
	}
	// a bare tax line contributes its own price
	if row.Item.Type == InvoiceItemTypeTax {
		return row.Item.Price
	}
	return 0
}

func sumTaxAmount(rows []ItemTaxRow) float64 {
	var total float64
	for _, row := range rows {
		total += rowTaxContribution(row)
	}
	return total
}

// grand total: discount rows subtract their price, every other row adds
// price*quantity plus its tax contribution.
func sumTotal(rows []ItemTaxRow) float64 {
	var total float64
	for _, row := range rows {
		if row.Item.Type == InvoiceItemTypeDiscount {
			total -= row.Item.Price
			continue
		}
		total += row.Item.Price*row.Item.Quantity + rowTaxContribution(row)
	}
	return total
}

// one entry per row with a tax, in row order, duplicates included
func collectTaxes(rows []ItemTaxRow) []*InvoiceTaxEntry {
	entries := make([]*InvoiceTaxEntry, 0, len(rows))
	for _, row := range rows {
		if row.Tax == nil {
			continue
		}
		entries = append(entries, &InvoiceTaxEntry{
			TaxId:     row.Tax.ID,
			UserId:    row.Tax.UserId,
			Name:      row.Tax.Name,
			Rate:      row.Tax.Rate,
			CalcType:  row.Tax.CalcType,
			CreatedAt: row.Tax.CreatedAt,
			UpdatedAt: row.Tax.UpdatedAt,
		})
	}
	return entries
}

func collectItems(rows []ItemTaxRow) []*InvoiceItem {
	items := make([]*InvoiceItem, 0, len(rows))
	for i := range rows {
		items = append(items, &rows[i].Item)
	}
	return items
}

/*
	Per-invoice operations. Each issues its own fetch so every figure
	reflects the rows at its own read time; fetch errors pass through
	unchanged.
*/

func GetInvoiceDiscount(ctx context.Context, invoiceId string) (float64, error) {
	discountType := InvoiceItemTypeDiscount
	rows, err := fetchItemsAndTaxes(ctx, invoiceId, &discountType)
	if err != nil {
		return 0, err
	}
	return sumDiscount(rows), nil
}

func GetInvoiceSubtotal(ctx context.Context, invoiceId string) (float64, error) {
	rows, err := fetchItemsAndTaxes(ctx, invoiceId, nil)
	if err != nil {
		return 0, err
	}
	return sumSubtotal(rows), nil
}

func GetInvoiceTaxableAmount(ctx context.Context, invoiceId string) (float64, error) {
	rows, err := fetchItemsAndTaxes(ctx, invoiceId, nil)
	if err != nil {
		return 0, err
	}
	return sumTaxable(rows), nil
}

func GetInvoiceNonTaxableAmount(ctx context.Context, invoiceId string) (float64, error) {
	rows, err := fetchItemsAndTaxes(ctx, invoiceId, nil)
	if err != nil {
		return 0, err
	}
	return sumNonTaxable(rows), nil
}

func GetInvoiceTaxAmount(ctx context.Context, invoiceId string) (float64, error) {
	rows, err := fetchItemsAndTaxes(ctx, invoiceId, nil)
	if err != nil {
		return 0, err
	}
	return sumTaxAmount(rows), nil
}

func GetInvoiceTotal(ctx context.Context, invoiceId string) (float64, error) {
	rows, err := fetchItemsAndTaxes(ctx, invoiceId, nil)
	if err != nil {
		return 0, err
	}
	return sumTotal(rows), nil
}

func GetInvoiceTaxes(ctx context.Context, invoiceId string) ([]*InvoiceTaxEntry, error) {
	rows, err := fetchItemsAndTaxes(ctx, invoiceId, nil)
	if err != nil {
		return nil, err
	}
	return collectTaxes(rows), nil
}

func GetInvoiceItems(ctx context.Context, invoiceId string) ([]*InvoiceItem, error) {
	rows, err := fetchItemsAndTaxes(ctx, invoiceId, nil)
	if err != nil {
		return nil, err
	}
	return collectItems(rows), nil
}
