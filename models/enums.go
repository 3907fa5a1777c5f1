package models

import (
	"errors"
	"io"
	"strconv"
)

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// convert enum to send response
func (t UserRole) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

// convert input to enum type
func (t *UserRole) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("user role must be string")
	}
	switch str {
	case "admin":
		*t = UserRoleAdmin
	case "user":
		*t = UserRoleUser
	default:
		return errors.New("invalid user role")
	}
	return nil
}

type AddressType string

const (
	AddressTypePersonal AddressType = "personal"
	AddressTypeClients  AddressType = "clients"
)

func (t AddressType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *AddressType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("address type must be string")
	}
	switch str {
	case "personal":
		*t = AddressTypePersonal
	case "clients":
		*t = AddressTypeClients
	default:
		return errors.New("invalid address type")
	}
	return nil
}

type TaxCalcType string

const (
	TaxCalcTypePercentage TaxCalcType = "percentage"
	TaxCalcTypeFixed      TaxCalcType = "fixed"
)

func (t TaxCalcType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *TaxCalcType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("tax calc type must be string")
	}
	switch str {
	case "percentage":
		*t = TaxCalcTypePercentage
	case "fixed":
		*t = TaxCalcTypeFixed
	default:
		return errors.New("invalid tax calc type")
	}
	return nil
}

type InvoiceType string

const (
	InvoiceTypeInvoice       InvoiceType = "invoice"
	InvoiceTypeQuote         InvoiceType = "quote"
	InvoiceTypeReceipt       InvoiceType = "receipt"
	InvoiceTypeEstimate      InvoiceType = "estimate"
	InvoiceTypeProforma      InvoiceType = "proforma"
	InvoiceTypeDebit         InvoiceType = "debit"
	InvoiceTypeCredit        InvoiceType = "credit"
	InvoiceTypeBill          InvoiceType = "bill"
	InvoiceTypeDeliveryNote  InvoiceType = "delivery_note"
	InvoiceTypePurchaseOrder InvoiceType = "purchase_order"
)

func (t InvoiceType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *InvoiceType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("invoice type must be string")
	}
	invoiceTypes := map[string]InvoiceType{
		"invoice":        InvoiceTypeInvoice,
		"quote":          InvoiceTypeQuote,
		"receipt":        InvoiceTypeReceipt,
		"estimate":       InvoiceTypeEstimate,
		"proforma":       InvoiceTypeProforma,
		"debit":          InvoiceTypeDebit,
		"credit":         InvoiceTypeCredit,
		"bill":           InvoiceTypeBill,
		"delivery_note":  InvoiceTypeDeliveryNote,
		"purchase_order": InvoiceTypePurchaseOrder,
	}
	*t, ok = invoiceTypes[str]
	if !ok {
		return errors.New("invalid invoice type")
	}
	return nil
}

type InvoiceStatus string

const (
	InvoiceStatusDraft    InvoiceStatus = "draft"
	InvoiceStatusSent     InvoiceStatus = "sent"
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusCanceled InvoiceStatus = "canceled"
	InvoiceStatusOverdue  InvoiceStatus = "overdue"
)

func (t InvoiceStatus) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *InvoiceStatus) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("invoice status must be string")
	}
	invoiceStatuses := map[string]InvoiceStatus{
		"draft":    InvoiceStatusDraft,
		"sent":     InvoiceStatusSent,
		"paid":     InvoiceStatusPaid,
		"canceled": InvoiceStatusCanceled,
		"overdue":  InvoiceStatusOverdue,
	}
	*t, ok = invoiceStatuses[str]
	if !ok {
		return errors.New("invalid invoice status")
	}
	return nil
}

type InvoiceItemType string

const (
	InvoiceItemTypeProduct  InvoiceItemType = "product"
	InvoiceItemTypeService  InvoiceItemType = "service"
	InvoiceItemTypeDiscount InvoiceItemType = "discount"
	InvoiceItemTypeShipping InvoiceItemType = "shipping"
	InvoiceItemTypeTax      InvoiceItemType = "tax"
)

func (t InvoiceItemType) MarshalGQL(w io.Writer) {
	w.Write([]byte(strconv.Quote(string(t))))
}

func (t *InvoiceItemType) UnmarshalGQL(i interface{}) error {
	str, ok := i.(string)
	if !ok {
		return errors.New("invoice item type must be string")
	}
	invoiceItemTypes := map[string]InvoiceItemType{
		"product":  InvoiceItemTypeProduct,
		"service":  InvoiceItemTypeService,
		"discount": InvoiceItemTypeDiscount,
		"shipping": InvoiceItemTypeShipping,
		"tax":      InvoiceItemTypeTax,
	}
	*t, ok = invoiceItemTypes[str]
	if !ok {
		return errors.New("invalid invoice item type")
	}
	return nil
}
