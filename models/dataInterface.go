package models

import (
	"time"
)

type Identifier interface {
	GetId() string
}

// interface for dataloader result
type Data interface {
	Identifier
	GetDefault(string) Data
}

// interface for paginated list nodes
type Node interface {
	Identifier
	GetCreatedAt() time.Time
}

// interface for cached, owner-checked resources
type Resource interface {
	GetUserId() string
}

// key
func (u User) GetId() string {
	return u.ID
}

func (u User) GetCreatedAt() time.Time {
	return u.CreatedAt
}

func (u User) GetUserId() string {
	return u.ID
}

func (u User) GetDefault(id string) Data {
	return User{
		ID:        id,
		Role:      UserRoleUser,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (a Address) GetId() string {
	return a.ID
}

func (a Address) GetCreatedAt() time.Time {
	return a.CreatedAt
}

func (a Address) GetUserId() string {
	return a.UserId
}

func (a Address) GetDefault(id string) Data {
	return Address{
		ID:        id,
		Type:      AddressTypeClients,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (t Tax) GetId() string {
	return t.ID
}

func (t Tax) GetCreatedAt() time.Time {
	return t.CreatedAt
}

func (t Tax) GetUserId() string {
	return t.UserId
}

func (t Tax) GetDefault(id string) Data {
	return Tax{
		ID:        id,
		CalcType:  TaxCalcTypePercentage,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (i Invoice) GetId() string {
	return i.ID
}

func (i Invoice) GetCreatedAt() time.Time {
	return i.CreatedAt
}

func (i Invoice) GetUserId() string {
	return i.UserId
}

func (i Invoice) GetDefault(id string) Data {
	return Invoice{
		ID:        id,
		Type:      InvoiceTypeInvoice,
		Status:    InvoiceStatusDraft,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (i InvoiceItem) GetId() string {
	return i.ID
}

func (i InvoiceItem) GetCreatedAt() time.Time {
	return i.CreatedAt
}

func (i InvoiceItem) GetDefault(id string) Data {
	return InvoiceItem{
		ID:        id,
		Type:      InvoiceItemTypeProduct,
		Quantity:  1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
