package models

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jirajara/invoices_backend/config"
	"github.com/jirajara/invoices_backend/utils"
	"gorm.io/gorm"
)

type Invoice struct {
	ID              string         `gorm:"primary_key;size:36" json:"id"`
	UserId          string         `gorm:"index;size:36;not null" json:"user_id"`
	AddressId       string         `gorm:"size:36;not null" json:"address_id" binding:"required"`
	ClientAddressId string         `gorm:"size:36;not null" json:"client_address_id" binding:"required"`
	Type            InvoiceType    `gorm:"size:20;not null" json:"type" binding:"required"`
	Number          string         `gorm:"size:50;not null" json:"number" binding:"required"`
	Date            time.Time      `gorm:"not null" json:"date" binding:"required"`
	DueDate         time.Time      `gorm:"not null" json:"due_date" binding:"required"`
	Status          InvoiceStatus  `gorm:"size:10;not null;default:draft" json:"status"`
	Terms           string         `gorm:"size:1000" json:"terms"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) error {
	if invoice.ID == "" {
		invoice.ID = uuid.NewString()
	}
	return nil
}

type NewInvoice struct {
	AddressId       string        `json:"address_id" binding:"required"`
	ClientAddressId string        `json:"client_address_id" binding:"required"`
	Type            InvoiceType   `json:"type" binding:"required"`
	Number          string        `json:"number" binding:"required"`
	Date            time.Time     `json:"date" binding:"required"`
	DueDate         time.Time     `json:"due_date" binding:"required"`
	Status          InvoiceStatus `json:"status"`
	Terms           string        `json:"terms"`
}

// validate input for both create & update. (id = "" for create)
func (input *NewInvoice) validate(ctx context.Context, userId string, id string) error {
	if input.Number == "" {
		return errors.New("number is required")
	}
	if input.DueDate.Before(input.Date) {
		return errors.New("due date must not be before the invoice date")
	}
	// both address references must belong to the owner
	if err := utils.ValidateResourceId[Address](ctx, userId, input.AddressId); err != nil {
		return errors.New("address not found")
	}
	if err := utils.ValidateResourceId[Address](ctx, userId, input.ClientAddressId); err != nil {
		return errors.New("client address not found")
	}
	// number unique per owner
	if err := utils.ValidateUnique[Invoice](ctx, userId, "number", input.Number, id); err != nil {
		return err
	}
	return nil
}

func CreateInvoice(ctx context.Context, input *NewInvoice) (*Invoice, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	if err := input.validate(ctx, userId, ""); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = InvoiceStatusDraft
	}

	invoice := Invoice{
		UserId:          userId,
		AddressId:       input.AddressId,
		ClientAddressId: input.ClientAddressId,
		Type:            input.Type,
		Number:          input.Number,
		Date:            input.Date,
		DueDate:         input.DueDate,
		Status:          status,
		Terms:           input.Terms,
	}

	db := config.GetDB()
	// db action
	err := db.WithContext(ctx).Create(&invoice).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func UpdateInvoice(ctx context.Context, id string, input *NewInvoice) (*Invoice, error) {
	invoice, err := fetchOwned[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}

	if err := input.validate(ctx, invoice.UserId, id); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = invoice.Status
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(invoice).Updates(map[string]interface{}{
		"AddressId":       input.AddressId,
		"ClientAddressId": input.ClientAddressId,
		"Type":            input.Type,
		"Number":          input.Number,
		"Date":            input.Date,
		"DueDate":         input.DueDate,
		"Status":          status,
		"Terms":           input.Terms,
	}).Error
	if err != nil {
		return nil, err
	}

	return invoice, nil
}

func DeleteInvoice(ctx context.Context, id string) (*Invoice, error) {
	invoice, err := fetchOwned[Invoice](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()

	// items go with the invoice
	tx := db.WithContext(ctx).Begin()
	if err := tx.Where("invoice_id = ?", id).Delete(&InvoiceItem{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Delete(invoice).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return invoice, nil
}

func GetInvoice(ctx context.Context, id string) (*Invoice, error) {
	return fetchOwned[Invoice](ctx, id)
}

type InvoiceConnection struct {
	Edges    []Edge[Invoice]
	PageInfo *PageInfo
}

func GetInvoices(ctx context.Context, status *InvoiceStatus, invoiceType *InvoiceType, limit *int, after *string) (*InvoiceConnection, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("user_id = ?", userId)
	if status != nil {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	if invoiceType != nil {
		dbCtx = dbCtx.Where("type = ?", *invoiceType)
	}

	edges, pageInfo, err := FetchPage[Invoice](dbCtx, pageLimit(limit), after)
	if err != nil {
		return nil, err
	}
	return &InvoiceConnection{Edges: edges, PageInfo: pageInfo}, nil
}
