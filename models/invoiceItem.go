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

type InvoiceItem struct {
	ID          string          `gorm:"primary_key;size:36" json:"id"`
	InvoiceId   string          `gorm:"index;size:36;not null" json:"invoice_id" binding:"required"`
	TaxId       *string         `gorm:"size:36" json:"tax_id"`
	Type        InvoiceItemType `gorm:"size:10;not null" json:"type" binding:"required"`
	Name        string          `gorm:"size:200;not null" json:"name" binding:"required"`
	Description string          `gorm:"size:1000" json:"description"`
	Quantity    float64         `gorm:"type:double precision;not null;default:1" json:"quantity"`
	Price       float64         `gorm:"type:double precision;not null;default:0" json:"price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (item *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return nil
}

type NewInvoiceItem struct {
	InvoiceId   string          `json:"invoice_id" binding:"required"`
	TaxId       *string         `json:"tax_id"`
	Type        InvoiceItemType `json:"type" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Quantity    float64         `json:"quantity"`
	Price       float64         `json:"price"`
}

// validate input for both create & update.
// Tax and discount rows must carry quantity 1 so the aggregation rules
// that ignore their quantity stay consistent with what was stored.
func (input *NewInvoiceItem) validate(ctx context.Context, userId string) error {
	if input.Name == "" {
		return errors.New("name is required")
	}
	if input.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	if (input.Type == InvoiceItemTypeTax || input.Type == InvoiceItemTypeDiscount) && input.Quantity != 1 {
		return errors.New("tax and discount items must have quantity 1")
	}
	// the invoice must belong to the owner
	if err := utils.ValidateResourceId[Invoice](ctx, userId, input.InvoiceId); err != nil {
		return errors.New("invoice not found")
	}
	if input.TaxId != nil && *input.TaxId != "" {
		if err := utils.ValidateResourceId[Tax](ctx, userId, *input.TaxId); err != nil {
			return errors.New("tax not found")
		}
	}
	return nil
}

func CreateInvoiceItem(ctx context.Context, input *NewInvoiceItem) (*InvoiceItem, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	if err := input.validate(ctx, userId); err != nil {
		return nil, err
	}

	taxId := utils.NilIfEmpty(utils.DereferencePtr(input.TaxId))

	item := InvoiceItem{
		InvoiceId:   input.InvoiceId,
		TaxId:       taxId,
		Type:        input.Type,
		Name:        input.Name,
		Description: input.Description,
		Quantity:    input.Quantity,
		Price:       input.Price,
	}

	db := config.GetDB()
	// db action
	err := db.WithContext(ctx).Create(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// fetch an item through its invoice's owner
func fetchOwnedItem(ctx context.Context, id string) (*InvoiceItem, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	var item InvoiceItem
	dbCtx := db.WithContext(ctx).
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id").
		Where("invoice_items.id = ?", id)
	if isAdmin, _ := utils.GetIsAdminFromContext(ctx); !isAdmin {
		dbCtx = dbCtx.Where("invoices.user_id = ?", userId)
	}
	if err := dbCtx.First(&item).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}
	return &item, nil
}

func UpdateInvoiceItem(ctx context.Context, id string, input *NewInvoiceItem) (*InvoiceItem, error) {
	item, err := fetchOwnedItem(ctx, id)
	if err != nil {
		return nil, err
	}

	userId, _ := utils.GetUserIdFromContext(ctx)
	if isAdmin, _ := utils.GetIsAdminFromContext(ctx); isAdmin {
		// admins validate against the invoice's owner, not themselves
		invoice, err := utils.FetchSingleModel[Invoice](ctx, item.InvoiceId)
		if err != nil {
			return nil, err
		}
		userId = invoice.UserId
	}
	if err := input.validate(ctx, userId); err != nil {
		return nil, err
	}

	taxId := utils.NilIfEmpty(utils.DereferencePtr(input.TaxId))

	db := config.GetDB()
	err = db.WithContext(ctx).Model(item).Updates(map[string]interface{}{
		"InvoiceId":   input.InvoiceId,
		"TaxId":       taxId,
		"Type":        input.Type,
		"Name":        input.Name,
		"Description": input.Description,
		"Quantity":    input.Quantity,
		"Price":       input.Price,
	}).Error
	if err != nil {
		return nil, err
	}

	return item, nil
}

func DeleteInvoiceItem(ctx context.Context, id string) (*InvoiceItem, error) {
	item, err := fetchOwnedItem(ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Delete(item).Error; err != nil {
		return nil, err
	}

	return item, nil
}

func GetInvoiceItem(ctx context.Context, id string) (*InvoiceItem, error) {
	return fetchOwnedItem(ctx, id)
}

type InvoiceItemConnection struct {
	Edges    []Edge[InvoiceItem]
	PageInfo *PageInfo
}

func GetInvoiceItemsPage(ctx context.Context, invoiceId string, limit *int, after *string) (*InvoiceItemConnection, error) {
	// the owner check rides on the invoice fetch
	if _, err := GetInvoice(ctx, invoiceId); err != nil {
		return nil, err
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("invoice_id = ?", invoiceId)

	edges, pageInfo, err := FetchPage[InvoiceItem](dbCtx, pageLimit(limit), after)
	if err != nil {
		return nil, err
	}
	return &InvoiceItemConnection{Edges: edges, PageInfo: pageInfo}, nil
}
