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

type Tax struct {
	ID        string         `gorm:"primary_key;size:36" json:"id"`
	UserId    string         `gorm:"index;size:36;not null" json:"user_id"`
	Name      string         `gorm:"size:100;not null" json:"name" binding:"required"`
	Rate      float64        `gorm:"type:double precision;not null;default:0" json:"rate"`
	CalcType  TaxCalcType    `gorm:"size:10;not null" json:"calc_type" binding:"required"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (tax *Tax) BeforeCreate(tx *gorm.DB) error {
	if tax.ID == "" {
		tax.ID = uuid.NewString()
	}
	return nil
}

type NewTax struct {
	Name     string      `json:"name" binding:"required"`
	Rate     float64     `json:"rate"`
	CalcType TaxCalcType `json:"calc_type" binding:"required"`
}

// validate input for both create & update. (id = "" for create)
func (input *NewTax) validate(ctx context.Context, userId string, id string) error {
	if input.Name == "" {
		return errors.New("name is required")
	}
	if input.Rate < 0 {
		return errors.New("rate must not be negative")
	}
	// name
	if err := utils.ValidateUnique[Tax](ctx, userId, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func CreateTax(ctx context.Context, input *NewTax) (*Tax, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	if err := input.validate(ctx, userId, ""); err != nil {
		return nil, err
	}

	tax := Tax{
		UserId:   userId,
		Name:     input.Name,
		Rate:     input.Rate,
		CalcType: input.CalcType,
	}

	db := config.GetDB()
	// db action
	err := db.WithContext(ctx).Create(&tax).Error
	if err != nil {
		return nil, err
	}
	return &tax, nil
}

func UpdateTax(ctx context.Context, id string, input *NewTax) (*Tax, error) {
	tax, err := fetchOwned[Tax](ctx, id)
	if err != nil {
		return nil, err
	}

	if err := input.validate(ctx, tax.UserId, id); err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(tax).Updates(map[string]interface{}{
		"Name":     input.Name,
		"Rate":     input.Rate,
		"CalcType": input.CalcType,
	}).Error
	if err != nil {
		return nil, err
	}

	// clear cache so loaders and GetResource reload
	if err := clearResourceCache[Tax](id); err != nil {
		return nil, err
	}

	return tax, nil
}

func DeleteTax(ctx context.Context, id string) (*Tax, error) {
	tax, err := fetchOwned[Tax](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()

	// check if tax is used
	var count int64
	if err := db.WithContext(ctx).Model(&InvoiceItem{}).
		Where("tax_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("used by invoice item")
	}

	// db action
	if err := db.WithContext(ctx).Delete(tax).Error; err != nil {
		return nil, err
	}

	if err := clearResourceCache[Tax](id); err != nil {
		return nil, err
	}

	return tax, nil
}

func GetTax(ctx context.Context, id string) (*Tax, error) {
	return GetResource[Tax](ctx, id)
}

type TaxConnection struct {
	Edges    []Edge[Tax]
	PageInfo *PageInfo
}

func GetTaxes(ctx context.Context, name *string, limit *int, after *string) (*TaxConnection, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("user_id = ?", userId)
	if name != nil && *name != "" {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}

	edges, pageInfo, err := FetchPage[Tax](dbCtx, pageLimit(limit), after)
	if err != nil {
		return nil, err
	}
	return &TaxConnection{Edges: edges, PageInfo: pageInfo}, nil
}
