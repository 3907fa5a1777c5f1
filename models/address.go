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

type Address struct {
	ID        string         `gorm:"primary_key;size:36" json:"id"`
	UserId    string         `gorm:"index;size:36;not null" json:"user_id"`
	Type      AddressType    `gorm:"size:10;not null" json:"type" binding:"required"`
	Name      string         `gorm:"size:100;not null" json:"name" binding:"required"`
	TaxId     string         `gorm:"size:50" json:"tax_id"`
	Email     string         `gorm:"size:100" json:"email"`
	Street    string         `gorm:"size:200" json:"street"`
	Number    string         `gorm:"size:20" json:"number"`
	Comment   string         `gorm:"size:500" json:"comment"`
	Zipcode   string         `gorm:"size:20" json:"zipcode"`
	City      string         `gorm:"size:100" json:"city"`
	State     string         `gorm:"size:100" json:"state"`
	Country   string         `gorm:"size:2" json:"country"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (address *Address) BeforeCreate(tx *gorm.DB) error {
	if address.ID == "" {
		address.ID = uuid.NewString()
	}
	return nil
}

type NewAddress struct {
	Type    AddressType `json:"type" binding:"required"`
	Name    string      `json:"name" binding:"required"`
	TaxId   string      `json:"tax_id"`
	Email   string      `json:"email"`
	Street  string      `json:"street"`
	Number  string      `json:"number"`
	Comment string      `json:"comment"`
	Zipcode string      `json:"zipcode"`
	City    string      `json:"city"`
	State   string      `json:"state"`
	Country string      `json:"country"`
}

// validate input for both create & update
func (input *NewAddress) validate() error {
	if input.Name == "" {
		return errors.New("name is required")
	}
	if input.Email != "" && !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email address")
	}
	if input.Country != "" && len(input.Country) != 2 {
		return errors.New("country must be a 2-letter code")
	}
	return nil
}

func CreateAddress(ctx context.Context, input *NewAddress) (*Address, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	address := Address{
		UserId:  userId,
		Type:    input.Type,
		Name:    input.Name,
		TaxId:   input.TaxId,
		Email:   input.Email,
		Street:  input.Street,
		Number:  input.Number,
		Comment: input.Comment,
		Zipcode: input.Zipcode,
		City:    input.City,
		State:   input.State,
		Country: input.Country,
	}

	db := config.GetDB()
	// db action
	err := db.WithContext(ctx).Create(&address).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func UpdateAddress(ctx context.Context, id string, input *NewAddress) (*Address, error) {
	address, err := fetchOwned[Address](ctx, id)
	if err != nil {
		return nil, err
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(address).Updates(map[string]interface{}{
		"Type":    input.Type,
		"Name":    input.Name,
		"TaxId":   input.TaxId,
		"Email":   input.Email,
		"Street":  input.Street,
		"Number":  input.Number,
		"Comment": input.Comment,
		"Zipcode": input.Zipcode,
		"City":    input.City,
		"State":   input.State,
		"Country": input.Country,
	}).Error
	if err != nil {
		return nil, err
	}

	return address, nil
}

func DeleteAddress(ctx context.Context, id string) (*Address, error) {
	address, err := fetchOwned[Address](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()

	// check if address is used
	var count int64
	if err := db.WithContext(ctx).Model(&Invoice{}).
		Where("address_id = ? OR client_address_id = ?", id, id).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("used by invoice")
	}

	// db action
	if err := db.WithContext(ctx).Delete(address).Error; err != nil {
		return nil, err
	}

	return address, nil
}

func GetAddress(ctx context.Context, id string) (*Address, error) {
	return fetchOwned[Address](ctx, id)
}

type AddressConnection struct {
	Edges    []Edge[Address]
	PageInfo *PageInfo
}

func GetAddresses(ctx context.Context, addressType *AddressType, limit *int, after *string) (*AddressConnection, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Where("user_id = ?", userId)
	if addressType != nil {
		dbCtx = dbCtx.Where("type = ?", *addressType)
	}

	edges, pageInfo, err := FetchPage[Address](dbCtx, pageLimit(limit), after)
	if err != nil {
		return nil, err
	}
	return &AddressConnection{Edges: edges, PageInfo: pageInfo}, nil
}
