package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/jirajara/invoices_backend/models"
	"gorm.io/gorm"
)

type addressReader struct {
	db *gorm.DB
}

func (r *addressReader) getAddresses(ctx context.Context, ids []string) []*dataloader.Result[*models.Address] {
	var results []models.Address
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Address](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetAddress(ctx context.Context, id string) (*models.Address, error) {
	loaders := For(ctx)
	return loaders.addressLoader.Load(ctx, id)()
}
