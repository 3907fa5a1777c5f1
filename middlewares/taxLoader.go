package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/jirajara/invoices_backend/models"
	"gorm.io/gorm"
)

type taxReader struct {
	db *gorm.DB
}

func (r *taxReader) getTaxes(ctx context.Context, ids []string) []*dataloader.Result[*models.Tax] {
	var results []models.Tax
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.Tax](len(ids), err)
	}

	return generateLoaderResults(results, ids)
}

func GetTax(ctx context.Context, id string) (*models.Tax, error) {
	loaders := For(ctx)
	return loaders.taxLoader.Load(ctx, id)()
}
