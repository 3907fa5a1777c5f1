package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/jirajara/invoices_backend/models"
	"gorm.io/gorm"
)

type userReader struct {
	db *gorm.DB
}

func (r *userReader) getUsers(ctx context.Context, ids []string) []*dataloader.Result[*models.User] {
	var results []models.User
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&results).Error
	if err != nil {
		return handleError[*models.User](len(ids), err)
	}

	// never hand password hashes to resolvers
	for i := range results {
		results[i].PrepareGive()
	}

	return generateLoaderResults(results, ids)
}

func GetUser(ctx context.Context, id string) (*models.User, error) {
	loaders := For(ctx)
	return loaders.userLoader.Load(ctx, id)()
}
