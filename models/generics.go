package models

import (
	"context"
	"errors"

	"github.com/jirajara/invoices_backend/utils"
)

const defaultPageLimit = 25
const maxPageLimit = 100

func pageLimit(limit *int) int {
	if limit == nil || *limit <= 0 {
		return defaultPageLimit
	}
	if *limit > maxPageLimit {
		return maxPageLimit
	}
	return *limit
}

// fetch a row by id, enforcing the owner check.
// Admins may fetch any owner's row.
// (may return RecordNotFound error)
func fetchOwned[T any](ctx context.Context, id string, associations ...string) (*T, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}

	if isAdmin, _ := utils.GetIsAdminFromContext(ctx); isAdmin {
		return utils.FetchSingleModel[T](ctx, id, associations...)
	}
	return utils.FetchModel[T](ctx, userId, id, associations...)
}

// GetResource reads a row through the redis cache, falling back to the db.
// Cached rows still go through the owner check.
func GetResource[T Resource](ctx context.Context, id string, associations ...string) (*T, error) {

	// find in redis
	result, err := utils.RetrieveRedis[T](id)
	if err != nil {
		return nil, err
	}
	// if not found in redis
	if result == nil {
		// fetch from db
		result, err = fetchOwned[T](ctx, id, associations...)
		if err != nil {
			return nil, err
		}

		// store in redis
		if err := utils.StoreRedis[T](result, id); err != nil {
			return nil, err
		}
	} else if !CanAccess(ctx, (*result).GetUserId()) {
		return nil, utils.ErrorUnauthorized
	}

	return result, nil
}

// clear the cached copy after a write
func clearResourceCache[T any](id string) error {
	return utils.RemoveRedisItem[T](id)
}
