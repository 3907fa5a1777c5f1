package directives

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/jirajara/invoices_backend/config"
	"github.com/jirajara/invoices_backend/models"
	"github.com/jirajara/invoices_backend/utils"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"gorm.io/gorm"
)

// retrieve user from redis or db
func getUser(ctx context.Context, userId string) (*models.User, error) {
	var user models.User
	exists, err := config.GetRedisObject("User:"+userId, &user)
	if err != nil {
		return nil, err
	}

	if !exists {

		db := config.GetDB()
		if err := db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userId).Take(&user).Error; err != nil {
			return nil, err
		}

		tokenLifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
		if err != nil {
			tokenLifespan = 24
		}

		if err := config.SetRedisObject("User:"+user.ID, &user, time.Duration(tokenLifespan)*time.Hour); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

func Auth(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error) {

	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, &gqlerror.Error{
			Message: "Access Denied",
		}
	}

	user, err := getUser(ctx, userId)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// destroy current session if user has been deleted
			models.Logout(ctx)
		}
		return nil, &gqlerror.Error{
			Message: err.Error(),
		}
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, &gqlerror.Error{
			Message: "User is disabled",
		}
	}

	ctx = context.WithValue(ctx, utils.ContextKeyUserId, user.ID)
	ctx = context.WithValue(ctx, utils.ContextKeyUserName, user.Name)
	ctx = context.WithValue(ctx, utils.ContextKeyUserEmail, user.Email)
	ctx = utils.SetIsAdminInContext(ctx, user.IsAdmin())

	return next(ctx)
}
