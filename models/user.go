package models

import (
	"context"
	"errors"
	"html"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jirajara/invoices_backend/config"
	"github.com/jirajara/invoices_backend/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	ID        string         `gorm:"primary_key;size:36" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name" binding:"required"`
	Email     string         `gorm:"size:100;not null;unique" json:"email" binding:"required"`
	Password  string         `gorm:"size:255;not null" json:"password"`
	Role      UserRole       `gorm:"size:10;not null;default:user" json:"role"`
	Country   string         `gorm:"size:2;not null" json:"country" binding:"required"`
	IsActive  *bool          `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (user *User) BeforeCreate(tx *gorm.DB) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	return nil
}

type NewUser struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Country  string   `json:"country" binding:"required"`
	Role     UserRole `json:"role"`
}

/*
caches:
	User:$id
	Token:$token
	Tokens:$id (set of live tokens per user)
*/

func (user User) removeInstanceRedis() error {
	return config.RemoveRedisKey("User:" + user.ID)
}

func (input *NewUser) validate() error {
	if len(strings.TrimSpace(input.Name)) < 3 {
		return errors.New("name must be at least 3 characters")
	}
	if !utils.IsValidEmail(input.Email) {
		return errors.New("invalid email address")
	}
	if len(input.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if len(input.Country) != 2 {
		return errors.New("country must be a 2-letter code")
	}
	return nil
}

type LoginInfo struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

func (result *User) PrepareGive() {
	result.Password = ""
}

func (user User) IsAdmin() bool {
	return user.Role == UserRoleAdmin
}

// owner check used by every resource operation
func CanAccess(ctx context.Context, ownerId string) bool {
	if isAdmin, ok := utils.GetIsAdminFromContext(ctx); ok && isAdmin {
		return true
	}
	userId, ok := utils.GetUserIdFromContext(ctx)
	return ok && userId != "" && userId == ownerId
}

// destroy current session
func Logout(ctx context.Context) (bool, error) {
	token, ok := utils.GetTokenFromContext(ctx)
	if !ok || token == "" {
		return false, errors.New("token is required")
	}
	if err := config.RemoveRedisKey("Token:" + token); err != nil {
		return false, err
	}
	// remove current token from tokens list
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return false, errors.New("user not found")
	}
	if err := config.RemoveRedisSetMember("Tokens:"+userId, token); err != nil {
		return false, err
	}
	return true, nil
}

// FlushCache wipes the whole redis instance: every session and every
// cached object. Admin-only escape hatch for cache poisoning incidents.
func FlushCache(ctx context.Context) (string, error) {
	isAdmin, _ := utils.GetIsAdminFromContext(ctx)
	if !isAdmin {
		return "", utils.ErrorUnauthorized
	}
	if err := config.ClearRedis(ctx); err != nil {
		return "Failed to clear redis", err
	}
	return "OK", nil
}

func Login(ctx context.Context, email string, password string) (*LoginInfo, error) {

	db := config.GetDB()
	email = strings.ToLower(strings.TrimSpace(email))

	user := User{}
	err := db.WithContext(ctx).Model(&User{}).Where("email = ?", email).Take(&user).Error
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	// check login credentials
	err = utils.ComparePassword(user.Password, password)
	if err != nil && err == bcrypt.ErrMismatchedHashAndPassword {
		return nil, errors.New("invalid email or password")
	}

	if user.IsActive != nil && !*user.IsActive {
		return nil, errors.New("user is disabled")
	}

	// generate token & response
	token := uuid.NewString()

	tokenLifespan, err := strconv.Atoi(os.Getenv("TOKEN_HOUR_LIFESPAN"))
	if err != nil {
		tokenLifespan = 24
	}

	// add new token to the user's tokens set
	if err := config.AddRedisSet("Tokens:"+user.ID, token); err != nil {
		return nil, err
	}
	if err := config.SetRedisValue("Token:"+token, user.ID, time.Duration(tokenLifespan)*time.Hour); err != nil {
		return nil, err
	}

	user.PrepareGive()
	return &LoginInfo{Token: token, User: &user}, nil
}

func CreateUser(ctx context.Context, input *NewUser) (*User, error) {

	db := config.GetDB()
	var count int64

	if err := input.validate(); err != nil {
		return nil, err
	}

	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	err := db.WithContext(ctx).Model(&User{}).Where("email = ?", input.Email).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("duplicate email")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = UserRoleUser
	}

	user := User{
		Name:     html.EscapeString(strings.TrimSpace(input.Name)),
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     role,
		Country:  strings.ToUpper(input.Country),
		IsActive: utils.NewTrue(),
	}

	err = db.WithContext(ctx).Create(&user).Error
	if err != nil {
		return nil, err
	}
	user.PrepareGive()
	return &user, nil
}

func GetUser(ctx context.Context, id string) (*User, error) {

	if !CanAccess(ctx, id) {
		return nil, utils.ErrorUnauthorized
	}

	db := config.GetDB()
	var result User

	err := db.WithContext(ctx).First(&result, "id = ?", id).Error
	if err != nil {
		return nil, utils.ErrorRecordNotFound
	}

	result.PrepareGive()

	return &result, nil
}

func GetUsers(ctx context.Context, name *string) ([]*User, error) {

	isAdmin, _ := utils.GetIsAdminFromContext(ctx)
	if !isAdmin {
		return nil, utils.ErrorUnauthorized
	}

	db := config.GetDB()
	var results []*User

	fieldNames, err := utils.GetQueryFields(ctx, &User{})
	if err != nil {
		return nil, err
	}

	dbCtx := db.WithContext(ctx)
	if name != nil && *name != "" {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%").Limit(config.SearchLimit)
	}
	if err := dbCtx.Select(fieldNames).Order("name").Find(&results).Error; err != nil {
		return nil, err
	}

	for _, u := range results {
		u.PrepareGive()
	}

	return results, nil
}

type UpdateUserInput struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Country *string `json:"country"`
}

func UpdateUser(ctx context.Context, id string, input *UpdateUserInput) (*User, error) {

	if !CanAccess(ctx, id) {
		return nil, utils.ErrorUnauthorized
	}

	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		if len(strings.TrimSpace(*input.Name)) < 3 {
			return nil, errors.New("name must be at least 3 characters")
		}
		updates["name"] = html.EscapeString(strings.TrimSpace(*input.Name))
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if !utils.IsValidEmail(email) {
			return nil, errors.New("invalid email address")
		}
		var count int64
		if err := db.WithContext(ctx).Model(&User{}).
			Where("email = ? AND NOT id = ?", email, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, errors.New("duplicate email")
		}
		updates["email"] = email
	}
	if input.Country != nil {
		if len(*input.Country) != 2 {
			return nil, errors.New("country must be a 2-letter code")
		}
		updates["country"] = strings.ToUpper(*input.Country)
	}

	if len(updates) > 0 {
		if err := db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	// clear cached copy so the directive reloads fresh data
	if err := user.removeInstanceRedis(); err != nil {
		return nil, err
	}

	user.PrepareGive()
	return &user, nil
}

func DeleteUser(ctx context.Context, id string) (*User, error) {

	if !CanAccess(ctx, id) {
		return nil, utils.ErrorUnauthorized
	}

	db := config.GetDB()
	var user User
	if err := db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, utils.ErrorRecordNotFound
	}

	if err := db.WithContext(ctx).Delete(&user).Error; err != nil {
		return nil, err
	}

	if err := user.removeInstanceRedis(); err != nil {
		return nil, err
	}
	if err := user.DestroyAllSessions(ctx); err != nil {
		return nil, err
	}

	user.PrepareGive()
	return &user, nil
}

func (user *User) DestroyAllSessions(ctx context.Context) error {
	allTokens, err := config.GetRedisSetMembers("Tokens:" + user.ID)
	if err != nil {
		return err
	}
	for _, token := range allTokens {
		if err := config.RemoveRedisKey("Token:" + token); err != nil {
			return err
		}
	}
	return config.RemoveRedisKey("Tokens:" + user.ID)
}

func ChangePassword(ctx context.Context, oldPassword string, newPassword string) (*User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	if len(newPassword) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	var user User
	db := config.GetDB()
	if err := db.WithContext(ctx).First(&user, "id = ?", userId).Error; err != nil {
		return nil, err
	}
	// check oldPassword
	if err := utils.ComparePassword(user.Password, oldPassword); err != nil {
		return nil, errors.New("old password is wrong")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	if err := db.WithContext(ctx).Model(&user).
		UpdateColumn("password", string(hashedPassword)).Error; err != nil {
		return nil, err
	}
	if err := user.removeInstanceRedis(); err != nil {
		return nil, err
	}

	// destroying all session tokens
	if err := user.DestroyAllSessions(ctx); err != nil {
		return nil, err
	}

	user.PrepareGive()
	return &user, nil
}
