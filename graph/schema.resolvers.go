package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"
	"errors"

	"github.com/jirajara/invoices_backend/middlewares"
	"github.com/jirajara/invoices_backend/models"
	"github.com/jirajara/invoices_backend/utils"
)

// Address is the resolver for the address field.
func (r *invoiceResolver) Address(ctx context.Context, obj *models.Invoice) (*models.Address, error) {
	return middlewares.GetAddress(ctx, obj.AddressId)
}

// ClientAddress is the resolver for the clientAddress field.
func (r *invoiceResolver) ClientAddress(ctx context.Context, obj *models.Invoice) (*models.Address, error) {
	return middlewares.GetAddress(ctx, obj.ClientAddressId)
}

// User is the resolver for the user field.
func (r *invoiceResolver) User(ctx context.Context, obj *models.Invoice) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.UserId)
}

// Discount is the resolver for the discount field.
func (r *invoiceResolver) Discount(ctx context.Context, obj *models.Invoice) (float64, error) {
	return models.GetInvoiceDiscount(ctx, obj.ID)
}

// Subtotal is the resolver for the subtotal field.
func (r *invoiceResolver) Subtotal(ctx context.Context, obj *models.Invoice) (float64, error) {
	return models.GetInvoiceSubtotal(ctx, obj.ID)
}

// TaxableAmount is the resolver for the taxableAmount field.
func (r *invoiceResolver) TaxableAmount(ctx context.Context, obj *models.Invoice) (float64, error) {
	return models.GetInvoiceTaxableAmount(ctx, obj.ID)
}

// NonTaxableAmount is the resolver for the nonTaxableAmount field.
func (r *invoiceResolver) NonTaxableAmount(ctx context.Context, obj *models.Invoice) (float64, error) {
	return models.GetInvoiceNonTaxableAmount(ctx, obj.ID)
}

// TaxAmount is the resolver for the taxAmount field.
func (r *invoiceResolver) TaxAmount(ctx context.Context, obj *models.Invoice) (float64, error) {
	return models.GetInvoiceTaxAmount(ctx, obj.ID)
}

// Total is the resolver for the total field.
func (r *invoiceResolver) Total(ctx context.Context, obj *models.Invoice) (float64, error) {
	return models.GetInvoiceTotal(ctx, obj.ID)
}

// Taxes is the resolver for the taxes field.
func (r *invoiceResolver) Taxes(ctx context.Context, obj *models.Invoice) ([]*models.InvoiceTaxEntry, error) {
	return models.GetInvoiceTaxes(ctx, obj.ID)
}

// Items is the resolver for the items field.
func (r *invoiceResolver) Items(ctx context.Context, obj *models.Invoice) ([]*models.InvoiceItem, error) {
	return models.GetInvoiceItems(ctx, obj.ID)
}

// Invoice is the resolver for the invoice field.
func (r *invoiceItemResolver) Invoice(ctx context.Context, obj *models.InvoiceItem) (*models.Invoice, error) {
	return middlewares.GetInvoice(ctx, obj.InvoiceId)
}

// Tax is the resolver for the tax field.
func (r *invoiceItemResolver) Tax(ctx context.Context, obj *models.InvoiceItem) (*models.Tax, error) {
	if obj.TaxId == nil || *obj.TaxId == "" {
		return nil, nil
	}
	return middlewares.GetTax(ctx, *obj.TaxId)
}

// SignUp is the resolver for the signUp field.
func (r *mutationResolver) SignUp(ctx context.Context, input models.NewUser) (*models.User, error) {
	return models.CreateUser(ctx, &input)
}

// SignIn is the resolver for the signIn field.
func (r *mutationResolver) SignIn(ctx context.Context, email string, password string) (*models.LoginInfo, error) {
	return models.Login(ctx, email, password)
}

// SignOut is the resolver for the signOut field.
func (r *mutationResolver) SignOut(ctx context.Context) (bool, error) {
	return models.Logout(ctx)
}

// FlushCache is the resolver for the flushCache field.
func (r *mutationResolver) FlushCache(ctx context.Context) (string, error) {
	return models.FlushCache(ctx)
}

// UpdateUser is the resolver for the updateUser field.
func (r *mutationResolver) UpdateUser(ctx context.Context, id string, input models.UpdateUserInput) (*models.User, error) {
	return models.UpdateUser(ctx, id, &input)
}

// DeleteUser is the resolver for the deleteUser field.
func (r *mutationResolver) DeleteUser(ctx context.Context, id string) (*models.User, error) {
	return models.DeleteUser(ctx, id)
}

// ChangePassword is the resolver for the changePassword field.
func (r *mutationResolver) ChangePassword(ctx context.Context, oldPassword string, newPassword string) (*models.User, error) {
	return models.ChangePassword(ctx, oldPassword, newPassword)
}

// CreateAddress is the resolver for the createAddress field.
func (r *mutationResolver) CreateAddress(ctx context.Context, input models.NewAddress) (*models.Address, error) {
	return models.CreateAddress(ctx, &input)
}

// UpdateAddress is the resolver for the updateAddress field.
func (r *mutationResolver) UpdateAddress(ctx context.Context, id string, input models.NewAddress) (*models.Address, error) {
	return models.UpdateAddress(ctx, id, &input)
}

// DeleteAddress is the resolver for the deleteAddress field.
func (r *mutationResolver) DeleteAddress(ctx context.Context, id string) (*models.Address, error) {
	return models.DeleteAddress(ctx, id)
}

// CreateTax is the resolver for the createTax field.
func (r *mutationResolver) CreateTax(ctx context.Context, input models.NewTax) (*models.Tax, error) {
	return models.CreateTax(ctx, &input)
}

// UpdateTax is the resolver for the updateTax field.
func (r *mutationResolver) UpdateTax(ctx context.Context, id string, input models.NewTax) (*models.Tax, error) {
	return models.UpdateTax(ctx, id, &input)
}

// DeleteTax is the resolver for the deleteTax field.
func (r *mutationResolver) DeleteTax(ctx context.Context, id string) (*models.Tax, error) {
	return models.DeleteTax(ctx, id)
}

// CreateInvoice is the resolver for the createInvoice field.
func (r *mutationResolver) CreateInvoice(ctx context.Context, input models.NewInvoice) (*models.Invoice, error) {
	return models.CreateInvoice(ctx, &input)
}

// UpdateInvoice is the resolver for the updateInvoice field.
func (r *mutationResolver) UpdateInvoice(ctx context.Context, id string, input models.NewInvoice) (*models.Invoice, error) {
	return models.UpdateInvoice(ctx, id, &input)
}

// DeleteInvoice is the resolver for the deleteInvoice field.
func (r *mutationResolver) DeleteInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	return models.DeleteInvoice(ctx, id)
}

// CreateInvoiceItem is the resolver for the createInvoiceItem field.
func (r *mutationResolver) CreateInvoiceItem(ctx context.Context, input models.NewInvoiceItem) (*models.InvoiceItem, error) {
	return models.CreateInvoiceItem(ctx, &input)
}

// UpdateInvoiceItem is the resolver for the updateInvoiceItem field.
func (r *mutationResolver) UpdateInvoiceItem(ctx context.Context, id string, input models.NewInvoiceItem) (*models.InvoiceItem, error) {
	return models.UpdateInvoiceItem(ctx, id, &input)
}

// DeleteInvoiceItem is the resolver for the deleteInvoiceItem field.
func (r *mutationResolver) DeleteInvoiceItem(ctx context.Context, id string) (*models.InvoiceItem, error) {
	return models.DeleteInvoiceItem(ctx, id)
}

// Me is the resolver for the me field.
func (r *queryResolver) Me(ctx context.Context) (*models.User, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok || userId == "" {
		return nil, errors.New("user id is required")
	}
	return models.GetUser(ctx, userId)
}

// User is the resolver for the user field.
func (r *queryResolver) User(ctx context.Context, id string) (*models.User, error) {
	return models.GetUser(ctx, id)
}

// Users is the resolver for the users field.
func (r *queryResolver) Users(ctx context.Context, name *string) ([]*models.User, error) {
	return models.GetUsers(ctx, name)
}

// Address is the resolver for the address field.
func (r *queryResolver) Address(ctx context.Context, id string) (*models.Address, error) {
	return models.GetAddress(ctx, id)
}

// Addresses is the resolver for the addresses field.
func (r *queryResolver) Addresses(ctx context.Context, typeArg *models.AddressType, limit *int, after *string) (*models.AddressConnection, error) {
	return models.GetAddresses(ctx, typeArg, limit, after)
}

// Tax is the resolver for the tax field.
func (r *queryResolver) Tax(ctx context.Context, id string) (*models.Tax, error) {
	return models.GetTax(ctx, id)
}

// Taxes is the resolver for the taxes field.
func (r *queryResolver) Taxes(ctx context.Context, name *string, limit *int, after *string) (*models.TaxConnection, error) {
	return models.GetTaxes(ctx, name, limit, after)
}

// Invoice is the resolver for the invoice field.
func (r *queryResolver) Invoice(ctx context.Context, id string) (*models.Invoice, error) {
	return models.GetInvoice(ctx, id)
}

// Invoices is the resolver for the invoices field.
func (r *queryResolver) Invoices(ctx context.Context, status *models.InvoiceStatus, typeArg *models.InvoiceType, limit *int, after *string) (*models.InvoiceConnection, error) {
	return models.GetInvoices(ctx, status, typeArg, limit, after)
}

// InvoiceItem is the resolver for the invoiceItem field.
func (r *queryResolver) InvoiceItem(ctx context.Context, id string) (*models.InvoiceItem, error) {
	return models.GetInvoiceItem(ctx, id)
}

// InvoiceItems is the resolver for the invoiceItems field.
func (r *queryResolver) InvoiceItems(ctx context.Context, invoiceID string, limit *int, after *string) (*models.InvoiceItemConnection, error) {
	return models.GetInvoiceItemsPage(ctx, invoiceID, limit, after)
}

// Invoice returns InvoiceResolver implementation.
func (r *Resolver) Invoice() InvoiceResolver { return &invoiceResolver{r} }

// InvoiceItem returns InvoiceItemResolver implementation.
func (r *Resolver) InvoiceItem() InvoiceItemResolver { return &invoiceItemResolver{r} }

// Mutation returns MutationResolver implementation.
func (r *Resolver) Mutation() MutationResolver { return &mutationResolver{r} }

// Query returns QueryResolver implementation.
func (r *Resolver) Query() QueryResolver { return &queryResolver{r} }

type invoiceResolver struct{ *Resolver }
type invoiceItemResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
