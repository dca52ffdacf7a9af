package domain

import "context"

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	// CreateVendorWithShop persists the credential, vendor profile and shop
	// in one transaction; no partial state survives a failure.
	CreateVendorWithShop(ctx context.Context, user *User, vendor *Vendor, shop *Shop) error
}
