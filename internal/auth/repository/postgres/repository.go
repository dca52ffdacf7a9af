package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/md-ali-0/skillsync-server/db"
	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
)

type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(db db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, name, email, password_hash, avatar, role, status, is_deleted, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Avatar,
		&user.Role, &user.Status, &user.IsDeleted, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO users (id, name, email, password_hash, avatar, role, status, is_deleted, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar,
		user.Role, user.Status, user.IsDeleted, user.CreatedAt, user.UpdatedAt)

	return err
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, passwordHash, userID)

	return err
}

// CreateVendorWithShop writes credential, vendor profile and shop inside a
// single transaction. A failure at any step rolls the whole unit back, so
// concurrent requests never observe an orphan credential or profile.
func (r *PostgresRepository) CreateVendorWithShop(ctx context.Context, user *domain.User, vendor *domain.Vendor, shop *domain.Shop) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin vendor signup transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO users (id, name, email, password_hash, avatar, role, status, is_deleted, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar,
		user.Role, user.Status, user.IsDeleted, user.CreatedAt, user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vendor user: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO vendors (id, user_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4)
    `, vendor.ID, vendor.UserID, vendor.CreatedAt, vendor.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create vendor profile: %w", err)
	}

	_, err = tx.Exec(ctx, `
        INSERT INTO shops (id, vendor_id, name, description, logo_url, status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, shop.ID, shop.VendorID, shop.Name, shop.Description, shop.LogoURL,
		shop.Status, shop.CreatedAt, shop.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}

	return tx.Commit(ctx)
}
