package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
	repo "github.com/md-ali-0/skillsync-server/internal/auth/repository/postgres"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "avatar",
	"role", "status", "is_deleted", "created_at", "updated_at",
}

func userRow(u *domain.User) *pgxmock.Rows {
	return pgxmock.NewRows(userColumns).
		AddRow(u.ID, u.Name, u.Email, u.PasswordHash, u.Avatar,
			u.Role, u.Status, u.IsDeleted, u.CreatedAt, u.UpdatedAt)
}

func sampleUser() *domain.User {
	now := time.Now()
	return &domain.User{
		ID:           "user-123",
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hash",
		Role:         domain.RoleLearner,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	expected := sampleUser()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(expected.Email).
			WillReturnRows(userRow(expected))

		user, err := r.GetByEmail(ctx, expected.Email)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, expected.ID, user.ID)
		assert.Equal(t, expected.Role, user.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs("nobody@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(expected.Email).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, expected.Email)
		assert.Error(t, err)
	})
}

func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	expected := sampleUser()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs(expected.ID).
			WillReturnRows(userRow(expected))

		user, err := r.GetByID(ctx, expected.ID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, expected.Email, user.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email").
			WithArgs("missing-id").
			WillReturnError(pgx.ErrNoRows)

		user, err := r.GetByID(ctx, "missing-id")
		require.NoError(t, err)
		assert.Nil(t, user)
	})
}

func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	user := sampleUser()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar,
				user.Role, user.Status, user.IsDeleted, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		err := r.Create(ctx, user)
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar,
				user.Role, user.Status, user.IsDeleted, user.CreatedAt, user.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, user)
		assert.Error(t, err)
	})
}

func TestUpdatePassword(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs("new-hash", "user-123").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := r.UpdatePassword(ctx, "user-123", "new-hash")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET password_hash").
			WithArgs("new-hash", "user-123").
			WillReturnError(fmt.Errorf("db error"))

		err := r.UpdatePassword(ctx, "user-123", "new-hash")
		assert.Error(t, err)
	})
}

func TestCreateVendorWithShop(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	user := sampleUser()
	user.Role = domain.RoleVendor
	vendor := &domain.Vendor{ID: "vendor-123", UserID: user.ID, CreatedAt: now, UpdatedAt: now}
	shop := &domain.Shop{
		ID:        "shop-123",
		VendorID:  vendor.ID,
		Name:      "Vendor Shop",
		Status:    domain.ShopActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("commits all three inserts", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewPostgresRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar,
				user.Role, user.Status, user.IsDeleted, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO vendors").
			WithArgs(vendor.ID, vendor.UserID, vendor.CreatedAt, vendor.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO shops").
			WithArgs(shop.ID, shop.VendorID, shop.Name, shop.Description, shop.LogoURL,
				shop.Status, shop.CreatedAt, shop.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()
		mock.ExpectRollback() // deferred rollback after commit is a no-op

		err = r.CreateVendorWithShop(ctx, user, vendor, shop)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when vendor insert fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewPostgresRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar,
				user.Role, user.Status, user.IsDeleted, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO vendors").
			WithArgs(vendor.ID, vendor.UserID, vendor.CreatedAt, vendor.UpdatedAt).
			WillReturnError(fmt.Errorf("unique violation"))
		mock.ExpectRollback()

		err = r.CreateVendorWithShop(ctx, user, vendor, shop)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when shop insert fails", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewPostgresRepository(mock)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").
			WithArgs(user.ID, user.Name, user.Email, user.PasswordHash, user.Avatar,
				user.Role, user.Status, user.IsDeleted, user.CreatedAt, user.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO vendors").
			WithArgs(vendor.ID, vendor.UserID, vendor.CreatedAt, vendor.UpdatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec("INSERT INTO shops").
			WithArgs(shop.ID, shop.VendorID, shop.Name, shop.Description, shop.LogoURL,
				shop.Status, shop.CreatedAt, shop.UpdatedAt).
			WillReturnError(fmt.Errorf("db error"))
		mock.ExpectRollback()

		err = r.CreateVendorWithShop(ctx, user, vendor, shop)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		r := repo.NewPostgresRepository(mock)

		mock.ExpectBegin().WillReturnError(fmt.Errorf("connection lost"))

		err = r.CreateVendorWithShop(ctx, user, vendor, shop)
		assert.Error(t, err)
	})
}
