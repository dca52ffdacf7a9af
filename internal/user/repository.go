package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/md-ali-0/skillsync-server/db"
	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Repository interface {
	List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]domain.User, int, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id, name, avatar string) error
	ChangeStatus(ctx context.Context, id string, status domain.UserStatus) error
	SoftDelete(ctx context.Context, id string) error
}

type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(db db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, name, email, password_hash, avatar, role, status, is_deleted, created_at, updated_at`

// List always excludes soft-deleted records on top of the caller predicate.
func (r *PostgresRepository) List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]domain.User, int, error) {
	pred = query.And(pred, query.Eq("is_deleted", false))
	where, args := query.Where(pred)

	sql := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		columns, where, pg.OrderBy, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, sql, append(args, pg.Limit, pg.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0, pg.Limit)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Avatar,
			&u.Role, &u.Status, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countWhere, countArgs := query.Where(pred)
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	return users, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, `SELECT `+columns+` FROM users WHERE id = $1 AND is_deleted = false`, id).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Avatar,
			&u.Role, &u.Status, &u.IsDeleted, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id, name, avatar string) error {
	_, err := r.db.Exec(ctx, `
        UPDATE users SET name = COALESCE(NULLIF($1, ''), name),
                         avatar = COALESCE(NULLIF($2, ''), avatar),
                         updated_at = now()
        WHERE id = $3
    `, name, avatar, id)
	return err
}

func (r *PostgresRepository) ChangeStatus(ctx context.Context, id string, status domain.UserStatus) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET status = $1, updated_at = now() WHERE id = $2`, status, id)
	return err
}

func (r *PostgresRepository) SoftDelete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET is_deleted = true, updated_at = now() WHERE id = $1`, id)
	return err
}
