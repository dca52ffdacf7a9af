package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/md-ali-0/skillsync-server/db"
	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Repository interface {
	List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]Review, int, error)
	GetByID(ctx context.Context, id string) (*Review, error)
	Create(ctx context.Context, rv *Review) error
	Update(ctx context.Context, rv *Review) error
	Delete(ctx context.Context, id string) error
}

type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(db db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, session_id, learner_id, teacher_id, rating, comment, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]Review, int, error) {
	where, args := query.Where(pred)

	sql := fmt.Sprintf(`SELECT %s FROM reviews%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		columns, where, pg.OrderBy, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, sql, append(args, pg.Limit, pg.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]Review, 0, pg.Limit)
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.SessionID, &rv.LearnerID, &rv.TeacherID,
			&rv.Rating, &rv.Comment, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countWhere, countArgs := query.Where(pred)
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reviews`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	return reviews, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Review, error) {
	var rv Review
	err := r.db.QueryRow(ctx, `SELECT `+columns+` FROM reviews WHERE id = $1`, id).
		Scan(&rv.ID, &rv.SessionID, &rv.LearnerID, &rv.TeacherID, &rv.Rating,
			&rv.Comment, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	return &rv, nil
}

func (r *PostgresRepository) Create(ctx context.Context, rv *Review) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO reviews (id, session_id, learner_id, teacher_id, rating, comment, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, rv.ID, rv.SessionID, rv.LearnerID, rv.TeacherID, rv.Rating, rv.Comment, rv.CreatedAt, rv.UpdatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, rv *Review) error {
	_, err := r.db.Exec(ctx, `
        UPDATE reviews SET rating = $1, comment = $2, updated_at = now() WHERE id = $3
    `, rv.Rating, rv.Comment, rv.ID)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}
