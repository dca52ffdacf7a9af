package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/md-ali-0/skillsync-server/db"
	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Repository interface {
	List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]Availability, int, error)
	GetByID(ctx context.Context, id string) (*Availability, error)
	Create(ctx context.Context, a *Availability) error
	Update(ctx context.Context, a *Availability) error
	Delete(ctx context.Context, id string) error
}

type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(db db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, teacher_id, day_of_week, start_time, end_time, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]Availability, int, error) {
	where, args := query.Where(pred)

	sql := fmt.Sprintf(`SELECT %s FROM availability%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		columns, where, pg.OrderBy, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, sql, append(args, pg.Limit, pg.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list availability: %w", err)
	}
	defer rows.Close()

	slots := make([]Availability, 0, pg.Limit)
	for rows.Next() {
		var a Availability
		if err := rows.Scan(&a.ID, &a.TeacherID, &a.DayOfWeek, &a.StartTime, &a.EndTime,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan availability: %w", err)
		}
		slots = append(slots, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countWhere, countArgs := query.Where(pred)
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM availability`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count availability: %w", err)
	}

	return slots, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Availability, error) {
	var a Availability
	err := r.db.QueryRow(ctx, `SELECT `+columns+` FROM availability WHERE id = $1`, id).
		Scan(&a.ID, &a.TeacherID, &a.DayOfWeek, &a.StartTime, &a.EndTime, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get availability: %w", err)
	}
	return &a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, a *Availability) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO availability (id, teacher_id, day_of_week, start_time, end_time, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, a.ID, a.TeacherID, a.DayOfWeek, a.StartTime, a.EndTime, a.CreatedAt, a.UpdatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, a *Availability) error {
	_, err := r.db.Exec(ctx, `
        UPDATE availability SET day_of_week = $1, start_time = $2, end_time = $3, updated_at = now()
        WHERE id = $4
    `, a.DayOfWeek, a.StartTime, a.EndTime, a.ID)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM availability WHERE id = $1`, id)
	return err
}
