package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/md-ali-0/skillsync-server/db"
	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Repository interface {
	List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]Session, int, error)
	GetByID(ctx context.Context, id string) (*Session, error)
	Create(ctx context.Context, s *Session) error
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	SkillExists(ctx context.Context, skillID string) (bool, error)
	TeacherBookedOn(ctx context.Context, teacherID string, date time.Time) (bool, error)
}

type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(db db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, skill_id, teacher_id, learner_id, date, status, notes, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]Session, int, error) {
	where, args := query.Where(pred)

	sql := fmt.Sprintf(`SELECT %s FROM sessions%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		columns, where, pg.OrderBy, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, sql, append(args, pg.Limit, pg.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]Session, 0, pg.Limit)
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.SkillID, &s.TeacherID, &s.LearnerID, &s.Date,
			&s.Status, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countWhere, countArgs := query.Where(pred)
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM sessions`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	return sessions, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Session, error) {
	var s Session
	err := r.db.QueryRow(ctx, `SELECT `+columns+` FROM sessions WHERE id = $1`, id).
		Scan(&s.ID, &s.SkillID, &s.TeacherID, &s.LearnerID, &s.Date, &s.Status,
			&s.Notes, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *Session) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO sessions (id, skill_id, teacher_id, learner_id, date, status, notes, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, s.ID, s.SkillID, s.TeacherID, s.LearnerID, s.Date, s.Status, s.Notes, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, s *Session) error {
	_, err := r.db.Exec(ctx, `
        UPDATE sessions SET status = $1, notes = $2, updated_at = now() WHERE id = $3
    `, s.Status, s.Notes, s.ID)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) SkillExists(ctx context.Context, skillID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM skills WHERE id = $1)`, skillID).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) TeacherBookedOn(ctx context.Context, teacherID string, date time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM sessions WHERE teacher_id = $1 AND date = $2)`,
		teacherID, date).Scan(&exists)
	return exists, err
}
