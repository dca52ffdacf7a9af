package skill

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/md-ali-0/skillsync-server/db"
	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Repository interface {
	List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]Skill, int, error)
	GetByID(ctx context.Context, id string) (*Skill, error)
	Create(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id string) error
}

type PostgresRepository struct {
	db db.DBTX
}

func NewPostgresRepository(db db.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const columns = `id, teacher_id, name, description, level, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context, pred query.Predicate, pg query.Pagination) ([]Skill, int, error) {
	where, args := query.Where(pred)

	sql := fmt.Sprintf(`SELECT %s FROM skills%s ORDER BY %s LIMIT $%d OFFSET $%d`,
		columns, where, pg.OrderBy, len(args)+1, len(args)+2)

	rows, err := r.db.Query(ctx, sql, append(args, pg.Limit, pg.Skip)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]Skill, 0, pg.Limit)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.TeacherID, &s.Name, &s.Description, &s.Level,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	countWhere, countArgs := query.Where(pred)
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills`+countWhere, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count skills: %w", err)
	}

	return skills, total, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Skill, error) {
	var s Skill
	err := r.db.QueryRow(ctx, `SELECT `+columns+` FROM skills WHERE id = $1`, id).
		Scan(&s.ID, &s.TeacherID, &s.Name, &s.Description, &s.Level, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) Create(ctx context.Context, s *Skill) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO skills (id, teacher_id, name, description, level, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, s.ID, s.TeacherID, s.Name, s.Description, s.Level, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *PostgresRepository) Update(ctx context.Context, s *Skill) error {
	_, err := r.db.Exec(ctx, `
        UPDATE skills SET name = $1, description = $2, level = $3, updated_at = now()
        WHERE id = $4
    `, s.Name, s.Description, s.Level, s.ID)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return err
}
