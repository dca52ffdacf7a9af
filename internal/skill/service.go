package skill

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// scopeFor pins teachers to their own skills; other roles see everything.
func scopeFor(principal domain.Principal) query.Predicate {
	if principal.Role == domain.RoleTeacher {
		return query.Eq("teacher_id", principal.UserID)
	}
	return nil
}

func (s *Service) List(ctx context.Context, principal domain.Principal, params map[string]string, opts query.Options) ([]Skill, query.Meta, error) {
	pred := query.Build(params, Filter, scopeFor(principal))
	pg := query.Calculate(opts, sortable, defaultSort)

	skills, total, err := s.repo.List(ctx, pred, pg)
	if err != nil {
		return nil, query.Meta{}, err
	}

	return skills, pg.NewMeta(total), nil
}

func (s *Service) GetOne(ctx context.Context, id string) (*Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill == nil {
		return nil, autherror.NotFound("skill not found")
	}
	return skill, nil
}

func (s *Service) Create(ctx context.Context, principal domain.Principal, input CreateInput) (*Skill, error) {
	if input.Name == "" {
		return nil, autherror.Validation("skill name is required")
	}

	now := time.Now()
	skill := &Skill{
		ID:          uuid.New().String(),
		TeacherID:   principal.UserID,
		Name:        input.Name,
		Description: input.Description,
		Level:       input.Level,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *Service) Update(ctx context.Context, principal domain.Principal, id string, input UpdateInput) (*Skill, error) {
	skill, err := s.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.Role == domain.RoleTeacher && skill.TeacherID != principal.UserID {
		return nil, autherror.ErrForbidden
	}

	if input.Name != "" {
		skill.Name = input.Name
	}
	if input.Description != "" {
		skill.Description = input.Description
	}
	if input.Level != "" {
		skill.Level = input.Level
	}

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *Service) Delete(ctx context.Context, principal domain.Principal, id string) error {
	skill, err := s.GetOne(ctx, id)
	if err != nil {
		return err
	}
	if principal.Role == domain.RoleTeacher && skill.TeacherID != principal.UserID {
		return autherror.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
