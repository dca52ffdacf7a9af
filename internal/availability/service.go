package availability

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

func scopeFor(principal domain.Principal) query.Predicate {
	if principal.Role == domain.RoleTeacher {
		return query.Eq("teacher_id", principal.UserID)
	}
	return nil
}

func (s *Service) List(ctx context.Context, principal domain.Principal, params map[string]string, opts query.Options) ([]Availability, query.Meta, error) {
	pred := query.Build(params, Filter, scopeFor(principal))
	pg := query.Calculate(opts, sortable, defaultSort)

	slots, total, err := s.repo.List(ctx, pred, pg)
	if err != nil {
		return nil, query.Meta{}, err
	}

	return slots, pg.NewMeta(total), nil
}

func (s *Service) GetOne(ctx context.Context, id string) (*Availability, error) {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slot == nil {
		return nil, autherror.NotFound("availability slot not found")
	}
	return slot, nil
}

func (s *Service) Create(ctx context.Context, principal domain.Principal, input UpsertInput) (*Availability, error) {
	if input.DayOfWeek == "" || input.StartTime == "" || input.EndTime == "" {
		return nil, autherror.Validation("dayOfWeek, startTime and endTime are required")
	}

	now := time.Now()
	slot := &Availability{
		ID:        uuid.New().String(),
		TeacherID: principal.UserID,
		DayOfWeek: input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) Update(ctx context.Context, principal domain.Principal, id string, input UpsertInput) (*Availability, error) {
	slot, err := s.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.Role == domain.RoleTeacher && slot.TeacherID != principal.UserID {
		return nil, autherror.ErrForbidden
	}

	if input.DayOfWeek != "" {
		slot.DayOfWeek = input.DayOfWeek
	}
	if input.StartTime != "" {
		slot.StartTime = input.StartTime
	}
	if input.EndTime != "" {
		slot.EndTime = input.EndTime
	}

	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *Service) Delete(ctx context.Context, principal domain.Principal, id string) error {
	slot, err := s.GetOne(ctx, id)
	if err != nil {
		return err
	}
	if principal.Role == domain.RoleTeacher && slot.TeacherID != principal.UserID {
		return autherror.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
