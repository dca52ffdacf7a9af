package review

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
	if principal.Role == domain.RoleLearner {
		return query.Eq("learner_id", principal.UserID)
	}
	return nil
}

func (s *Service) List(ctx context.Context, principal domain.Principal, params map[string]string, opts query.Options) ([]Review, query.Meta, error) {
	pred := query.Build(params, Filter, scopeFor(principal))
	pg := query.Calculate(opts, sortable, defaultSort)

	reviews, total, err := s.repo.List(ctx, pred, pg)
	if err != nil {
		return nil, query.Meta{}, err
	}

	return reviews, pg.NewMeta(total), nil
}

func (s *Service) GetOne(ctx context.Context, id string) (*Review, error) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, autherror.NotFound("review not found")
	}
	return review, nil
}

func (s *Service) Create(ctx context.Context, principal domain.Principal, input CreateInput) (*Review, error) {
	if input.SessionID == "" || input.TeacherID == "" {
		return nil, autherror.Validation("sessionId and teacherId are required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, autherror.Validation("rating must be between 1 and 5")
	}

	now := time.Now()
	review := &Review{
		ID:        uuid.New().String(),
		SessionID: input.SessionID,
		LearnerID: principal.UserID,
		TeacherID: input.TeacherID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Service) Update(ctx context.Context, principal domain.Principal, id string, input UpdateInput) (*Review, error) {
	review, err := s.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if principal.Role == domain.RoleLearner && review.LearnerID != principal.UserID {
		return nil, autherror.ErrForbidden
	}

	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			return nil, autherror.Validation("rating must be between 1 and 5")
		}
		review.Rating = input.Rating
	}
	if input.Comment != "" {
		review.Comment = input.Comment
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *Service) Delete(ctx context.Context, principal domain.Principal, id string) error {
	review, err := s.GetOne(ctx, id)
	if err != nil {
		return err
	}
	if principal.Role == domain.RoleLearner && review.LearnerID != principal.UserID {
		return autherror.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}
