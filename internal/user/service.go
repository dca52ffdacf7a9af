package user

import (
	"context"

	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
	"github.com/md-ali-0/skillsync-server/internal/auth/dto"
	"github.com/md-ali-0/skillsync-server/internal/auth/service"
	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, params map[string]string, opts query.Options) ([]dto.UserOutput, query.Meta, error) {
	return s.list(ctx, params, opts, nil)
}

// ListTeachers is the public teacher directory: the role predicate is
// pinned server-side, whatever the request says.
func (s *Service) ListTeachers(ctx context.Context, params map[string]string, opts query.Options) ([]dto.UserOutput, query.Meta, error) {
	delete(params, "role")
	return s.list(ctx, params, opts, query.Eq("role", string(domain.RoleTeacher)))
}

func (s *Service) list(ctx context.Context, params map[string]string, opts query.Options, scope query.Predicate) ([]dto.UserOutput, query.Meta, error) {
	pred := query.Build(params, Filter, scope)
	pg := query.Calculate(opts, sortable, defaultSort)

	users, total, err := s.repo.List(ctx, pred, pg)
	if err != nil {
		return nil, query.Meta{}, err
	}

	out := make([]dto.UserOutput, 0, len(users))
	for i := range users {
		out = append(out, service.ToUserOutput(&users[i]))
	}

	return out, pg.NewMeta(total), nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	out := service.ToUserOutput(user)
	return &out, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*dto.UserOutput, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if err := s.repo.UpdateProfile(ctx, userID, input.Name, input.Avatar); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *Service) ChangeStatus(ctx context.Context, userID string, input ChangeStatusInput) (*dto.UserOutput, error) {
	status := domain.UserStatus(input.Status)
	if status != domain.StatusActive && status != domain.StatusSuspend {
		return nil, autherror.Validation("status must be ACTIVE or SUSPEND")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if err := s.repo.ChangeStatus(ctx, userID, status); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}
	return s.repo.SoftDelete(ctx, userID)
}
