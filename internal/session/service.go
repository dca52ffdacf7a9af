package session

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

// scopeFor pins learners and teachers to their side of the booking; admins
// see all sessions.
func scopeFor(principal domain.Principal) query.Predicate {
	switch principal.Role {
	case domain.RoleLearner:
		return query.Eq("learner_id", principal.UserID)
	case domain.RoleTeacher:
		return query.Eq("teacher_id", principal.UserID)
	default:
		return nil
	}
}

func (s *Service) List(ctx context.Context, principal domain.Principal, params map[string]string, opts query.Options) ([]Session, query.Meta, error) {
	pred := query.Build(params, Filter, scopeFor(principal))
	pg := query.Calculate(opts, sortable, defaultSort)

	sessions, total, err := s.repo.List(ctx, pred, pg)
	if err != nil {
		return nil, query.Meta{}, err
	}

	return sessions, pg.NewMeta(total), nil
}

func (s *Service) GetOne(ctx context.Context, id string) (*Session, error) {
	session, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, autherror.NotFound("session not found")
	}
	return session, nil
}

// Create books a session for the calling learner. The skill must exist and
// the teacher must not already have a session on that date.
func (s *Service) Create(ctx context.Context, principal domain.Principal, input CreateInput) (*Session, error) {
	if input.SkillID == "" || input.TeacherID == "" || input.Date == "" {
		return nil, autherror.Validation("skillId, teacherId and date are required")
	}

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		return nil, autherror.Validation("date must be an RFC 3339 timestamp")
	}

	exists, err := s.repo.SkillExists(ctx, input.SkillID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, autherror.Validation("invalid skillId: skill does not exist")
	}

	booked, err := s.repo.TeacherBookedOn(ctx, input.TeacherID, date)
	if err != nil {
		return nil, err
	}
	if booked {
		return nil, autherror.Conflict("a session already exists for this teacher on this date")
	}

	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		SkillID:   input.SkillID,
		TeacherID: input.TeacherID,
		LearnerID: principal.UserID,
		Date:      date,
		Status:    StatusPending,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) Update(ctx context.Context, principal domain.Principal, id string, input UpdateInput) (*Session, error) {
	session, err := s.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(principal, session) {
		return nil, autherror.ErrForbidden
	}

	if input.Status != "" {
		session.Status = input.Status
	}
	if input.Notes != "" {
		session.Notes = input.Notes
	}

	if err := s.repo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *Service) Delete(ctx context.Context, principal domain.Principal, id string) error {
	session, err := s.GetOne(ctx, id)
	if err != nil {
		return err
	}
	if !canModify(principal, session) {
		return autherror.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

func canModify(principal domain.Principal, session *Session) bool {
	switch principal.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleTeacher:
		return session.TeacherID == principal.UserID
	case domain.RoleLearner:
		return session.LearnerID == principal.UserID
	default:
		return false
	}
}
