package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
	"github.com/md-ali-0/skillsync-server/internal/query"
	"github.com/md-ali-0/skillsync-server/internal/session"
)

var sessionColumns = []string{
	"id", "skill_id", "teacher_id", "learner_id", "date", "status", "notes", "created_at", "updated_at",
}

func sessionRow(s session.Session) *pgxmock.Rows {
	return pgxmock.NewRows(sessionColumns).
		AddRow(s.ID, s.SkillID, s.TeacherID, s.LearnerID, s.Date, s.Status, s.Notes,
			s.CreatedAt, s.UpdatedAt)
}

func sampleSession(learnerID, teacherID string) session.Session {
	now := time.Now()
	return session.Session{
		ID:        "session-123",
		SkillID:   "skill-123",
		TeacherID: teacherID,
		LearnerID: learnerID,
		Date:      now.Add(48 * time.Hour),
		Status:    session.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func newSessionService(t *testing.T) (*session.Service, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return session.NewService(session.NewPostgresRepository(mock)), mock
}

func TestSessionService_Create(t *testing.T) {
	learner := domain.Principal{UserID: "learner-1", Role: domain.RoleLearner}
	date := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	validInput := session.CreateInput{
		SkillID:   "skill-123",
		TeacherID: "teacher-1",
		Date:      date.Format(time.RFC3339),
	}

	t.Run("success", func(t *testing.T) {
		s, mock := newSessionService(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(validInput.SkillID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(validInput.TeacherID, date).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectExec("INSERT INTO sessions").
			WithArgs(pgxmock.AnyArg(), validInput.SkillID, validInput.TeacherID, learner.UserID,
				date, session.StatusPending, "", pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		created, err := s.Create(context.Background(), learner, validInput)

		require.NoError(t, err)
		assert.Equal(t, learner.UserID, created.LearnerID)
		assert.Equal(t, session.StatusPending, created.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing fields", func(t *testing.T) {
		s, _ := newSessionService(t)

		created, err := s.Create(context.Background(), learner, session.CreateInput{SkillID: "skill-123"})

		assert.Nil(t, created)
		var appErr *autherror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})

	t.Run("unparseable date", func(t *testing.T) {
		s, _ := newSessionService(t)

		input := validInput
		input.Date = "next tuesday"

		created, err := s.Create(context.Background(), learner, input)

		assert.Nil(t, created)
		var appErr *autherror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})

	t.Run("unknown skill", func(t *testing.T) {
		s, mock := newSessionService(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(validInput.SkillID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

		created, err := s.Create(context.Background(), learner, validInput)

		assert.Nil(t, created)
		var appErr *autherror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Status)
	})

	t.Run("teacher already booked", func(t *testing.T) {
		s, mock := newSessionService(t)

		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(validInput.SkillID).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(validInput.TeacherID, date).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		created, err := s.Create(context.Background(), learner, validInput)

		assert.Nil(t, created)
		var appErr *autherror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Status)
	})
}

func TestSessionService_List_ScopedByRole(t *testing.T) {
	item := sampleSession("learner-1", "teacher-1")

	tests := []struct {
		name      string
		principal domain.Principal
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "learner sees own bookings",
			principal: domain.Principal{UserID: "learner-1", Role: domain.RoleLearner},
			wantWhere: `FROM sessions WHERE learner_id = \$1`,
			wantArgs:  []any{"learner-1"},
		},
		{
			name:      "teacher sees own bookings",
			principal: domain.Principal{UserID: "teacher-1", Role: domain.RoleTeacher},
			wantWhere: `FROM sessions WHERE teacher_id = \$1`,
			wantArgs:  []any{"teacher-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newSessionService(t)

			mock.ExpectQuery(tt.wantWhere).
				WithArgs(append(tt.wantArgs, 10, 0)...).
				WillReturnRows(sessionRow(item))
			mock.ExpectQuery(`SELECT COUNT\(\*\) FROM sessions`).
				WithArgs(tt.wantArgs...).
				WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

			sessions, _, err := s.List(context.Background(), tt.principal, nil, query.Options{})

			require.NoError(t, err)
			require.Len(t, sessions, 1)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionService_Update_Authorization(t *testing.T) {
	item := sampleSession("learner-1", "teacher-1")

	tests := []struct {
		name      string
		principal domain.Principal
		allowed   bool
	}{
		{"admin", domain.Principal{UserID: "admin-1", Role: domain.RoleAdmin}, true},
		{"owning teacher", domain.Principal{UserID: "teacher-1", Role: domain.RoleTeacher}, true},
		{"owning learner", domain.Principal{UserID: "learner-1", Role: domain.RoleLearner}, true},
		{"other teacher", domain.Principal{UserID: "teacher-2", Role: domain.RoleTeacher}, false},
		{"other learner", domain.Principal{UserID: "learner-2", Role: domain.RoleLearner}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newSessionService(t)

			mock.ExpectQuery("FROM sessions WHERE id").
				WithArgs(item.ID).
				WillReturnRows(sessionRow(item))
			if tt.allowed {
				mock.ExpectExec("UPDATE sessions SET").
					WithArgs(session.StatusConfirmed, item.Notes, item.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			}

			updated, err := s.Update(context.Background(), tt.principal, item.ID, session.UpdateInput{
				Status: session.StatusConfirmed,
			})

			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, session.StatusConfirmed, updated.Status)
			} else {
				assert.Equal(t, autherror.ErrForbidden, err)
				assert.Nil(t, updated)
			}
		})
	}
}
