package session

import (
	"time"

	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

type Session struct {
	ID        string    `json:"id"`
	SkillID   string    `json:"skillId"`
	TeacherID string    `json:"teacherId"`
	LearnerID string    `json:"learnerId"`
	Date      time.Time `json:"date"`
	Status    Status    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	SkillID   string `json:"skillId"`
	TeacherID string `json:"teacherId"`
	Date      string `json:"date"`
	Notes     string `json:"notes"`
}

type UpdateInput struct {
	Status Status `json:"status"`
	Notes  string `json:"notes"`
}

var Filter = query.EntityFilter{
	Filterable: map[string]string{
		"skillId":   "skill_id",
		"teacherId": "teacher_id",
		"learnerId": "learner_id",
		"status":    "status",
	},
	Searchable: []string{"notes"},
}

var sortable = map[string]string{
	"date":      "date",
	"status":    "status",
	"createdAt": "created_at",
}

const defaultSort = "created_at DESC"
