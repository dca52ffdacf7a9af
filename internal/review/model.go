package review

import (
	"time"

	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Review struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	LearnerID string    `json:"learnerId"`
	TeacherID string    `json:"teacherId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	SessionID string `json:"sessionId"`
	TeacherID string `json:"teacherId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

type UpdateInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

var Filter = query.EntityFilter{
	Filterable: map[string]string{
		"sessionId": "session_id",
		"teacherId": "teacher_id",
		"learnerId": "learner_id",
		"rating":    "rating",
	},
	Searchable: []string{"comment"},
}

var sortable = map[string]string{
	"rating":    "rating",
	"createdAt": "created_at",
}

const defaultSort = "created_at DESC"
