package skill

import (
	"time"

	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Skill struct {
	ID          string    `json:"id"`
	TeacherID   string    `json:"teacherId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Level       string    `json:"level"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

type UpdateInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       string `json:"level"`
}

// Filter declares which query parameters may reach SQL for this entity.
var Filter = query.EntityFilter{
	Filterable: map[string]string{
		"teacherId": "teacher_id",
		"level":     "level",
	},
	Searchable: []string{"name", "description"},
}

var sortable = map[string]string{
	"name":      "name",
	"level":     "level",
	"createdAt": "created_at",
}

const defaultSort = "created_at DESC"
