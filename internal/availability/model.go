package availability

import (
	"time"

	"github.com/md-ali-0/skillsync-server/internal/query"
)

type Availability struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacherId"`
	DayOfWeek string    `json:"dayOfWeek"`
	StartTime string    `json:"startTime"`
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UpsertInput struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

var Filter = query.EntityFilter{
	Filterable: map[string]string{
		"teacherId": "teacher_id",
		"dayOfWeek": "day_of_week",
	},
	Searchable: []string{"day_of_week"},
}

var sortable = map[string]string{
	"dayOfWeek": "day_of_week",
	"startTime": "start_time",
	"createdAt": "created_at",
}

const defaultSort = "created_at DESC"
