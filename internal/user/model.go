package user

import "github.com/md-ali-0/skillsync-server/internal/query"

type UpdateProfileInput struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ChangeStatusInput struct {
	Status string `json:"status"`
}

// Filter for user listings. Soft-deleted records are excluded by the
// repository itself, not by request parameters.
var Filter = query.EntityFilter{
	Filterable: map[string]string{
		"role":   "role",
		"status": "status",
		"email":  "email",
	},
	Searchable: []string{"name", "email"},
}

var sortable = map[string]string{
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
}

const defaultSort = "created_at DESC"
