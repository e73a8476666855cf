package request

import (
	"strings"

	"dropengine/internal/domain/drop"
)

type ClaimRequest struct {
	UserID string `json:"userId" binding:"required,max=64"`
	Handle string `json:"handle" binding:"required,max=128"`
}

func (r *ClaimRequest) Normalize() (string, drop.Handle) {
	return strings.TrimSpace(r.UserID), drop.Handle(strings.TrimSpace(r.Handle))
}

type HistoryQuery struct {
	Page int `form:"page" binding:"omitempty,min=1"`
}

func (q *HistoryQuery) PageOrDefault() int {
	if q.Page < 1 {
		return 1
	}
	return q.Page
}
