package api

import (
	"github.com/coursehub/forumtree/shared/domain"
)

// CreateForumRequest is accepted by the backend from lecturers and admins only.
type CreateForumRequest struct {
	CourseId domain.CourseId `json:"courseId" validate:"required"`
	Name     string          `json:"name" validate:"required,max=100"`
}

type CreateForumResponse struct {
	Id      domain.ForumId `json:"id,omitempty"`
	Message string         `json:"message,omitempty"`
}
