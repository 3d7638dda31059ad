package api

import (
	"github.com/coursehub/forumtree/shared/domain"
)

// Request DTOs

// CreateThreadRequest creates a root thread, or a reply when ParentId is set.
// Roots need a title; replies may leave it empty.
type CreateThreadRequest struct {
	ForumId  domain.ForumId   `json:"forumId" validate:"required"`
	ParentId *domain.ThreadId `json:"parentId,omitempty"`
	Title    string           `json:"title" validate:"required_without=ParentId,max=200"`
	Body     string           `json:"body" validate:"required,max=20000"`
	AuthorId domain.UserId    `json:"authorId" validate:"required"`
}

// Response DTOs

// CreateThreadResponse may come back without an id from older backends.
type CreateThreadResponse struct {
	Id      domain.ThreadId `json:"id,omitempty"`
	Message string          `json:"message,omitempty"`
}
