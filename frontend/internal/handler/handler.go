package handler

import (
	"context"
	"html/template"
	"log/slog"

	"github.com/coursehub/forumtree/frontend/internal/render"
	"github.com/coursehub/forumtree/shared/api"
	"github.com/coursehub/forumtree/shared/config"
	"github.com/coursehub/forumtree/shared/domain"
	"github.com/coursehub/forumtree/shared/logger"
	"github.com/coursehub/forumtree/shared/threadtree"
)

// BackendClient is the part of the course backend the pages need.
type BackendClient interface {
	GetThreads(ctx context.Context, sess *domain.Session, forumId domain.ForumId) ([]domain.ThreadRecord, error)
	GetForums(ctx context.Context, sess *domain.Session, courseId domain.CourseId) ([]domain.Forum, error)
	CreateThread(ctx context.Context, sess *domain.Session, data api.CreateThreadRequest) (domain.ThreadId, error)
	GetCourses(ctx context.Context, sess *domain.Session) ([]domain.Course, error)
	CreateForum(ctx context.Context, sess *domain.Session, data api.CreateForumRequest) (domain.ForumId, error)
}

type Handler struct {
	Templates   map[string]*template.Template
	Public      config.Public
	Renderer    *render.Renderer
	APIClient   BackendClient
	TreeOptions threadtree.Options
	log         *slog.Logger
}

func New(templates map[string]*template.Template, publicCfg config.Public, renderer *render.Renderer, apiClient BackendClient) *Handler {
	return &Handler{
		Templates:   templates,
		Public:      publicCfg,
		Renderer:    renderer,
		APIClient:   apiClient,
		TreeOptions: publicCfg.ThreadTree.Options(),
		log:         logger.Component("handler"),
	}
}

func (h *Handler) getTemplate(name string) (*template.Template, bool) {
	tmpl, ok := h.Templates[name]
	return tmpl, ok
}

func (h *Handler) logger() *slog.Logger {
	if h.log == nil {
		return logger.Log
	}
	return h.log
}
