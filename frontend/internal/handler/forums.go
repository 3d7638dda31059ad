package handler

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	frontend_domain "github.com/coursehub/forumtree/frontend/internal/domain"
	"github.com/coursehub/forumtree/shared/api"
	"github.com/coursehub/forumtree/shared/domain"
	mw "github.com/coursehub/forumtree/shared/middleware"
	"github.com/coursehub/forumtree/shared/utils"
	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"
)

const defaultForumCountWorkers = 4

// ForumsGetHandler lists the forums of a course with their thread counts.
// A forum whose threads cannot be fetched is still listed.
func (h *Handler) ForumsGetHandler(w http.ResponseWriter, r *http.Request) {
	courseId := domain.CourseId(chi.URLParam(r, "courseId"))
	sess := mw.GetSessionFromContext(r)
	data := frontend_domain.ForumsPageData{CourseId: courseId, CanCreateForum: sess.IsStaff()}

	forums, err := h.APIClient.GetForums(r.Context(), sess, courseId)
	if err != nil {
		h.logger().Error("cannot list forums", "course_id", courseId, "error", err)
		h.renderTemplateWithError(w, r, statusOf(err), "forums.html", data, err.Error())
		return
	}

	data.Forums = h.countThreads(r.Context(), sess, forums)
	h.renderTemplate(w, r, "forums.html", data)
}

func (h *Handler) countThreads(ctx context.Context, sess *domain.Session, forums []domain.Forum) []frontend_domain.ForumSummary {
	summaries := make([]frontend_domain.ForumSummary, len(forums))
	workers := h.Public.ForumCountWorkers
	if workers <= 0 {
		workers = defaultForumCountWorkers
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, f := range forums {
		summaries[i] = frontend_domain.ForumSummary{Forum: f, ThreadCount: -1}
		g.Go(func() error {
			records, err := h.APIClient.GetThreads(ctx, sess, f.Id)
			if err != nil {
				h.logger().Warn("cannot count threads", "forum_id", f.Id, "error", err)
				return nil
			}
			summaries[i].ThreadCount = len(records)
			return nil
		})
	}
	_ = g.Wait()
	return summaries
}

// ForumPostHandler creates a forum in a course. Only lecturers and admins
// may do so.
func (h *Handler) ForumPostHandler(w http.ResponseWriter, r *http.Request) {
	courseId := chi.URLParam(r, "courseId")
	targetURL := "/courses/" + url.PathEscape(courseId) + "/forums"

	sess := mw.GetSessionFromContext(r)
	if sess == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	if !sess.IsStaff() {
		h.logger().Warn("forum creation refused", "course_id", courseId, "user_id", sess.UserId, "role", sess.Role)
		http.Error(w, "Only lecturers and admins can create forums", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, targetURL, "Invalid form data")
		return
	}

	req := api.CreateForumRequest{
		CourseId: domain.CourseId(courseId),
		Name:     strings.TrimSpace(r.PostFormValue("name")),
	}
	if err := utils.Validate(req); err != nil {
		h.logger().Debug("forum form rejected", "course_id", courseId, "error", err)
		redirectWithError(w, r, targetURL, "A forum name of at most 100 characters is required.")
		return
	}

	if _, err := h.APIClient.CreateForum(r.Context(), sess, req); err != nil {
		h.logger().Error("cannot create forum", "course_id", courseId, "error", err)
		redirectWithError(w, r, targetURL, "Could not create forum: "+err.Error())
		return
	}
	redirectWithSuccess(w, r, targetURL, "Forum created.")
}
