package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/coursehub/forumtree/shared/api"
	"github.com/coursehub/forumtree/shared/domain"
	mw "github.com/coursehub/forumtree/shared/middleware"
	"github.com/coursehub/forumtree/shared/utils"
	"github.com/go-chi/chi/v5"
)

// ThreadPostHandler creates a root thread, or a reply when the form carries
// parent_id, and redirects back to the forum.
func (h *Handler) ThreadPostHandler(w http.ResponseWriter, r *http.Request) {
	forumId := chi.URLParam(r, "forumId")
	targetURL := "/forums/" + url.PathEscape(forumId)

	sess := mw.GetSessionFromContext(r)
	if sess == nil {
		http.Error(w, "Please sign-in", http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, targetURL, "Invalid form data")
		return
	}

	req := api.CreateThreadRequest{
		ForumId:  domain.ForumId(forumId),
		Title:    strings.TrimSpace(r.PostFormValue("title")),
		Body:     strings.TrimSpace(r.PostFormValue("body")),
		AuthorId: sess.UserId,
	}
	if parent := strings.TrimSpace(r.PostFormValue("parent_id")); parent != "" {
		parentId := domain.ThreadId(parent)
		req.ParentId = &parentId
		if req.Title == "" {
			req.Title = "RE: " + parent
		}
	}

	if err := utils.Validate(req); err != nil {
		h.logger().Debug("thread form rejected", "forum_id", forumId, "error", err)
		redirectWithError(w, r, targetURL, "A title and a message are required.")
		return
	}

	id, err := h.APIClient.CreateThread(r.Context(), sess, req)
	if err != nil {
		h.logger().Error("cannot create thread", "forum_id", forumId, "error", err)
		redirectWithError(w, r, targetURL, fmt.Sprintf("Could not post: %s", err.Error()))
		return
	}

	if id != "" {
		targetURL += "#thread-" + url.PathEscape(id.String())
	}
	redirectWithSuccess(w, r, targetURL, "Posted.")
}
