package handler

import (
	"context"
	"errors"
	"net/http"

	frontend_domain "github.com/coursehub/forumtree/frontend/internal/domain"
	"github.com/coursehub/forumtree/shared/domain"
	mw "github.com/coursehub/forumtree/shared/middleware"
	"github.com/coursehub/forumtree/shared/middleware/metrics"
	"github.com/coursehub/forumtree/shared/threadtree"
	"github.com/go-chi/chi/v5"
)

const (
	warnIncomplete  = "Some replies could not be shown because the discussion is nested too deeply."
	warnUnassembled = "This discussion could not be assembled from the data the course server returned."
	warnUnrendered  = "This discussion could not be displayed."
)

// loadForum fetches the thread records of a forum and turns them into a
// rendered fragment. Only fetch errors are returned; build and render
// problems degrade the page and set Warning.
func (h *Handler) loadForum(ctx context.Context, sess *domain.Session, forumId domain.ForumId) (frontend_domain.ForumPageData, error) {
	data := frontend_domain.ForumPageData{ForumId: forumId}

	records, err := h.APIClient.GetThreads(ctx, sess, forumId)
	if err != nil {
		return data, err
	}
	data.Total = len(records)

	forest, err := threadtree.Build(records, h.TreeOptions)
	if err != nil {
		metrics.BuildFailures.WithLabelValues(errorKind(err)).Inc()
		h.logger().Warn("forum forest incomplete", "forum_id", forumId, "records", len(records), "error", err)
		if errors.Is(err, threadtree.ErrDepthExceeded) {
			data.Warning = warnIncomplete
		} else {
			data.Warning = warnUnassembled
		}
	}
	for _, d := range forest.Dropped {
		metrics.DroppedRecords.WithLabelValues(string(d.Reason)).Inc()
		h.logger().Warn("thread record dropped", "forum_id", forumId, "thread_id", d.Record.Id.String(), "reason", string(d.Reason))
	}

	fragment, err := h.Renderer.RenderForest(forest.Roots)
	if err != nil {
		metrics.BuildFailures.WithLabelValues("render").Inc()
		h.logger().Error("cannot render forum", "forum_id", forumId, "error", err)
		data.Warning = warnUnrendered
		return data, nil
	}
	data.Fragment = fragment
	data.Shown = forest.Len()
	return data, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, threadtree.ErrDepthExceeded):
		return "depth_exceeded"
	case errors.Is(err, threadtree.ErrOrphan):
		return "orphan"
	case errors.Is(err, threadtree.ErrDuplicateId):
		return "duplicate_id"
	default:
		return "other"
	}
}

// ForumGetHandler renders the full forum page.
func (h *Handler) ForumGetHandler(w http.ResponseWriter, r *http.Request) {
	forumId := domain.ForumId(chi.URLParam(r, "forumId"))
	sess := mw.GetSessionFromContext(r)

	data, err := h.loadForum(r.Context(), sess, forumId)
	if err != nil {
		h.logger().Error("cannot load forum", "forum_id", forumId, "error", err)
		h.renderTemplateWithError(w, r, statusOf(err), "forum.html", data, err.Error())
		return
	}
	h.renderTemplate(w, r, "forum.html", data)
}

// ForumFragmentHandler returns only the rendered thread tree, for pages that
// embed a forum.
func (h *Handler) ForumFragmentHandler(w http.ResponseWriter, r *http.Request) {
	forumId := domain.ForumId(chi.URLParam(r, "forumId"))
	sess := mw.GetSessionFromContext(r)

	data, err := h.loadForum(r.Context(), sess, forumId)
	if err != nil {
		h.logger().Error("cannot load forum fragment", "forum_id", forumId, "error", err)
		http.Error(w, err.Error(), statusOf(err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if data.Warning != "" {
		w.Header().Set("X-Forum-Warning", data.Warning)
	}
	_, _ = w.Write([]byte(data.Fragment))
}
