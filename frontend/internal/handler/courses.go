package handler

import (
	"net/http"

	frontend_domain "github.com/coursehub/forumtree/frontend/internal/domain"
	mw "github.com/coursehub/forumtree/shared/middleware"
)

// CoursesGetHandler lists the courses of the signed-in user, each linking to
// its forums.
func (h *Handler) CoursesGetHandler(w http.ResponseWriter, r *http.Request) {
	var data frontend_domain.CoursesPageData

	courses, err := h.APIClient.GetCourses(r.Context(), mw.GetSessionFromContext(r))
	if err != nil {
		h.logger().Error("cannot list courses", "error", err)
		h.renderTemplateWithError(w, r, statusOf(err), "courses.html", data, err.Error())
		return
	}
	data.Courses = courses
	h.renderTemplate(w, r, "courses.html", data)
}
