package apiclient

import (
	"context"
	"net/http"

	"github.com/coursehub/forumtree/shared/domain"
	internal_errors "github.com/coursehub/forumtree/shared/errors"
	"github.com/coursehub/forumtree/shared/utils"
)

// GetCourses lists the courses visible to the session's user; the backend
// filters by the bearer token.
func (c *APIClient) GetCourses(ctx context.Context, sess *domain.Session) ([]domain.Course, error) {
	resp, err := c.do(ctx, sess, "courses", http.MethodGet, "/courses", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, internal_errors.BackendError(resp.StatusCode, "access to courses denied")
	case resp.StatusCode != http.StatusOK:
		return nil, internal_errors.BackendError(http.StatusBadGateway, "backend returned status %d for courses", resp.StatusCode)
	}

	var courses []domain.Course
	if err := utils.DecodeValidate(resp.Body, &courses); err != nil {
		return nil, internal_errors.BackendError(http.StatusBadGateway, "cannot decode courses response: %v", err)
	}
	return courses, nil
}
