package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/coursehub/forumtree/shared/api"
	"github.com/coursehub/forumtree/shared/domain"
	internal_errors "github.com/coursehub/forumtree/shared/errors"
	"github.com/coursehub/forumtree/shared/utils"
	json "github.com/goccy/go-json"
)

func (c *APIClient) GetForums(ctx context.Context, sess *domain.Session, courseId domain.CourseId) ([]domain.Forum, error) {
	path := "/forums?courseId=" + url.QueryEscape(courseId.String())
	resp, err := c.do(ctx, sess, "forums", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, internal_errors.BackendError(http.StatusNotFound, "course %s not found", courseId)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, internal_errors.BackendError(http.StatusBadGateway, "backend returned status %d for course %s", resp.StatusCode, courseId)
	}

	var forums []domain.Forum
	if err := utils.DecodeValidate(resp.Body, &forums); err != nil {
		return nil, internal_errors.BackendError(http.StatusBadGateway, "cannot decode forums response: %v", err)
	}
	return forums, nil
}

// CreateForum adds a forum to a course. The backend answers 403 unless the
// session belongs to a lecturer or admin.
func (c *APIClient) CreateForum(ctx context.Context, sess *domain.Session, data api.CreateForumRequest) (domain.ForumId, error) {
	jsonBody, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal forum data: %w", err)
	}

	resp, err := c.do(ctx, sess, "create_forum", http.MethodPost, "/forums", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		status := resp.StatusCode
		if status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		return "", internal_errors.BackendError(status, "failed to create forum: %s", readErrorBody(resp))
	}

	var created api.CreateForumResponse
	if err := utils.Decode(resp.Body, &created); err != nil {
		return "", nil
	}
	return created.Id, nil
}
