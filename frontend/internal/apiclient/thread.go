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

// GetThreads fetches the flat thread list of a forum. Either every record
// decodes and validates, or an error is returned and no records.
func (c *APIClient) GetThreads(ctx context.Context, sess *domain.Session, forumId domain.ForumId) ([]domain.ThreadRecord, error) {
	path := "/threads?forumId=" + url.QueryEscape(forumId.String())
	resp, err := c.do(ctx, sess, "threads", http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, internal_errors.BackendError(http.StatusNotFound, "forum %s not found", forumId)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, internal_errors.BackendError(resp.StatusCode, "access to forum %s denied", forumId)
	case resp.StatusCode != http.StatusOK:
		return nil, internal_errors.BackendError(http.StatusBadGateway, "backend returned status %d for forum %s: %s", resp.StatusCode, forumId, readErrorBody(resp))
	}

	var records []domain.ThreadRecord
	if err := utils.DecodeValidate(resp.Body, &records); err != nil {
		return nil, internal_errors.BackendError(http.StatusBadGateway, "cannot decode threads response: %v", err)
	}
	if records == nil {
		records = []domain.ThreadRecord{}
	}
	return records, nil
}

// CreateThread posts a new root thread or reply and returns its id if the
// backend reports one.
func (c *APIClient) CreateThread(ctx context.Context, sess *domain.Session, data api.CreateThreadRequest) (domain.ThreadId, error) {
	jsonBody, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal thread data: %w", err)
	}

	resp, err := c.do(ctx, sess, "create_thread", http.MethodPost, "/threads", bytes.NewReader(jsonBody))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		status := resp.StatusCode
		if status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		return "", internal_errors.BackendError(status, "failed to create thread: %s", readErrorBody(resp))
	}

	var created api.CreateThreadResponse
	if err := utils.Decode(resp.Body, &created); err != nil {
		// Created anyway; the caller just cannot jump to it.
		return "", nil
	}
	return created.Id, nil
}
