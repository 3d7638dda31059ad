package apiclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coursehub/forumtree/shared/api"
	"github.com/coursehub/forumtree/shared/domain"
	internal_errors "github.com/coursehub/forumtree/shared/errors"
	mw "github.com/coursehub/forumtree/shared/middleware"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = &domain.Session{UserId: "u1", Role: domain.RoleStudent, Token: "tok-123"}

func newBackend(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", time.Second)
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	var e *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &e)
	return e.StatusCode
}

func TestGetThreads(t *testing.T) {
	t.Run("decodes mixed id types and headers", func(t *testing.T) {
		var gotReq *http.Request
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			gotReq = r
			io.WriteString(w, `[
				{"id": 1, "parentId": null, "title": "Intro", "body": "hello", "createdAt": "2024-02-01 10:00:00", "authorId": "a1"},
				{"id": "2", "parentId": 1, "title": "", "body": "reply", "createdAt": "2024-02-01T11:00:00Z", "authorId": "a2"}
			]`)
		})
		records, err := client.GetThreads(context.Background(), testSession, "forum 7")
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, "/threads", gotReq.URL.Path)
		assert.Equal(t, "forum 7", gotReq.URL.Query().Get("forumId"))
		assert.Equal(t, "Bearer tok-123", gotReq.Header.Get("Authorization"))
		assert.NotEmpty(t, gotReq.Header.Get(mw.RequestIdHeader))

		assert.Equal(t, domain.ThreadId("1"), records[0].Id)
		assert.True(t, records[0].IsRoot())
		require.NotNil(t, records[1].ParentId)
		assert.Equal(t, domain.ThreadId("1"), *records[1].ParentId)
		assert.Equal(t, 10, records[0].CreatedAt.Hour())
		assert.Equal(t, 11, records[1].CreatedAt.Hour())
	})

	t.Run("numeric author ids", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[
				{"id": 1, "parentId": null, "title": "Intro", "body": "hello", "authorId": 42},
				{"id": 2, "parentId": 1, "title": "", "body": "reply", "authorId": 43}
			]`)
		})

		records, err := client.GetThreads(context.Background(), testSession, "3")
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, domain.UserId("42"), records[0].AuthorId)
		assert.Equal(t, domain.UserId("43"), records[1].AuthorId)
	})

	t.Run("anonymous call has no authorization", func(t *testing.T) {
		var auth string
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			io.WriteString(w, `[]`)
		})

		records, err := client.GetThreads(context.Background(), nil, "f1")
		require.NoError(t, err)
		assert.Empty(t, records)
		assert.Empty(t, auth)
	})

	t.Run("null body is an empty list", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `null`)
		})

		records, err := client.GetThreads(context.Background(), testSession, "f1")
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("request id is forwarded", func(t *testing.T) {
		var got string
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get(mw.RequestIdHeader)
			io.WriteString(w, `[]`)
		})
		var ctx context.Context
		h := mw.RequestId(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { ctx = r.Context() }))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(mw.RequestIdHeader, "6f1c1a8e-3b0e-4c4e-9a55-1f3a3b7d2c10")
		h.ServeHTTP(httptest.NewRecorder(), req)

		_, err := client.GetThreads(ctx, testSession, "f1")
		require.NoError(t, err)
		assert.Equal(t, "6f1c1a8e-3b0e-4c4e-9a55-1f3a3b7d2c10", got)
	})

	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "not found", status: http.StatusNotFound, body: `{}`, wantStatus: http.StatusNotFound},
		{name: "forbidden", status: http.StatusForbidden, body: `{}`, wantStatus: http.StatusForbidden},
		{name: "server error", status: http.StatusInternalServerError, body: `boom`, wantStatus: http.StatusBadGateway},
		{name: "malformed json", status: http.StatusOK, body: `[{"id": 1,`, wantStatus: http.StatusBadGateway},
		{name: "record without id", status: http.StatusOK, body: `[{"id": 1}, {"title": "x"}]`, wantStatus: http.StatusBadGateway},
		{name: "bad parent id type", status: http.StatusOK, body: `[{"id": 1, "parentId": {"x": 1}}]`, wantStatus: http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			records, err := client.GetThreads(context.Background(), testSession, "f1")
			require.Error(t, err)
			assert.Nil(t, records)
			assert.Equal(t, tt.wantStatus, statusCode(t, err))
		})
	}

	t.Run("backend unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		client := New(srv.URL, time.Second)
		srv.Close()

		_, err := client.GetThreads(context.Background(), testSession, "f1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backend unavailable")
	})
}

func TestGetForums(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var courseId string
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			courseId = r.URL.Query().Get("courseId")
			io.WriteString(w, `[{"id": "f1", "name": "General", "courseId": "c1"}, {"id": "f2", "name": "Labs", "courseId": "c1"}]`)
		})

		forums, err := client.GetForums(context.Background(), testSession, "c1")
		require.NoError(t, err)
		assert.Equal(t, "c1", courseId)
		require.Len(t, forums, 2)
		assert.Equal(t, "General", forums[0].Name)
	})

	t.Run("numeric forum and course ids", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[{"id": 3, "name": "General", "courseId": 7}]`)
		})

		forums, err := client.GetForums(context.Background(), testSession, "7")
		require.NoError(t, err)
		require.Len(t, forums, 1)
		assert.Equal(t, domain.ForumId("3"), forums[0].Id)
		assert.Equal(t, domain.CourseId("7"), forums[0].CourseId)
	})

	t.Run("not found", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetForums(context.Background(), testSession, "c1")
		assert.Equal(t, http.StatusNotFound, statusCode(t, err))
	})
}

func TestCreateThread(t *testing.T) {
	parent := domain.ThreadId("5")
	req := api.CreateThreadRequest{ForumId: "f1", ParentId: &parent, Title: "RE: 5", Body: "answer", AuthorId: "u1"}

	t.Run("created", func(t *testing.T) {
		var got map[string]any
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/threads", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"id": 42}`)
		})

		id, err := client.CreateThread(context.Background(), testSession, req)
		require.NoError(t, err)
		assert.Equal(t, domain.ThreadId("42"), id)
		assert.Equal(t, "5", got["parentId"])
		assert.Equal(t, "f1", got["forumId"])
	})

	t.Run("created without id", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `Thread created`)
		})

		id, err := client.CreateThread(context.Background(), testSession, req)
		require.NoError(t, err)
		assert.Empty(t, id)
	})

	t.Run("rejected", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "forum is closed", http.StatusForbidden)
		})

		_, err := client.CreateThread(context.Background(), testSession, req)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
		assert.Contains(t, err.Error(), "forum is closed")
	})

	t.Run("server error", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := client.CreateThread(context.Background(), testSession, req)
		assert.Equal(t, http.StatusBadGateway, statusCode(t, err))
	})
}

func TestCreateForum(t *testing.T) {
	req := api.CreateForumRequest{CourseId: "7", Name: "Exam prep"}
	lecturer := &domain.Session{UserId: "l1", Role: domain.RoleLecturer, Token: "tok-staff"}

	// staffOnly answers like the backend: only the lecturer token may create.
	staffOnly := func(got *map[string]any) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/forums", r.URL.Path)
			if r.Header.Get("Authorization") != "Bearer tok-staff" {
				http.Error(w, "only lecturers and admins can create forums", http.StatusForbidden)
				return
			}
			assert.NoError(t, json.NewDecoder(r.Body).Decode(got))
			w.WriteHeader(http.StatusCreated)
			io.WriteString(w, `{"id": 12, "message": "Forum created"}`)
		}
	}

	t.Run("staff session", func(t *testing.T) {
		var got map[string]any
		client := newBackend(t, staffOnly(&got))

		id, err := client.CreateForum(context.Background(), lecturer, req)
		require.NoError(t, err)
		assert.Equal(t, domain.ForumId("12"), id)
		assert.Equal(t, "7", got["courseId"])
		assert.Equal(t, "Exam prep", got["name"])
	})

	t.Run("student session", func(t *testing.T) {
		var got map[string]any
		client := newBackend(t, staffOnly(&got))

		_, err := client.CreateForum(context.Background(), testSession, req)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, statusCode(t, err))
		assert.Contains(t, err.Error(), "only lecturers and admins")
		assert.Nil(t, got)
	})

	t.Run("server error", func(t *testing.T) {
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.CreateForum(context.Background(), lecturer, req)
		assert.Equal(t, http.StatusBadGateway, statusCode(t, err))
	})
}

func TestGetCourses(t *testing.T) {
	t.Run("numeric and string ids", func(t *testing.T) {
		var gotReq *http.Request
		client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
			gotReq = r
			io.WriteString(w, `[{"id": 7, "name": "Algorithms"}, {"id": "db-1", "name": "Databases"}]`)
		})

		courses, err := client.GetCourses(context.Background(), testSession)
		require.NoError(t, err)
		assert.Equal(t, "/courses", gotReq.URL.Path)
		assert.Equal(t, "Bearer tok-123", gotReq.Header.Get("Authorization"))
		assert.Equal(t, []domain.Course{
			{Id: "7", Name: "Algorithms"},
			{Id: "db-1", Name: "Databases"},
		}, courses)
	})

	tests := []struct {
		name   string
		status int
		body   string
		want   int
	}{
		{"unauthorized", http.StatusUnauthorized, "", http.StatusUnauthorized},
		{"server error", http.StatusInternalServerError, "", http.StatusBadGateway},
		{"missing id", http.StatusOK, `[{"name": "Algorithms"}]`, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newBackend(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := client.GetCourses(context.Background(), testSession)
			assert.Equal(t, tt.want, statusCode(t, err))
		})
	}
}
