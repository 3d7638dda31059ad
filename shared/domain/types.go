package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

type Role = string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RoleAdmin    Role = "admin"
)

// ThreadId is an opaque server-assigned identifier. The backend may send it
// as a JSON number or a JSON string; both decode to the same value.
type ThreadId string

func (id ThreadId) String() string {
	return string(id)
}

func (id *ThreadId) UnmarshalJSON(data []byte) error {
	parsed, err := parseOpaqueId(data)
	if err != nil {
		return fmt.Errorf("thread id: %w", err)
	}
	*id = ThreadId(parsed)
	return nil
}

func (id ThreadId) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// ForumId, CourseId and UserId are backend keys. Like ThreadId they decode
// from JSON numbers or strings and encode as strings.
type (
	ForumId  string
	CourseId string
	UserId   string
)

func (id ForumId) String() string  { return string(id) }
func (id CourseId) String() string { return string(id) }
func (id UserId) String() string   { return string(id) }

func (id *ForumId) UnmarshalJSON(data []byte) error {
	return unmarshalOpaqueId(data, "forum id", (*string)(id))
}

func (id *CourseId) UnmarshalJSON(data []byte) error {
	return unmarshalOpaqueId(data, "course id", (*string)(id))
}

func (id *UserId) UnmarshalJSON(data []byte) error {
	return unmarshalOpaqueId(data, "user id", (*string)(id))
}

// unmarshalOpaqueId leaves dst untouched on JSON null.
func unmarshalOpaqueId(data []byte, what string, dst *string) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	parsed, err := parseOpaqueId(data)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	*dst = parsed
	return nil
}

// parseOpaqueId accepts a JSON string or number and returns its text form.
func parseOpaqueId(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return "", fmt.Errorf("empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return "", fmt.Errorf("non-integer number %s", data)
		}
		return strconv.FormatInt(n, 10), nil
	default:
		return "", fmt.Errorf("unexpected value %s", data)
	}
}

// backendTimeLayout is what the course backend emits for created_at columns.
const backendTimeLayout = "2006-01-02 15:04:05"

// Timestamp decodes both RFC 3339 and the backend's space-separated layout.
type Timestamp struct {
	time.Time
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		ts.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	s = strings.TrimSpace(s)
	if s == "" {
		ts.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, backendTimeLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t
			return nil
		}
	}
	return fmt.Errorf("timestamp: unsupported format %q", s)
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.Format(time.RFC3339))
}
