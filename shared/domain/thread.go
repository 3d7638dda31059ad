package domain

// ThreadRecord is one discussion thread or reply as served by the backend.
// A nil ParentId marks a root thread.
type ThreadRecord struct {
	Id        ThreadId  `json:"id" validate:"required"`
	ParentId  *ThreadId `json:"parentId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt Timestamp `json:"createdAt"`
	AuthorId  UserId    `json:"authorId"`
}

func (r *ThreadRecord) IsRoot() bool {
	return r.ParentId == nil
}

type Forum struct {
	Id       ForumId  `json:"id" validate:"required"`
	Name     string   `json:"name"`
	CourseId CourseId `json:"courseId"`
}

type Course struct {
	Id   CourseId `json:"id" validate:"required"`
	Name string   `json:"name"`
}
