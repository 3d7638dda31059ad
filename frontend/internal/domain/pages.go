package frontend_domain

import (
	"html/template"

	"github.com/coursehub/forumtree/shared/domain"
)

// ThreadNode is one rendered entry of a forest in pre-order.
type ThreadNode struct {
	domain.ThreadRecord
	Depth   int
	Indent  int // margin-left in px
	Body    template.HTML
	Created string
}

type ForumPageData struct {
	ForumId  domain.ForumId
	Fragment template.HTML
	Total    int // records fetched from the backend
	Shown    int // records placed in the forest
	Warning  string
}

func (p ForumPageData) Hidden() int {
	return p.Total - p.Shown
}

type ForumSummary struct {
	domain.Forum
	ThreadCount int // -1 when the count could not be fetched
}

type ForumsPageData struct {
	CourseId       domain.CourseId
	Forums         []ForumSummary
	CanCreateForum bool
}

type CoursesPageData struct {
	Courses []domain.Course
}
