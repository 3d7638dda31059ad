package domain

import "fmt"

// DisplayTitle is the title shown for a post in every rendering. An untitled
// reply is labelled after its parent.
func (r ThreadRecord) DisplayTitle() string {
	if r.Title != "" || r.ParentId == nil {
		return r.Title
	}
	return "RE: " + r.ParentId.String()
}

// for debug
func (r *ThreadRecord) String() string {
	parent := "<root>"
	if r.ParentId != nil {
		parent = r.ParentId.String()
	}
	return fmt.Sprintf("[id:%s, parent:%s, title:%q, author:%s, created:%s]", r.Id, parent, r.Title, r.AuthorId, r.CreatedAt.Format("2006-01-02 15:04:05"))
}
