package frontend_domain

import "github.com/coursehub/forumtree/shared/domain"

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error     string
	Success   string
	Session   *domain.Session
	CSRFToken string
}
