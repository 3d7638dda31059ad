package domain

// Session is the acting user for one request. It is built by the auth
// middleware and handed explicitly to everything that needs the actor.
type Session struct {
	UserId UserId
	Role   Role
	Token  string // raw access token, forwarded to the backend
}

func (s *Session) IsStaff() bool {
	return s != nil && (s.Role == RoleLecturer || s.Role == RoleAdmin)
}
