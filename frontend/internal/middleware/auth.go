package middleware

import (
	"net/http"
	"net/url"

	mw "github.com/coursehub/forumtree/shared/middleware"
)

// Auth wraps shared auth middleware with redirect behavior for browsers.
type Auth struct {
	sharedAuth *mw.Auth
	loginURL   string
}

// NewAuth creates a frontend auth middleware wrapper. Unauthenticated
// browsers are sent to loginURL; with an empty loginURL they get the plain
// 401 instead.
func NewAuth(sharedAuth *mw.Auth, loginURL string) *Auth {
	return &Auth{
		sharedAuth: sharedAuth,
		loginURL:   loginURL,
	}
}

// NeedAuth returns middleware with redirect behavior
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	if a.loginURL == "" {
		return a.sharedAuth.NeedAuth()
	}
	return a.wrapWithRedirect(a.sharedAuth.NeedAuth())
}

// OptionalAuth populates the session if available (no redirect needed)
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return a.sharedAuth.OptionalAuth()
}

// authRedirectWriter turns a 401 into a redirect to the login page
type authRedirectWriter struct {
	http.ResponseWriter
	request    *http.Request
	loginURL   string
	redirected bool
}

func (w *authRedirectWriter) WriteHeader(statusCode int) {
	if w.redirected {
		return
	}
	if statusCode == http.StatusUnauthorized {
		w.redirected = true
		http.Redirect(w.ResponseWriter, w.request, loginRedirect(w.loginURL, w.request), http.StatusSeeOther)
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *authRedirectWriter) Write(data []byte) (int, error) {
	if w.redirected {
		return len(data), nil // body of the 401 is discarded
	}
	return w.ResponseWriter.Write(data)
}

// loginRedirect appends the page the user wanted as ?next= so the login
// page can send them back.
func loginRedirect(loginURL string, r *http.Request) string {
	u, err := url.Parse(loginURL)
	if err != nil {
		return loginURL
	}
	q := u.Query()
	q.Set("next", r.URL.RequestURI())
	u.RawQuery = q.Encode()
	return u.String()
}

// wrapWithRedirect wraps any middleware to intercept auth errors
func (a *Auth) wrapWithRedirect(authMiddleware func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapper := &authRedirectWriter{
				ResponseWriter: w,
				request:        r,
				loginURL:       a.loginURL,
			}
			authMiddleware(next).ServeHTTP(wrapper, r)
		})
	}
}
