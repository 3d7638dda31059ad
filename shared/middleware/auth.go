package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/coursehub/forumtree/shared/domain"
	jwt_internal "github.com/coursehub/forumtree/shared/jwt"
	"github.com/coursehub/forumtree/shared/logger"
	"github.com/coursehub/forumtree/shared/utils"
)

// Key to store the session in the request context
type key int

const SessionKey key = 0

const AccessTokenCookie = "accessToken"

// Auth turns the access token of a request into a domain.Session.
type Auth struct {
	jwtService    jwt_internal.JwtService
	secureCookies bool
}

func NewAuth(jwtService jwt_internal.JwtService, secureCookies bool) *Auth {
	return &Auth{
		jwtService:    jwtService,
		secureCookies: secureCookies,
	}
}

// NeedAuth rejects requests without a valid token.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := a.extractSession(r)
			if err != nil {
				if err == errNoToken {
					http.Error(w, "Please sign-in", http.StatusUnauthorized)
					return
				}
				// Drop the stale cookie so the browser goes back to login
				http.SetCookie(w, &http.Cookie{
					Path:     "/",
					Name:     AccessTokenCookie,
					Value:    "",
					MaxAge:   -1,
					HttpOnly: true,
					Secure:   a.secureCookies,
					SameSite: http.SameSiteLaxMode,
				})
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// OptionalAuth populates the session if the token is valid but lets
// anonymous requests through.
func (a *Auth) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sess, err := a.extractSession(r); err == nil {
				r = r.WithContext(WithSession(r.Context(), sess))
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (a *Auth) extractSession(r *http.Request) (*domain.Session, error) {
	// cookie for browsers, Authorization header for embedding pages and tools
	var tokenString string
	if cookie, err := r.Cookie(AccessTokenCookie); err == nil {
		tokenString = cookie.Value
	} else if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		tokenString = token
	}
	if tokenString == "" {
		return nil, errNoToken
	}

	sess, err := a.jwtService.Session(tokenString)
	if err != nil {
		logger.Log.Debug("session rejected", "path", r.URL.Path, "error", err)
		return nil, err
	}
	return sess, nil
}

var errNoToken = errorString("no token")

type errorString string

func (e errorString) Error() string { return string(e) }

func WithSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

// GetSessionFromContext returns nil for anonymous requests.
func GetSessionFromContext(r *http.Request) *domain.Session {
	sess, _ := r.Context().Value(SessionKey).(*domain.Session)
	return sess
}
