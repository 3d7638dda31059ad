package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	internal_errors "github.com/coursehub/forumtree/shared/errors"
)

const (
	errorParam   = "error"
	successParam = "success"
)

// redirectWithError sends the user back to targetURL with a flash message
// in the query string.
func redirectWithError(w http.ResponseWriter, r *http.Request, targetURL, errMsg string) {
	redirectWithParam(w, r, targetURL, errorParam, errMsg)
}

func redirectWithSuccess(w http.ResponseWriter, r *http.Request, targetURL, msg string) {
	redirectWithParam(w, r, targetURL, successParam, msg)
}

func redirectWithParam(w http.ResponseWriter, r *http.Request, targetURL, key, value string) {
	fragment := ""
	if i := strings.IndexByte(targetURL, '#'); i >= 0 {
		targetURL, fragment = targetURL[:i], targetURL[i:]
	}
	sep := "?"
	if strings.Contains(targetURL, "?") {
		sep = "&"
	}
	http.Redirect(w, r, targetURL+sep+key+"="+url.QueryEscape(value)+fragment, http.StatusSeeOther)
}

func parseMessagesFromQuery(r *http.Request) (errMsg, successMsg string) {
	q := r.URL.Query()
	return q.Get(errorParam), q.Get(successParam)
}

// statusOf returns the HTTP status carried by err, 500 otherwise.
func statusOf(err error) int {
	var e *internal_errors.ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}
