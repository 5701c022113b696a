package handlers

import (
	"net/http"
	"net/url"
)

// Query keys of the redirect-with-message protocol.
const (
	queryError   = "error"
	querySuccess = "success"
)

// redirectWithMessage sends a 303 to path carrying msg under key, which the
// target page renders as a banner.
func redirectWithMessage(w http.ResponseWriter, r *http.Request, path, key, msg string) {
	target := path
	if msg != "" {
		target += "?" + url.Values{key: {msg}}.Encode()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func redirectError(w http.ResponseWriter, r *http.Request, path, msg string) {
	redirectWithMessage(w, r, path, queryError, msg)
}

func redirectSuccess(w http.ResponseWriter, r *http.Request, path, msg string) {
	redirectWithMessage(w, r, path, querySuccess, msg)
}
