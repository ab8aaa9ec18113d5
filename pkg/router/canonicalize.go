package router

import (
	"errors"
	"strings"
)

// CanonicalizePath normalizes a URL path for navigation: query stripped,
// slashes collapsed, trailing slash removed (except root).
func CanonicalizePath(path string) (string, error) {
	if path == "" {
		return "/", nil
	}

	path, _, _ = strings.Cut(path, "?")

	// SECURITY: Reject backslash and null
	if strings.Contains(path, "\\") {
		return "", errors.New("path contains backslash")
	}
	if strings.Contains(path, "\x00") {
		return "", errors.New("path contains null byte")
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path, nil
}
