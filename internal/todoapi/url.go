package todoapi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidURI is returned when a request URI cannot be derived from the base URL.
var ErrInvalidURI = errors.New("invalid uri")

// TodosPath is the collection path of the todo API.
const TodosPath = "/v1/todos"

// TodoPath returns the path of a single todo.
func TodoPath(id int64) string {
	return TodosPath + "/" + strconv.FormatInt(id, 10)
}

// ComposeURL keeps the scheme and authority of base and replaces everything
// after the authority with path.
func ComposeURL(base, path string) (*url.URL, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		return nil, fmt.Errorf("%w: base url is empty", ErrInvalidURI)
	}

	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURI, err)
	}
	if u.Scheme == "" {
		return nil, fmt.Errorf("%w: base url %q has no scheme", ErrInvalidURI, base)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: base url %q has no authority", ErrInvalidURI, base)
	}

	return &url.URL{
		Scheme: u.Scheme,
		User:   u.User,
		Host:   u.Host,
		Path:   path,
	}, nil
}
