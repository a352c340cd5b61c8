package todoapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Adda-Baaj/todoctl/internal/domain"
)

// RequestSpec is one fully resolved HTTP request.
type RequestSpec struct {
	URL    string
	Method string
	Body   []byte
}

// HasBody reports whether the request carries a payload.
func (r RequestSpec) HasBody() bool { return r.Body != nil }

// NewRequestSpec derives the request for cmd against the base URL.
func NewRequestSpec(base string, cmd domain.Command) (RequestSpec, error) {
	var (
		path    string
		method  string
		payload any
	)

	switch cmd.Kind {
	case domain.KindList:
		path, method = TodosPath, http.MethodGet
	case domain.KindCreate:
		path, method = TodosPath, http.MethodPost
		payload = domain.CreateTodo{Body: cmd.Body}
	case domain.KindRead:
		path, method = TodoPath(cmd.ID), http.MethodGet
	case domain.KindUpdate:
		path, method = TodoPath(cmd.ID), http.MethodPut
		payload = domain.UpdateTodo{Body: cmd.Body, Completed: cmd.Completed}
	case domain.KindDelete:
		path, method = TodoPath(cmd.ID), http.MethodDelete
	default:
		return RequestSpec{}, fmt.Errorf("unsupported command kind %d", cmd.Kind)
	}

	u, err := ComposeURL(base, path)
	if err != nil {
		return RequestSpec{}, err
	}

	spec := RequestSpec{URL: u.String(), Method: method}
	if payload != nil {
		body, err := encodeJSON(payload)
		if err != nil {
			return RequestSpec{}, fmt.Errorf("encode %s body: %w", cmd.Kind, err)
		}
		spec.Body = body
	}
	return spec, nil
}

// encodeJSON marshals v compactly without HTML escaping.
func encodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
