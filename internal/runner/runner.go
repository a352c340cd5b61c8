package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Adda-Baaj/todoctl/internal/logger"
	"github.com/Adda-Baaj/todoctl/internal/output"
	"github.com/Adda-Baaj/todoctl/internal/todoapi"
	"github.com/Adda-Baaj/todoctl/pkg/httpclient"
)

var (
	// ErrTransport wraps connection and I/O failures.
	ErrTransport = errors.New("transport error")
	// ErrDecode marks a response that is not valid text.
	ErrDecode = errors.New("decode error")
	// ErrFormat marks a body that does not match its declared content type.
	ErrFormat = errors.New("format error")
)

const (
	headerContentType = "Content-Type"
	mimeJSON          = "application/json"
)

// Runner performs a single request and renders the response.
type Runner struct {
	client  httpclient.Client
	printer *output.Printer
	log     logger.Logger
}

// New builds a Runner.
func New(client httpclient.Client, printer *output.Printer, log logger.Logger) *Runner {
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Runner{client: client, printer: printer, log: log}
}

// Execute sends spec and prints status, content type and body.
func (r *Runner) Execute(ctx context.Context, spec todoapi.RequestSpec) error {
	if r == nil || r.client == nil || r.printer == nil {
		return fmt.Errorf("runner is not initialized")
	}

	r.log.DebugObj("request dispatched", "request", map[string]any{
		"method":     spec.Method,
		"url":        spec.URL,
		"body_bytes": len(spec.Body),
	})

	headers := map[string]string{headerContentType: mimeJSON}
	resp, err := r.client.Do(ctx, spec.Method, spec.URL, headers, spec.Body)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, spec.Method, spec.URL, err)
	}

	raw := resp.Body()
	r.log.DebugObj("response received", "response", map[string]any{
		"status":     resp.StatusCode(),
		"body_bytes": len(raw),
	})

	if !utf8.Valid(raw) {
		return fmt.Errorf("%w: response body is not valid utf-8", ErrDecode)
	}
	body := string(raw)

	r.printer.Status(resp.StatusCode())

	values, ok := resp.Header()[headerContentType]
	if !ok || len(values) == 0 {
		return r.printer.Raw(body)
	}

	contentType := values[0]
	if !isVisibleASCII(contentType) {
		return fmt.Errorf("%w: content-type header %q is not visible ascii", ErrDecode, contentType)
	}
	r.printer.ContentType(contentType)

	if strings.HasPrefix(contentType, mimeJSON) {
		if err := r.printer.JSON(raw); err != nil {
			if errors.Is(err, output.ErrInvalidJSON) {
				return fmt.Errorf("%w: %s body: %v", ErrFormat, mimeJSON, err)
			}
			return err
		}
		return nil
	}
	return r.printer.Raw(body)
}

// isVisibleASCII accepts the bytes a header value may hold as plain text.
func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c >= 0x7f {
			return false
		}
	}
	return true
}
