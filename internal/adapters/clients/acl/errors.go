// Package acl implements the Anti-Corruption Layer that talks to a remote
// todo API and translates its wire representations into domain types.
// Resource-specific translators live in subpackages (acl/todo, acl/user);
// shared error mapping and the request lifecycle live here.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
)

const maxErrorBodySize = 1 << 20

// statusErrors maps the statuses the todo API answers with to domain
// sentinels. 429 only arrives here after the client's retries ran out.
var statusErrors = map[int]error{
	http.StatusBadRequest:          domain.ErrValidation,
	http.StatusUnprocessableEntity: domain.ErrValidation,
	http.StatusUnauthorized:        domain.ErrForbidden,
	http.StatusForbidden:           domain.ErrForbidden,
	http.StatusNotFound:            domain.ErrNotFound,
	http.StatusConflict:            domain.ErrConflict,
	http.StatusTooManyRequests:     domain.ErrUnavailable,
}

// problemDetail is the subset of an RFC 9457 body the API sends.
type problemDetail struct {
	Detail string `json:"detail"`
	Errors []struct {
		Location string `json:"location"`
		Message  string `json:"message"`
	} `json:"errors"`
}

// TranslateHTTPError turns a non-success API response into a domain error,
// so a failed call becomes the same error action whichever backend served
// it. Field errors on a 400 or 422 become a *domain.ValidationError keyed by
// form field, which is what the login, signup and todo forms display.
func TranslateHTTPError(resp *http.Response) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	sentinel, ok := statusErrors[resp.StatusCode]
	switch {
	case ok && sentinel == domain.ErrValidation && len(pd.Errors) > 0:
		fields := make(map[string]string, len(pd.Errors))
		for _, e := range pd.Errors {
			fields[strings.TrimPrefix(e.Location, "body.")] = e.Message
		}
		return &domain.ValidationError{Fields: fields}
	case ok:
		return fmt.Errorf("%s: %w", detail, sentinel)
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

// parseProblemDetail returns the zero value for anything that is not a
// readable problem+json body.
func parseProblemDetail(resp *http.Response) problemDetail {
	var pd problemDetail
	if resp.Body == nil {
		return pd
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/problem+json" {
		return pd
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return pd
	}
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}
