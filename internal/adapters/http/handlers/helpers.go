package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/go-ssr-template/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-ssr-template/internal/domain"
	"github.com/jsamuelsen11/go-ssr-template/internal/platform/logging"
)

var errMissingToken = fmt.Errorf("missing bearer token: %w", domain.ErrForbidden)

// maxBodyBytes caps JSON request bodies. A todo text or a set of
// credentials is far below it.
const maxBodyBytes = 64 << 10

// parseID reads a positive entity id from the named chi path parameter.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.Invalid(param, domain.MsgInvalid)
	}
	return id, nil
}

func bearerToken(r *http.Request) (string, error) {
	scheme, token, _ := strings.Cut(r.Header.Get("Authorization"), " ")
	token = strings.TrimSpace(token)
	if !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "encoding response", slog.Any("error", err))
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate reads a JSON body into dst and runs its validation. On
// failure it writes the problem response itself and reports false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		msg := domain.MsgInvalid
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			msg = domain.MsgTooLong
		}
		dto.WriteErrorResponse(w, r, domain.Invalid("body", msg))
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
