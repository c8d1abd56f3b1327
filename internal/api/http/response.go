package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	gerr "github.com/jekabolt/waitlist-manager/internal/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Default().Error("can't encode response body",
			slog.String("err", err.Error()),
		)
	}
}

// respondError renders a typed API error as the error envelope. Anything
// untyped is logged and masked as INTERNAL_ERROR.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := gerr.As(err)
	if !ok {
		slog.Default().ErrorContext(r.Context(), "internal error",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		e = gerr.ErrInternal
	}
	respondJSON(w, e.Status, errorEnvelope{Error: errorBody{
		Code:    e.Code,
		Message: e.Message,
	}})
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return gerr.Validation("invalid request body")
	}
	return nil
}
