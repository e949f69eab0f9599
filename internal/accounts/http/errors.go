package http

import (
	"errors"
	"net/http"

	"github.com/tuskhq/gatehouse/internal/accounts/service"
	"github.com/tuskhq/gatehouse/pkg/accountsdk"
	"github.com/tuskhq/gatehouse/pkg/httpx"
	"github.com/tuskhq/gatehouse/pkg/slogx"
)

// writeServiceError maps service-layer errors onto HTTP status codes.
// Validation, conflict, auth and not-found errors carry messages that are
// safe to show; anything else is an internal failure and is logged here
// but reported generically.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *service.ValidationError

	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, accountsdk.ErrorCodeValidation, ve.Error())
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusConflict, accountsdk.ErrorCodeConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidSession):
		writeError(w, http.StatusUnauthorized, accountsdk.ErrorCodeAuth, err.Error())
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, accountsdk.ErrorCodeNotFound, err.Error())
	default:
		slogx.FromContext(r.Context()).Error("internal error", "err", err)
		writeError(w, http.StatusInternalServerError, accountsdk.ErrorCodeInternal, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, code, description string) {
	httpx.WriteJSON(w, status, accountsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

func writeMalformedBody(w http.ResponseWriter) {
	writeError(w, http.StatusBadRequest, accountsdk.ErrorCodeValidation, "malformed JSON body")
}
