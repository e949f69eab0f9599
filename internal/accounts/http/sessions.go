package http

import (
	"encoding/json"
	"net/http"

	"github.com/tuskhq/gatehouse/internal/accounts/service"
	"github.com/tuskhq/gatehouse/pkg/accountsdk"
	"github.com/tuskhq/gatehouse/pkg/httpx"
)

type SessionsHandler struct {
	Auth *service.AuthService
}

// HandleLogin exchanges credentials for a session token.
//
//	@Summary		Log in
//	@Description	Verifies the email/password pair and issues an opaque session token valid for seven days.
//	@Description	Unknown emails and wrong passwords produce the same error.
//	@Tags			Sessions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	accountsdk.LoginResponse	"Session token, expiry and account profile"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Malformed body"
//	@Failure		401		{object}	accountsdk.ErrorResponse	"Invalid email or password"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/sessions [post].
func (h *SessionsHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req accountsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMalformedBody(w)
		return
	}

	profile, sess, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, accountsdk.LoginResponse{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
		Account:   toProfile(profile),
	})
}

// HandleLogout revokes the presented session token.
//
//	@Summary		Log out
//	@Description	Revokes the session carried in the Authorization header. Logging out a token that is already gone returns 404.
//	@Tags			Sessions
//	@Security		SessionToken
//	@Success		204	"Session revoked"
//	@Failure		400	{object}	accountsdk.ErrorResponse	"Missing session token"
//	@Failure		404	{object}	accountsdk.ErrorResponse	"No such session"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/sessions [delete].
func (h *SessionsHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), httpx.BearerToken(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
