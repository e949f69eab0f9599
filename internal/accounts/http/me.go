package http

import (
	"encoding/json"
	"net/http"

	"github.com/tuskhq/gatehouse/internal/accounts/domain"
	"github.com/tuskhq/gatehouse/internal/accounts/service"
	"github.com/tuskhq/gatehouse/pkg/accountsdk"
	"github.com/tuskhq/gatehouse/pkg/httpx"
)

type MeHandler struct {
	Accounts *service.AccountService
	Auth     *service.AuthService
}

// HandleGet resolves the presented session to its owning account.
//
//	@Summary		Who am I
//	@Description	Returns the public profile of the account that owns the session token.
//	@Tags			Accounts
//	@Security		SessionToken
//	@Produce		json
//	@Success		200	{object}	accountsdk.Profile			"Public profile"
//	@Failure		401	{object}	accountsdk.ErrorResponse	"Invalid or expired session"
//	@Failure		500	{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	profile, err := h.Auth.WhoAmI(r.Context(), httpx.BearerToken(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toProfile(profile))
}

// HandlePatch applies a partial profile update.
//
//	@Summary		Update profile
//	@Description	Updates first name, last name and/or password for the session's account. Omitted fields keep their value; the email cannot change.
//	@Tags			Accounts
//	@Security		SessionToken
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	accountsdk.Profile				"Updated profile"
//	@Failure		400		{object}	accountsdk.ErrorResponse		"Validation failure or empty update"
//	@Failure		401		{object}	accountsdk.ErrorResponse		"Invalid or expired session"
//	@Failure		500		{object}	accountsdk.ErrorResponse		"Internal server error"
//	@Router			/v1/me [patch].
func (h *MeHandler) HandlePatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req accountsdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMalformedBody(w)
		return
	}

	updated, err := h.Accounts.UpdateProfile(ctx, httpx.BearerToken(r), domain.ProfileUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toProfile(updated))
}
