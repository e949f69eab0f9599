package http

import (
	"encoding/json"
	"net/http"

	"github.com/tuskhq/gatehouse/internal/accounts/domain"
	"github.com/tuskhq/gatehouse/internal/accounts/service"
	"github.com/tuskhq/gatehouse/pkg/accountsdk"
	"github.com/tuskhq/gatehouse/pkg/httpx"
)

type RegisterHandler struct {
	Accounts *service.AccountService
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a new account
//	@Description	Creates an account from an email, name and password. The email is normalized (trimmed, lowercased) and must be unique.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		accountsdk.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	accountsdk.Profile			"Public profile of the new account"
//	@Failure		400		{object}	accountsdk.ErrorResponse	"Validation failure; the description names every offending field"
//	@Failure		409		{object}	accountsdk.ErrorResponse	"Email already registered"
//	@Failure		500		{object}	accountsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/accounts [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req accountsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMalformedBody(w)
		return
	}

	profile, err := h.Accounts.Register(ctx, service.RegisterParams{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProfile(profile))
}

func toProfile(p domain.Profile) accountsdk.Profile {
	return accountsdk.Profile{
		ID:        p.ID,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		CreatedAt: p.CreatedAt,
	}
}
