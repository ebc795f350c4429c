package http

import (
	"net/http"

	"github.com/rubentalstra/BAK/internal/identity"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/service"
)

// AccountHandler serves the account deletion endpoint
type AccountHandler struct {
	accountSvc  service.AccountService
	identitySvc identity.Service
}

func NewAccountHandler(accountSvc service.AccountService, identitySvc identity.Service) *AccountHandler {
	return &AccountHandler{
		accountSvc:  accountSvc,
		identitySvc: identitySvc,
	}
}

// HandleDeleteAccount deletes the calling user's account. The target user id
// is derived only from the verified token; any id in the request body is
// ignored so one user cannot delete another's account.
func (h *AccountHandler) HandleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Missing or invalid Authorization header.")
		return
	}

	uid, err := h.identitySvc.VerifyToken(r.Context(), token)
	if err != nil || uid == "" {
		logger.Warn("Account deletion rejected: token verification failed", "error", err)
		writeError(w, http.StatusUnauthorized, "Error fetching user data.")
		return
	}

	if err := h.accountSvc.DeleteAccount(r.Context(), uid); err != nil {
		logger.Error("Account deletion failed", "userID", uid, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Account deletion successful."})
}
