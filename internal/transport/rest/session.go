package rest

import (
	"net/http"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

type meResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role,omitempty"`
	Wallet string `json:"wallet,omitempty"`
}

// Me returns the identity carried by the caller's access token.
// GET /api/me
func Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, domain.KindUnauthorized, "authentication required")
		return
	}
	writeJSON(w, http.StatusOK, meResponse{
		UserID: userID.String(),
		Role:   ctxutil.UserRoleFromCtx(r.Context()),
		Wallet: ctxutil.WalletFromCtx(r.Context()),
	})
}
