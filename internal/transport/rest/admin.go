package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/internal/service/settlement"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

type replayer interface {
	ReplayUnapplied(ctx context.Context, limit int) (*settlement.ReplayResult, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	replay replayer
	log    *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(replay replayer, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		replay: replay,
		log:    logger.With("handler", "admin"),
	}
}

type replayResponse struct {
	Applied  int `json:"applied"`
	Resolved int `json:"resolved"`
	Failed   int `json:"failed"`
}

// Replay re-applies journalled confirmations whose off-chain commit failed.
// POST /api/admin/replay?limit=50
func (h *AdminHandler) Replay(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	if limit < 0 {
		writeError(w, http.StatusBadRequest, domain.KindValidation, "limit must not be negative")
		return
	}

	res, err := h.replay.ReplayUnapplied(r.Context(), limit)
	if err != nil {
		writeDomainError(w, r, h.log, "replay unapplied", err)
		return
	}

	h.log.InfoContext(r.Context(), "replay requested",
		slog.Int("applied", res.Applied),
		slog.Int("resolved", res.Resolved),
		slog.Int("failed", res.Failed),
	)
	writeJSON(w, http.StatusOK, replayResponse{Applied: res.Applied, Resolved: res.Resolved, Failed: res.Failed})
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, http.StatusForbidden, domain.KindForbidden, "admin access required")
		return false
	}
	return true
}
