package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/internal/service/settlement"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type settlementService interface {
	Create(ctx context.Context, input settlement.CreateInvoiceInput) (*domain.Invoice, error)
	LinkContract(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error)
	Join(ctx context.Context, input settlement.JoinInput) (*domain.Participant, error)
	RecordContribution(ctx context.Context, input settlement.ContributeInput) (*domain.Invoice, error)
	RecordWithdrawal(ctx context.Context, input settlement.ChainActionInput) (*settlement.WithdrawalResult, error)
	OptOut(ctx context.Context, input settlement.ChainActionInput) (*settlement.WithdrawalResult, error)
	ConfirmRelease(ctx context.Context, invoiceID int64) (*domain.Participant, error)
	UpdateItems(ctx context.Context, input settlement.UpdateItemsInput) (*domain.Invoice, error)
	Release(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error)
	Cancel(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error)
	ClaimDeadline(ctx context.Context, input settlement.ChainActionInput) (*domain.Invoice, error)
	Invoice(ctx context.Context, id int64) (*domain.Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*settlement.InvoiceDetails, error)
	ListMyInvoices(ctx context.Context, input settlement.ListInvoicesInput) (*settlement.InvoiceList, error)
	ListParticipants(ctx context.Context, invoiceID int64) ([]domain.Participant, error)
	ListTransactions(ctx context.Context, invoiceID int64) ([]domain.TransactionRecord, error)
	ListModifications(ctx context.Context, invoiceID int64) ([]domain.InvoiceModification, error)
}

type accessPolicy interface {
	IsAdmin(ctx context.Context) bool
	IsOrganizer(userID uuid.UUID, inv *domain.Invoice) bool
	CanAccessInvoice(ctx context.Context, userID uuid.UUID, inv *domain.Invoice) (bool, error)
}

// InvoiceHandler serves the invoice REST endpoints.
type InvoiceHandler struct {
	svc    settlementService
	access accessPolicy
	log    *slog.Logger
}

// NewInvoiceHandler creates an InvoiceHandler.
func NewInvoiceHandler(svc settlementService, access accessPolicy, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{svc: svc, access: access, log: logger.With("handler", "invoice")}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Get handles GET /api/invoices/{id}.
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	details, err := h.svc.GetInvoice(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, "get invoice", err)
		return
	}
	if !h.canRead(w, r, details.Invoice) {
		return
	}

	writeJSON(w, http.StatusOK, toDetailsResponse(details))
}

// ListMine handles GET /api/invoices/my?page=&limit=.
func (h *InvoiceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page")
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}

	list, err := h.svc.ListMyInvoices(r.Context(), settlement.ListInvoicesInput{Page: page, Limit: limit})
	if err != nil {
		writeDomainError(w, r, h.log, "list invoices", err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(list))
}

// Participants handles GET /api/invoices/{id}/participants.
func (h *InvoiceHandler) Participants(w http.ResponseWriter, r *http.Request) {
	id, ok := h.readable(w, r)
	if !ok {
		return
	}
	ps, err := h.svc.ListParticipants(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, "list participants", err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipantResponses(ps))
}

// Transactions handles GET /api/invoices/{id}/transactions.
func (h *InvoiceHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	id, ok := h.readable(w, r)
	if !ok {
		return
	}
	recs, err := h.svc.ListTransactions(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, "list transactions", err)
		return
	}
	writeJSON(w, http.StatusOK, toTransactionResponses(recs))
}

// Modifications handles GET /api/invoices/{id}/modifications.
func (h *InvoiceHandler) Modifications(w http.ResponseWriter, r *http.Request) {
	id, ok := h.readable(w, r)
	if !ok {
		return
	}
	mods, err := h.svc.ListModifications(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, "list modifications", err)
		return
	}
	writeJSON(w, http.StatusOK, toModificationResponses(mods))
}

// ---------------------------------------------------------------------------
// Organizer actions
// ---------------------------------------------------------------------------

// Create handles POST /api/invoices.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inv, err := h.svc.Create(r.Context(), settlement.CreateInvoiceInput{
		Name:            req.Name,
		Description:     req.Description,
		Icon:            req.Icon,
		TokenAddress:    req.TokenAddress,
		AutoRelease:     req.AutoRelease,
		Items:           toItemInputs(req.Items),
		TargetAmount:    req.TargetAmount,
		MinParticipants: req.MinParticipants,
		PenaltyPercent:  req.PenaltyPercent,
		Deadline:        req.Deadline,
	})
	if err != nil {
		writeDomainError(w, r, h.log, "create invoice", err)
		return
	}

	writeJSON(w, http.StatusCreated, toInvoiceResponse(inv))
}

// LinkContract handles POST /api/invoices/{id}/link-contract.
func (h *InvoiceHandler) LinkContract(w http.ResponseWriter, r *http.Request) {
	h.organizerAction(w, r, "link contract", h.svc.LinkContract)
}

// Release handles POST /api/invoices/{id}/release.
func (h *InvoiceHandler) Release(w http.ResponseWriter, r *http.Request) {
	h.organizerAction(w, r, "release invoice", h.svc.Release)
}

// Cancel handles POST /api/invoices/{id}/cancel.
func (h *InvoiceHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.organizerAction(w, r, "cancel invoice", h.svc.Cancel)
}

// UpdateItems handles PUT /api/invoices/{id}/items.
func (h *InvoiceHandler) UpdateItems(w http.ResponseWriter, r *http.Request) {
	id, ok := h.organizerOnly(w, r)
	if !ok {
		return
	}

	var req updateItemsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inv, err := h.svc.UpdateItems(r.Context(), settlement.UpdateItemsInput{
		InvoiceID:     id,
		Items:         toItemInputs(req.Items),
		ChangeSummary: req.ChangeSummary,
		SignedXDR:     req.SignedXDR,
	})
	if err != nil {
		writeDomainError(w, r, h.log, "update items", err)
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

func (h *InvoiceHandler) organizerAction(
	w http.ResponseWriter, r *http.Request, op string,
	action func(context.Context, settlement.ChainActionInput) (*domain.Invoice, error),
) {
	id, ok := h.organizerOnly(w, r)
	if !ok {
		return
	}

	var req signedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inv, err := action(r.Context(), settlement.ChainActionInput{InvoiceID: id, SignedXDR: req.SignedXDR})
	if err != nil {
		writeDomainError(w, r, h.log, op, err)
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// ---------------------------------------------------------------------------
// Participant actions
// ---------------------------------------------------------------------------

// Join handles POST /api/invoices/{id}/join. The wallet defaults to the one
// bound to the caller's token.
func (h *InvoiceHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	var req joinRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.WalletAddress == "" {
		req.WalletAddress = ctxutil.WalletFromCtx(r.Context())
	}

	p, err := h.svc.Join(r.Context(), settlement.JoinInput{InvoiceID: id, WalletAddress: req.WalletAddress})
	if err != nil {
		writeDomainError(w, r, h.log, "join invoice", err)
		return
	}

	writeJSON(w, http.StatusCreated, toParticipantResponse(p))
}

// Contribute handles POST /api/invoices/{id}/contribute.
func (h *InvoiceHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	var req contributeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inv, err := h.svc.RecordContribution(r.Context(), settlement.ContributeInput{
		InvoiceID: id,
		Amount:    req.Amount,
		SignedXDR: req.SignedXDR,
	})
	if err != nil {
		writeDomainError(w, r, h.log, "record contribution", err)
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// Withdraw handles POST /api/invoices/{id}/withdraw.
func (h *InvoiceHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.withdrawal(w, r, "record withdrawal", h.svc.RecordWithdrawal)
}

// OptOut handles POST /api/invoices/{id}/opt-out.
func (h *InvoiceHandler) OptOut(w http.ResponseWriter, r *http.Request) {
	h.withdrawal(w, r, "opt out", h.svc.OptOut)
}

func (h *InvoiceHandler) withdrawal(
	w http.ResponseWriter, r *http.Request, op string,
	action func(context.Context, settlement.ChainActionInput) (*settlement.WithdrawalResult, error),
) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	var req signedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := action(r.Context(), settlement.ChainActionInput{InvoiceID: id, SignedXDR: req.SignedXDR})
	if err != nil {
		writeDomainError(w, r, h.log, op, err)
		return
	}

	writeJSON(w, http.StatusOK, toWithdrawalResponse(res))
}

// Confirm handles POST /api/invoices/{id}/confirm.
func (h *InvoiceHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.ConfirmRelease(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, "confirm release", err)
		return
	}

	writeJSON(w, http.StatusOK, toParticipantResponse(p))
}

// ClaimDeadline handles POST /api/invoices/{id}/claim-deadline. Any
// authenticated user may claim.
func (h *InvoiceHandler) ClaimDeadline(w http.ResponseWriter, r *http.Request) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return
	}

	var req signedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	inv, err := h.svc.ClaimDeadline(r.Context(), settlement.ChainActionInput{InvoiceID: id, SignedXDR: req.SignedXDR})
	if err != nil {
		writeDomainError(w, r, h.log, "claim deadline", err)
		return
	}

	writeJSON(w, http.StatusOK, toInvoiceResponse(inv))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// invoiceID parses the {id} path value. It writes 400 and returns false
// unless the value is a positive integer.
func (h *InvoiceHandler) invoiceID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeDomainError(w, r, h.log, "parse invoice id",
			domain.NewValidationError("id", "must be a positive integer"))
		return 0, false
	}
	return id, true
}

// readable parses {id} and checks the caller may read the invoice.
func (h *InvoiceHandler) readable(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return 0, false
	}
	inv, err := h.svc.Invoice(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, "load invoice", err)
		return 0, false
	}
	return id, h.canRead(w, r, inv)
}

func (h *InvoiceHandler) canRead(w http.ResponseWriter, r *http.Request, inv *domain.Invoice) bool {
	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	allowed, err := h.access.CanAccessInvoice(r.Context(), userID, inv)
	if err != nil {
		writeDomainError(w, r, h.log, "check access", err)
		return false
	}
	if !allowed {
		writeDomainError(w, r, h.log, "check access", domain.ErrForbidden)
		return false
	}
	return true
}

// organizerOnly parses {id} and checks the caller organizes the invoice.
func (h *InvoiceHandler) organizerOnly(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := h.invoiceID(w, r)
	if !ok {
		return 0, false
	}
	inv, err := h.svc.Invoice(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, "load invoice", err)
		return 0, false
	}
	userID, _ := ctxutil.UserIDFromCtx(r.Context())
	if !h.access.IsOrganizer(userID, inv) {
		writeError(w, http.StatusForbidden, domain.KindForbidden, "only the organizer may do this")
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body into dst. An empty body leaves dst
// untouched so actions without parameters accept no payload.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	writeError(w, http.StatusBadRequest, domain.KindValidation, "invalid request body")
	return false
}

// queryInt reads an optional integer query parameter. Missing means zero.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, domain.KindValidation, name+" must be an integer")
		return 0, false
	}
	return v, true
}
