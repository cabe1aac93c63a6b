package rest

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/internal/service/settlement"
)

// Amounts travel as decimal strings so no precision is lost in clients.

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type itemRequest struct {
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	RecipientWallet string          `json:"recipient_wallet"`
	BusinessRef     *string         `json:"business_ref"`
}

type createInvoiceRequest struct {
	Name            string           `json:"name"`
	Description     *string          `json:"description"`
	Icon            *string          `json:"icon"`
	TokenAddress    *string          `json:"token_address"`
	AutoRelease     bool             `json:"auto_release"`
	Items           []itemRequest    `json:"items"`
	TargetAmount    *decimal.Decimal `json:"target_amount"`
	MinParticipants int              `json:"min_participants"`
	PenaltyPercent  int              `json:"penalty_percent"`
	Deadline        time.Time        `json:"deadline"`
}

type signedRequest struct {
	SignedXDR string `json:"signed_xdr"`
}

type joinRequest struct {
	WalletAddress string `json:"wallet_address"`
}

type contributeRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	SignedXDR string          `json:"signed_xdr"`
}

type updateItemsRequest struct {
	Items         []itemRequest `json:"items"`
	ChangeSummary string        `json:"change_summary"`
	SignedXDR     string        `json:"signed_xdr"`
}

func toItemInputs(items []itemRequest) []settlement.ItemInput {
	out := make([]settlement.ItemInput, 0, len(items))
	for _, it := range items {
		out = append(out, settlement.ItemInput{
			Description:     it.Description,
			Amount:          it.Amount,
			RecipientWallet: it.RecipientWallet,
			BusinessRef:     it.BusinessRef,
		})
	}
	return out
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type invoiceResponse struct {
	ID                int64           `json:"id"`
	OrganizerID       string          `json:"organizer_id"`
	ContractInvoiceID *uint64         `json:"contract_invoice_id"`
	Name              string          `json:"name"`
	Description       *string         `json:"description"`
	Icon              *string         `json:"icon"`
	TokenAddress      *string         `json:"token_address"`
	AutoRelease       bool            `json:"auto_release"`
	TargetAmount      decimal.Decimal `json:"target_amount"`
	MinParticipants   int             `json:"min_participants"`
	PenaltyPercent    int             `json:"penalty_percent"`
	Deadline          time.Time       `json:"deadline"`
	Status            string          `json:"status"`
	Version           int             `json:"version"`
	TotalCollected    decimal.Decimal `json:"total_collected"`
	ParticipantCount  int             `json:"participant_count"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Items             []itemResponse  `json:"items,omitempty"`
}

type itemResponse struct {
	ID              int64           `json:"id"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	RecipientWallet string          `json:"recipient_wallet"`
	BusinessRef     *string         `json:"business_ref,omitempty"`
	SortOrder       int             `json:"sort_order"`
}

type onchainResponse struct {
	Status           string          `json:"status"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	ParticipantCount int             `json:"participant_count"`
}

type invoiceDetailsResponse struct {
	invoiceResponse
	Onchain      *onchainResponse `json:"onchain,omitempty"`
	OnchainError string           `json:"onchain_error,omitempty"`
}

type invoiceSummaryResponse struct {
	ID               int64           `json:"id"`
	Name             string          `json:"name"`
	Status           string          `json:"status"`
	TargetAmount     decimal.Decimal `json:"target_amount"`
	TotalCollected   decimal.Decimal `json:"total_collected"`
	ParticipantCount int             `json:"participant_count"`
	Deadline         time.Time       `json:"deadline"`
	CreatedAt        time.Time       `json:"created_at"`
	IsOrganizer      bool            `json:"is_organizer"`
}

type invoiceListResponse struct {
	Items []invoiceSummaryResponse `json:"items"`
	Total int                      `json:"total"`
	Page  int                      `json:"page"`
	Limit int                      `json:"limit"`
}

type participantResponse struct {
	InvoiceID            int64           `json:"invoice_id"`
	UserID               string          `json:"user_id"`
	WalletAddress        string          `json:"wallet_address"`
	ContributedAmount    decimal.Decimal `json:"contributed_amount"`
	PenaltyAmount        decimal.Decimal `json:"penalty_amount"`
	Status               string          `json:"status"`
	ContributedAtVersion int             `json:"contributed_at_version"`
	JoinedAt             time.Time       `json:"joined_at"`
}

type transactionResponse struct {
	ID             int64           `json:"id"`
	UserID         string          `json:"user_id"`
	TxHash         string          `json:"tx_hash"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	LedgerSequence int64           `json:"ledger_sequence"`
	EventData      map[string]any  `json:"event_data,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

type modificationResponse struct {
	ID            int64          `json:"id"`
	Version       int            `json:"version"`
	ChangeSummary string         `json:"change_summary"`
	ItemsSnapshot []itemResponse `json:"items_snapshot"`
	CreatedAt     time.Time      `json:"created_at"`
}

type withdrawalResponse struct {
	Invoice   invoiceResponse `json:"invoice"`
	Withdrawn decimal.Decimal `json:"withdrawn"`
	Penalty   decimal.Decimal `json:"penalty"`
	TxHash    string          `json:"tx_hash"`
}

func toInvoiceResponse(inv *domain.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:                inv.ID,
		OrganizerID:       inv.OrganizerID.String(),
		ContractInvoiceID: inv.ContractInvoiceID,
		Name:              inv.Name,
		Description:       inv.Description,
		Icon:              inv.Icon,
		TokenAddress:      inv.TokenAddress,
		AutoRelease:       inv.AutoRelease,
		TargetAmount:      inv.TargetAmount,
		MinParticipants:   inv.MinParticipants,
		PenaltyPercent:    inv.PenaltyPercent,
		Deadline:          inv.Deadline,
		Status:            inv.Status.String(),
		Version:           inv.Version,
		TotalCollected:    inv.TotalCollected,
		ParticipantCount:  inv.ParticipantCount,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
		Items:             toItemResponses(inv.Items),
	}
}

func toItemResponses(items []domain.InvoiceItem) []itemResponse {
	if items == nil {
		return nil
	}
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, itemResponse{
			ID:              it.ID,
			Description:     it.Description,
			Amount:          it.Amount,
			RecipientWallet: it.RecipientWallet,
			BusinessRef:     it.BusinessRef,
			SortOrder:       it.SortOrder,
		})
	}
	return out
}

func toDetailsResponse(d *settlement.InvoiceDetails) invoiceDetailsResponse {
	resp := invoiceDetailsResponse{
		invoiceResponse: toInvoiceResponse(d.Invoice),
		OnchainError:    d.OnchainError,
	}
	if d.Onchain != nil {
		resp.Onchain = &onchainResponse{
			Status:           d.Onchain.Status,
			TotalCollected:   d.Onchain.TotalCollected,
			ParticipantCount: d.Onchain.ParticipantCount,
		}
	}
	return resp
}

func toListResponse(l *settlement.InvoiceList) invoiceListResponse {
	items := make([]invoiceSummaryResponse, 0, len(l.Items))
	for _, s := range l.Items {
		items = append(items, invoiceSummaryResponse{
			ID:               s.ID,
			Name:             s.Name,
			Status:           s.Status.String(),
			TargetAmount:     s.TargetAmount,
			TotalCollected:   s.TotalCollected,
			ParticipantCount: s.ParticipantCount,
			Deadline:         s.Deadline,
			CreatedAt:        s.CreatedAt,
			IsOrganizer:      s.IsOrganizer,
		})
	}
	return invoiceListResponse{Items: items, Total: l.Total, Page: l.Page, Limit: l.Limit}
}

func toParticipantResponse(p *domain.Participant) participantResponse {
	return participantResponse{
		InvoiceID:            p.InvoiceID,
		UserID:               p.UserID.String(),
		WalletAddress:        p.WalletAddress,
		ContributedAmount:    p.ContributedAmount,
		PenaltyAmount:        p.PenaltyAmount,
		Status:               p.Status.String(),
		ContributedAtVersion: p.ContributedAtVersion,
		JoinedAt:             p.JoinedAt,
	}
}

func toParticipantResponses(ps []domain.Participant) []participantResponse {
	out := make([]participantResponse, 0, len(ps))
	for i := range ps {
		out = append(out, toParticipantResponse(&ps[i]))
	}
	return out
}

func toTransactionResponses(recs []domain.TransactionRecord) []transactionResponse {
	out := make([]transactionResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, transactionResponse{
			ID:             rec.ID,
			UserID:         rec.UserID.String(),
			TxHash:         rec.TxHash,
			Type:           rec.Type.String(),
			Amount:         rec.Amount,
			LedgerSequence: rec.LedgerSequence,
			EventData:      rec.EventData,
			CreatedAt:      rec.CreatedAt,
		})
	}
	return out
}

func toModificationResponses(mods []domain.InvoiceModification) []modificationResponse {
	out := make([]modificationResponse, 0, len(mods))
	for _, m := range mods {
		snapshot := toItemResponses(m.ItemsSnapshot)
		if snapshot == nil {
			snapshot = []itemResponse{}
		}
		out = append(out, modificationResponse{
			ID:            m.ID,
			Version:       m.Version,
			ChangeSummary: m.ChangeSummary,
			ItemsSnapshot: snapshot,
			CreatedAt:     m.CreatedAt,
		})
	}
	return out
}

func toWithdrawalResponse(res *settlement.WithdrawalResult) withdrawalResponse {
	return withdrawalResponse{
		Invoice:   toInvoiceResponse(res.Invoice),
		Withdrawn: res.Withdrawn,
		Penalty:   res.Penalty,
		TxHash:    res.TxHash,
	}
}
