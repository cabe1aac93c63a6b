package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
	"github.com/heartmarshall/cotravel-backend/pkg/ctxutil"
)

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Kind    string       `json:"kind"`
	Message string       `json:"message"`
	Fields  []fieldError `json:"fields,omitempty"`
	TxHash  string       `json:"tx_hash,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// statusForKind maps a stable error kind to its HTTP status.
func statusForKind(kind string) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindInvalidState:
		return http.StatusUnprocessableEntity
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindUnauthorized:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindChainSubmission, domain.KindChainExecution:
		return http.StatusBadGateway
	case domain.KindChainTimeout:
		return http.StatusGatewayTimeout
	case domain.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error envelope with no field details.
func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, errorEnvelope{Error: errorBody{Kind: kind, Message: message}})
}

// writeDomainError classifies err and writes the matching envelope.
// Internal errors are logged and their message is not exposed.
func writeDomainError(w http.ResponseWriter, r *http.Request, log *slog.Logger, op string, err error) {
	kind := domain.ErrorKind(err)
	status := statusForKind(kind)

	body := errorBody{Kind: kind, Message: err.Error()}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body.Message = "validation failed"
		for _, fe := range ve.Errors {
			body.Fields = append(body.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
	}

	var ce *domain.ChainError
	if errors.As(err, &ce) {
		body.TxHash = ce.TxHash
	}

	switch kind {
	case domain.KindInternal:
		log.ErrorContext(r.Context(), op,
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		body.Message = "internal server error"
	case domain.KindChainUnapplied:
		log.ErrorContext(r.Context(), op,
			slog.String("error", err.Error()),
			slog.String("tx_hash", body.TxHash),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		body.Message = "transaction confirmed on chain but not applied; queued for replay"
	}

	writeJSON(w, status, errorEnvelope{Error: body})
}
