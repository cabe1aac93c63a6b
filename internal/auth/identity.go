package auth

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/cotravel-backend/internal/domain"
)

// Identity is the authenticated caller carried by an access token.
type Identity struct {
	UserID uuid.UUID
	Role   domain.UserRole
	// Wallet is the Stellar account the caller signed in with. It may be empty.
	Wallet string
}
