package domain

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusFunding   InvoiceStatus = "funding"
	InvoiceStatusCompleted InvoiceStatus = "completed"
	InvoiceStatusReleased  InvoiceStatus = "released"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

func (s InvoiceStatus) String() string { return string(s) }

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusFunding, InvoiceStatusCompleted,
		InvoiceStatusReleased, InvoiceStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further mutation is permitted.
func (s InvoiceStatus) IsTerminal() bool {
	return s == InvoiceStatusReleased || s == InvoiceStatusCancelled
}

// IsOpen reports whether the invoice is linked and still holds funds in escrow.
func (s InvoiceStatus) IsOpen() bool {
	return s == InvoiceStatusFunding || s == InvoiceStatusCompleted
}

// ParticipantStatus is the membership state of a participant.
type ParticipantStatus string

const (
	ParticipantStatusActive    ParticipantStatus = "active"
	ParticipantStatusWithdrawn ParticipantStatus = "withdrawn"
)

func (s ParticipantStatus) String() string { return string(s) }

func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantStatusActive, ParticipantStatusWithdrawn:
		return true
	}
	return false
}

// TxType identifies the on-chain action a transaction record proves.
type TxType string

const (
	TxTypeCreate           TxType = "create"
	TxTypeContribute       TxType = "contribute"
	TxTypeWithdraw         TxType = "withdraw"
	TxTypeRelease          TxType = "release"
	TxTypeCancel           TxType = "cancel"
	TxTypeClaimDeadline    TxType = "claim_deadline"
	TxTypeUpdateRecipients TxType = "update_recipients"
)

func (t TxType) String() string { return string(t) }

func (t TxType) IsValid() bool {
	switch t {
	case TxTypeCreate, TxTypeContribute, TxTypeWithdraw, TxTypeRelease,
		TxTypeCancel, TxTypeClaimDeadline, TxTypeUpdateRecipients:
		return true
	}
	return false
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
