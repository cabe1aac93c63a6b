package soroban

// Transaction statuses reported by sendTransaction.
const (
	sendStatusPending       = "PENDING"
	sendStatusDuplicate     = "DUPLICATE"
	sendStatusTryAgainLater = "TRY_AGAIN_LATER"
	sendStatusError         = "ERROR"
)

// Transaction statuses reported by getTransaction.
const (
	txStatusNotFound = "NOT_FOUND"
	txStatusSuccess  = "SUCCESS"
	txStatusFailed   = "FAILED"
)

type sendTransactionParams struct {
	Transaction string `json:"transaction"`
}

type sendTransactionResult struct {
	Status              string   `json:"status"`
	Hash                string   `json:"hash"`
	LatestLedger        int64    `json:"latestLedger"`
	ErrorResultXDR      string   `json:"errorResultXdr"`
	DiagnosticEventsXDR []string `json:"diagnosticEventsXdr"`
}

type getTransactionParams struct {
	Hash string `json:"hash"`
}

type getTransactionResult struct {
	Status              string             `json:"status"`
	LatestLedger        int64              `json:"latestLedger"`
	Ledger              int64              `json:"ledger"`
	ResultXDR           string             `json:"resultXdr"`
	ResultMetaXDR       string             `json:"resultMetaXdr"`
	DiagnosticEventsXDR []string           `json:"diagnosticEventsXdr"`
	Events              *transactionEvents `json:"events"`
}

// transactionEvents is the events object returned by newer RPC versions.
type transactionEvents struct {
	DiagnosticEventsXDR []string `json:"diagnosticEventsXdr"`
}

func (r *getTransactionResult) diagnosticEvents() []string {
	if r.Events != nil && len(r.Events.DiagnosticEventsXDR) > 0 {
		return r.Events.DiagnosticEventsXDR
	}
	return r.DiagnosticEventsXDR
}

type simulateTransactionParams struct {
	Transaction string `json:"transaction"`
}

type simulateTransactionResult struct {
	LatestLedger int64            `json:"latestLedger"`
	Error        string           `json:"error"`
	Results      []simulateResult `json:"results"`
}

type simulateResult struct {
	XDR string `json:"xdr"`
}

type getNetworkResult struct {
	Passphrase      string `json:"passphrase"`
	ProtocolVersion int    `json:"protocolVersion"`
}

type getHealthResult struct {
	Status       string `json:"status"`
	LatestLedger int64  `json:"latestLedger"`
}
