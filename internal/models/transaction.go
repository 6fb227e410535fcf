package models

import "time"

// Transfer types.
const (
	TransferIMPS = "IMPS"
	TransferNEFT = "NEFT"
	TransferRTGS = "RTGS"
	TransferUPI  = "UPI"
)

// Transaction statuses.
const (
	TransactionCompleted = "completed"
	TransactionPending   = "pending"
	TransactionFailed    = "failed"
)

// Transaction is one ledger entry. FromAccount and ToAccount hold account
// numbers, not record ids.
type Transaction struct {
	ID          string    `json:"id"`
	FromAccount string    `json:"fromAccount"`
	ToAccount   string    `json:"toAccount"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
}

// TransferRequest is the payload for a money transfer.
type TransferRequest struct {
	ToAccount   string  `json:"toAccount"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}
