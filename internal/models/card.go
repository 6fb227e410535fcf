package models

// Card types.
const (
	CardDebit   = "debit"
	CardCredit  = "credit"
	CardVirtual = "virtual"
)

// Card statuses.
const (
	CardActive  = "active"
	CardBlocked = "blocked"
	CardPending = "pending"
)

type Card struct {
	ID            string  `json:"id"`
	CardNumber    string  `json:"cardNumber"`
	CardType      string  `json:"cardType"`
	AccountNumber string  `json:"accountNumber"`
	CustomerName  string  `json:"customerName"`
	ExpiryDate    string  `json:"expiryDate"` // MM/YY
	CVV           string  `json:"cvv"`
	Limit         float64 `json:"limit,omitempty"`
	Status        string  `json:"status"`
}

// CardUpdate is a partial update applied to an existing card.
type CardUpdate struct {
	Limit  *float64
	Status *string
}

// CardApplicationRequest is the payload for a card application.
type CardApplicationRequest struct {
	CardType string `json:"cardType"`
}
