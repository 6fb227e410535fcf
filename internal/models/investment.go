package models

import "time"

// Investment types.
const (
	InvestmentFD         = "FD"
	InvestmentRD         = "RD"
	InvestmentMutualFund = "Mutual Fund"
)

// Investment statuses.
const (
	InvestmentActive  = "active"
	InvestmentMatured = "matured"
)

// Investment holds a deposit. The maturity value is recomputed on every read
// and never stored.
type Investment struct {
	ID             string    `json:"id"`
	InvestmentType string    `json:"investmentType"`
	Amount         float64   `json:"amount"`
	InterestRate   float64   `json:"interestRate"`
	Tenure         int       `json:"tenure"` // months
	AccountNumber  string    `json:"accountNumber"`
	CustomerName   string    `json:"customerName"`
	MaturityDate   time.Time `json:"maturityDate"`
	Status         string    `json:"status"`
}

// InvestmentUpdate is a partial update applied to an existing investment.
type InvestmentUpdate struct {
	Status *string
}

// InvestmentRequest is the payload for opening an investment.
type InvestmentRequest struct {
	InvestmentType string  `json:"investmentType"`
	Amount         float64 `json:"amount"`
	Tenure         int     `json:"tenure"`
}
