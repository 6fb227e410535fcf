package models

import "time"

// Loan types.
const (
	LoanPersonal  = "personal"
	LoanHome      = "home"
	LoanCar       = "car"
	LoanEducation = "education"
)

// Loan statuses.
const (
	LoanPending  = "pending"
	LoanApproved = "approved"
	LoanRejected = "rejected"
	LoanActive   = "active"
)

type Loan struct {
	ID            string    `json:"id"`
	LoanType      string    `json:"loanType"`
	Amount        float64   `json:"amount"`
	InterestRate  float64   `json:"interestRate"`
	Tenure        int       `json:"tenure"` // months
	EMI           float64   `json:"emi"`
	AccountNumber string    `json:"accountNumber"`
	CustomerName  string    `json:"customerName"`
	Status        string    `json:"status"`
	AppliedDate   time.Time `json:"appliedDate"`
}

// LoanUpdate is a partial update applied to an existing loan.
type LoanUpdate struct {
	Status *string
}

// LoanApplicationRequest is the payload for a loan application.
type LoanApplicationRequest struct {
	LoanType string  `json:"loanType"`
	Amount   float64 `json:"amount"`
	Tenure   int     `json:"tenure"`
}
