package models

import "time"

// Account roles.
const (
	RoleAdmin    = "admin"
	RoleBanker   = "banker"
	RoleCustomer = "customer"
)

// Account statuses.
const (
	AccountActive   = "active"
	AccountInactive = "inactive"
	AccountPending  = "pending"
)

// Account types.
const (
	AccountSavings = "savings"
	AccountCurrent = "current"
)

type Account struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"accountNumber"`
	AccountType   string    `json:"accountType"`
	Balance       float64   `json:"balance"`
	CustomerName  string    `json:"customerName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Password      string    `json:"password"` // bcrypt hash
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AccountUpdate is a partial update applied to an existing account.
// Nil fields are preserved, non-nil fields replace the stored value.
type AccountUpdate struct {
	AccountType  *string
	Balance      *float64
	CustomerName *string
	Email        *string
	Phone        *string
	Address      *string
	Password     *string
	Role         *string
	Status       *string
}

// RegisterRequest is the payload for signup (self-service or banker-created).
type RegisterRequest struct {
	AccountNumber string  `json:"accountNumber"`
	AccountType   string  `json:"accountType"`
	Balance       float64 `json:"balance"`
	CustomerName  string  `json:"customerName"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Password      string  `json:"password"`
	Role          string  `json:"role"`
}

// LoginRequest is the payload for login.
type LoginRequest struct {
	AccountNumber string `json:"accountNumber"`
	Password      string `json:"password"`
}

// ProfileUpdateRequest is the payload for profile edits, resolved by email.
type ProfileUpdateRequest struct {
	CustomerName *string `json:"customerName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Address      *string `json:"address,omitempty"`
	Password     *string `json:"password,omitempty"`
}
