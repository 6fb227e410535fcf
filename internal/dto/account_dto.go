package dto

import (
	"time"

	"github.com/nivethitha870/BANK/internal/models"
)

// AccountDTO is the account shape returned by the API. The password hash
// never leaves the server.
type AccountDTO struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"accountNumber"`
	AccountType   string    `json:"accountType"`
	Balance       float64   `json:"balance"`
	CustomerName  string    `json:"customerName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Address       string    `json:"address,omitempty"`
	Role          string    `json:"role"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ToAccountDTO converts an Account model to its API shape.
func ToAccountDTO(account *models.Account) *AccountDTO {
	return &AccountDTO{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		AccountType:   account.AccountType,
		Balance:       account.Balance,
		CustomerName:  account.CustomerName,
		Email:         account.Email,
		Phone:         account.Phone,
		Address:       account.Address,
		Role:          account.Role,
		Status:        account.Status,
		CreatedAt:     account.CreatedAt,
	}
}

// ToAccountDTOList converts a slice of Accounts to their API shape.
func ToAccountDTOList(accounts []models.Account) []*AccountDTO {
	dtos := make([]*AccountDTO, len(accounts))
	for i := range accounts {
		dtos[i] = ToAccountDTO(&accounts[i])
	}
	return dtos
}

// AuthResponseDTO is returned by login.
type AuthResponseDTO struct {
	Token   string      `json:"token"`
	Account *AccountDTO `json:"account"`
}
