package service

import (
	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/utils"
)

type AccountService struct {
	accountRepo *repository.AccountRepository
}

func NewAccountService(accountRepo *repository.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// ListAccounts returns every account, for the banker and admin dashboards.
func (s *AccountService) ListAccounts() ([]models.Account, error) {
	return s.accountRepo.GetAll()
}

// GetByNumber resolves one account.
func (s *AccountService) GetByNumber(accountNumber string) (*models.Account, error) {
	return s.accountRepo.GetByNumber(accountNumber)
}

// SetStatus activates or deactivates an account, the admin user-management
// action.
func (s *AccountService) SetStatus(accountNumber, status string) (*models.Account, error) {
	switch status {
	case models.AccountActive, models.AccountInactive, models.AccountPending:
	default:
		return nil, validationError("status must be active, inactive or pending")
	}
	account, err := s.accountRepo.GetByNumber(accountNumber)
	if err != nil {
		return nil, err
	}
	return s.accountRepo.Update(account.ID, models.AccountUpdate{Status: &status})
}

// UpdateProfile merges a profile edit into the account resolved by email.
// Provided fields replace, absent fields are preserved.
func (s *AccountService) UpdateProfile(email string, req *models.ProfileUpdateRequest) (*models.Account, error) {
	update := models.AccountUpdate{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
	}
	if req.CustomerName != nil && *req.CustomerName == "" {
		return nil, validationError("name cannot be empty")
	}
	if req.Password != nil {
		if len(*req.Password) < 6 || !specialCharPattern.MatchString(*req.Password) {
			return nil, validationError("password must be at least 6 characters and contain a special character")
		}
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		update.Password = &hash
	}
	return s.accountRepo.UpdateByEmail(email, update)
}
