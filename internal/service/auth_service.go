package service

import (
	"errors"
	"regexp"
	"time"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/session"
	"github.com/nivethitha870/BANK/internal/utils"
)

var (
	accountNumberPattern = regexp.MustCompile(`^SB\d{10}$`)
	emailPattern         = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	specialCharPattern   = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

type AuthService struct {
	accountRepo *repository.AccountRepository
	sessions    *session.Manager
	tokens      *utils.TokenSource
}

func NewAuthService(accountRepo *repository.AccountRepository, sessions *session.Manager, tokens *utils.TokenSource) *AuthService {
	return &AuthService{
		accountRepo: accountRepo,
		sessions:    sessions,
		tokens:      tokens,
	}
}

// AuthResponse is the result of a successful login.
type AuthResponse struct {
	Token   string          `json:"token"`
	Account *models.Account `json:"account"`
}

// Register creates a new account. Self-service signup passes a zero opening
// balance; the banker's create-account flow reuses this with a chosen one.
func (s *AuthService) Register(req *models.RegisterRequest) (*models.Account, error) {
	// 1. Validate the request
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	// 2. Reject duplicate account number or email
	if _, err := s.accountRepo.GetByNumber(req.AccountNumber); err == nil {
		return nil, validationError("account number already exists")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, err
	}
	if _, err := s.accountRepo.GetByEmail(req.Email); err == nil {
		return nil, validationError("email already registered")
	} else if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, err
	}

	// 3. Hash the password
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create the account
	accountType := req.AccountType
	if accountType == "" {
		accountType = models.AccountSavings
	}
	account := &models.Account{
		AccountNumber: req.AccountNumber,
		AccountType:   accountType,
		Balance:       req.Balance,
		CustomerName:  req.CustomerName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Password:      hash,
		Role:          req.Role,
		Status:        models.AccountActive,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, err
	}
	return account, nil
}

// Login resolves the account by account number, verifies the password, mints
// a token and establishes the session.
func (s *AuthService) Login(req *models.LoginRequest) (*AuthResponse, error) {
	// 1. Validate the login id format before touching the store
	if !accountNumberPattern.MatchString(req.AccountNumber) {
		return nil, validationError("ID must start with SB and contain 10 digits")
	}
	if req.Password == "" {
		return nil, validationError("password is required")
	}

	// 2. Resolve the account
	account, err := s.accountRepo.GetByNumber(req.AccountNumber)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 3. Reject inactive accounts
	if account.Status != models.AccountActive {
		return nil, validationError("account is %s", account.Status)
	}

	// 4. Verify the password
	if err := utils.ComparePassword(account.Password, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	// 5. Mint the token and establish the session
	token, err := s.tokens.GenerateToken(account.AccountNumber, account.Role)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SetCurrentUser(account); err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Account: account}, nil
}

// Logout clears the session.
func (s *AuthService) Logout() error {
	return s.sessions.Logout()
}

// CurrentUser returns the logged-in account, or nil when nobody is.
func (s *AuthService) CurrentUser() (*models.Account, error) {
	return s.sessions.GetCurrentUser()
}

func validateRegistration(req *models.RegisterRequest) error {
	if !accountNumberPattern.MatchString(req.AccountNumber) {
		return validationError("ID must start with SB and contain 10 digits")
	}
	if req.CustomerName == "" {
		return validationError("name is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return validationError("invalid email address")
	}
	if len(req.Password) < 6 || !specialCharPattern.MatchString(req.Password) {
		return validationError("password must be at least 6 characters and contain a special character")
	}
	switch req.Role {
	case models.RoleAdmin, models.RoleBanker, models.RoleCustomer:
	default:
		return validationError("role must be admin, banker or customer")
	}
	switch req.AccountType {
	case "", models.AccountSavings, models.AccountCurrent:
	default:
		return validationError("account type must be savings or current")
	}
	if req.Balance < 0 {
		return validationError("opening balance cannot be negative")
	}
	return nil
}
