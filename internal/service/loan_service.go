package service

import (
	"time"

	"github.com/nivethitha870/BANK/internal/finance"
	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
)

// Annual interest rates per loan type, percent.
var loanRates = map[string]float64{
	models.LoanPersonal:  10.5,
	models.LoanHome:      8.5,
	models.LoanCar:       9.0,
	models.LoanEducation: 7.5,
}

type LoanService struct {
	loanRepo    *repository.LoanRepository
	accountRepo *repository.AccountRepository
}

func NewLoanService(loanRepo *repository.LoanRepository, accountRepo *repository.AccountRepository) *LoanService {
	return &LoanService{loanRepo: loanRepo, accountRepo: accountRepo}
}

// Apply files a loan application. The EMI is computed once here, at
// application time, and stored on the loan; it is never recomputed.
func (s *LoanService) Apply(accountNumber string, req *models.LoanApplicationRequest) (*models.Loan, error) {
	// 1. Validate the application
	rate, ok := loanRates[req.LoanType]
	if !ok {
		return nil, validationError("loan type must be personal, home, car or education")
	}
	if req.Amount <= 0 {
		return nil, validationError("loan amount must be greater than 0")
	}
	if req.Tenure <= 0 {
		return nil, validationError("tenure must be at least 1 month")
	}

	// 2. Resolve the applying account
	account, err := s.accountRepo.GetByNumber(accountNumber)
	if err != nil {
		return nil, err
	}

	// 3. Compute the EMI and persist the application as pending
	loan := &models.Loan{
		LoanType:      req.LoanType,
		Amount:        req.Amount,
		InterestRate:  rate,
		Tenure:        req.Tenure,
		EMI:           finance.EMI(req.Amount, rate, req.Tenure),
		AccountNumber: account.AccountNumber,
		CustomerName:  account.CustomerName,
		Status:        models.LoanPending,
		AppliedDate:   time.Now().UTC(),
	}
	if err := s.loanRepo.Create(loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// GetByAccount returns the loans applied for against an account.
func (s *LoanService) GetByAccount(accountNumber string) ([]models.Loan, error) {
	return s.loanRepo.GetByAccount(accountNumber)
}

// ListAll returns every loan, for the banker's approval queue.
func (s *LoanService) ListAll() ([]models.Loan, error) {
	return s.loanRepo.GetAll()
}

// Approve marks a pending loan approved.
func (s *LoanService) Approve(loanID string) (*models.Loan, error) {
	status := models.LoanApproved
	return s.loanRepo.Update(loanID, models.LoanUpdate{Status: &status})
}

// Reject marks a pending loan rejected.
func (s *LoanService) Reject(loanID string) (*models.Loan, error) {
	status := models.LoanRejected
	return s.loanRepo.Update(loanID, models.LoanUpdate{Status: &status})
}
