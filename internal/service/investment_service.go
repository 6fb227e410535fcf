package service

import (
	"time"

	"github.com/nivethitha870/BANK/internal/finance"
	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/storage"
)

// Annual interest rates per investment type, percent.
var investmentRates = map[string]float64{
	models.InvestmentFD:         6.5,
	models.InvestmentRD:         6.0,
	models.InvestmentMutualFund: 12.0,
}

// Minimum opening amounts per investment type.
var investmentMinimums = map[string]float64{
	models.InvestmentFD:         1000,
	models.InvestmentRD:         500,
	models.InvestmentMutualFund: 500,
}

type InvestmentService struct {
	store          *storage.Store
	investmentRepo *repository.InvestmentRepository
	accountRepo    *repository.AccountRepository
}

func NewInvestmentService(store *storage.Store, investmentRepo *repository.InvestmentRepository, accountRepo *repository.AccountRepository) *InvestmentService {
	return &InvestmentService{
		store:          store,
		investmentRepo: investmentRepo,
		accountRepo:    accountRepo,
	}
}

// InvestmentView is an investment plus its current maturity value, which is
// recomputed on every read and never stored.
type InvestmentView struct {
	models.Investment
	MaturityValue float64 `json:"maturityValue"`
}

// Create opens an investment. The deposit amount is deducted from the
// account balance and the investment appended in one atomic store write.
func (s *InvestmentService) Create(accountNumber string, req *models.InvestmentRequest) (*models.Investment, error) {
	// 1. Validate the request
	rate, ok := investmentRates[req.InvestmentType]
	if !ok {
		return nil, validationError("investment type must be FD, RD or Mutual Fund")
	}
	if min := investmentMinimums[req.InvestmentType]; req.Amount < min {
		return nil, validationError("minimum investment for %s is %.0f", req.InvestmentType, min)
	}
	if req.Tenure <= 0 {
		return nil, validationError("tenure must be at least 1 month")
	}

	// 2. Build the investment; maturity date is tenure months out
	now := time.Now().UTC()
	investment := &models.Investment{
		InvestmentType: req.InvestmentType,
		Amount:         req.Amount,
		InterestRate:   rate,
		Tenure:         req.Tenure,
		AccountNumber:  accountNumber,
		MaturityDate:   now.AddDate(0, req.Tenure, 0),
		Status:         models.InvestmentActive,
	}

	// 3. Deduct the balance and append the investment atomically
	err := s.store.Update(func(b *storage.Batch) error {
		account, err := s.accountRepo.GetByNumberIn(b, accountNumber)
		if err != nil {
			return err
		}
		if req.Amount > account.Balance {
			return validationError("insufficient balance")
		}
		investment.CustomerName = account.CustomerName
		remaining := account.Balance - req.Amount
		if _, err := s.accountRepo.UpdateIn(b, account.ID, models.AccountUpdate{Balance: &remaining}); err != nil {
			return err
		}
		return s.investmentRepo.CreateIn(b, investment)
	})
	if err != nil {
		return nil, err
	}
	return investment, nil
}

// GetByAccount returns the investments held against an account, each with
// its recomputed maturity value.
func (s *InvestmentService) GetByAccount(accountNumber string) ([]InvestmentView, error) {
	investments, err := s.investmentRepo.GetByAccount(accountNumber)
	if err != nil {
		return nil, err
	}
	return withMaturityValues(investments), nil
}

// ListAll returns every investment with maturity values.
func (s *InvestmentService) ListAll() ([]InvestmentView, error) {
	investments, err := s.investmentRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return withMaturityValues(investments), nil
}

// MarkMatured transitions an investment whose maturity date has passed.
func (s *InvestmentService) MarkMatured(investmentID string) (*models.Investment, error) {
	investments, err := s.investmentRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for _, inv := range investments {
		if inv.ID == investmentID {
			if time.Now().Before(inv.MaturityDate) {
				return nil, validationError("investment has not matured yet")
			}
			status := models.InvestmentMatured
			return s.investmentRepo.Update(investmentID, models.InvestmentUpdate{Status: &status})
		}
	}
	return nil, repository.ErrInvestmentNotFound
}

func withMaturityValues(investments []models.Investment) []InvestmentView {
	views := make([]InvestmentView, len(investments))
	for i, inv := range investments {
		views[i] = InvestmentView{
			Investment:    inv,
			MaturityValue: finance.MaturityValue(inv.Amount, inv.InterestRate, inv.Tenure),
		}
	}
	return views
}
