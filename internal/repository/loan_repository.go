package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/storage"
)

// ErrLoanNotFound reports a lookup that matched no loan.
var ErrLoanNotFound = errors.New("loan not found")

type LoanRepository struct {
	store *storage.Store
}

func NewLoanRepository(store *storage.Store) *LoanRepository {
	return &LoanRepository{store: store}
}

// GetAll returns every loan in insertion order.
func (r *LoanRepository) GetAll() ([]models.Loan, error) {
	if err := EnsureSeeded(r.store); err != nil {
		return nil, err
	}
	raw, err := r.store.Get(storage.KeyLoans)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Loan{}, nil
		}
		return nil, err
	}
	return decodeLoans(raw)
}

// GetByAccount returns the loans applied for against an account number.
func (r *LoanRepository) GetByAccount(accountNumber string) ([]models.Loan, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	matched := []models.Loan{}
	for _, loan := range all {
		if loan.AccountNumber == accountNumber {
			matched = append(matched, loan)
		}
	}
	return matched, nil
}

// Create assigns a fresh id, appends the loan and persists the collection.
func (r *LoanRepository) Create(loan *models.Loan) error {
	if err := EnsureSeeded(r.store); err != nil {
		return err
	}
	return r.store.Update(func(b *storage.Batch) error {
		loans, err := loansIn(b)
		if err != nil {
			return err
		}
		loan.ID = uuid.NewString()
		loans = append(loans, *loan)
		return putLoans(b, loans)
	})
}

// Update merges the non-nil fields of update into the loan with the given id.
// Returns ErrLoanNotFound if no loan has that id.
func (r *LoanRepository) Update(id string, update models.LoanUpdate) (*models.Loan, error) {
	var updated *models.Loan
	err := r.store.Update(func(b *storage.Batch) error {
		loans, err := loansIn(b)
		if err != nil {
			return err
		}
		for i := range loans {
			if loans[i].ID != id {
				continue
			}
			if update.Status != nil {
				loans[i].Status = *update.Status
			}
			updated = &loans[i]
			return putLoans(b, loans)
		}
		return ErrLoanNotFound
	})
	return updated, err
}

func loansIn(b *storage.Batch) ([]models.Loan, error) {
	raw, err := b.Get(storage.KeyLoans)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Loan{}, nil
		}
		return nil, err
	}
	return decodeLoans(raw)
}

func putLoans(b *storage.Batch, loans []models.Loan) error {
	raw, err := json.Marshal(loans)
	if err != nil {
		return fmt.Errorf("failed to encode loans: %w", err)
	}
	b.Set(storage.KeyLoans, raw)
	return nil
}

func decodeLoans(raw []byte) ([]models.Loan, error) {
	var loans []models.Loan
	if err := json.Unmarshal(raw, &loans); err != nil {
		return nil, fmt.Errorf("failed to decode loans: %w", err)
	}
	return loans, nil
}
