package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/storage"
)

// ErrInvestmentNotFound reports a lookup that matched no investment.
var ErrInvestmentNotFound = errors.New("investment not found")

type InvestmentRepository struct {
	store *storage.Store
}

func NewInvestmentRepository(store *storage.Store) *InvestmentRepository {
	return &InvestmentRepository{store: store}
}

// GetAll returns every investment in insertion order.
func (r *InvestmentRepository) GetAll() ([]models.Investment, error) {
	if err := EnsureSeeded(r.store); err != nil {
		return nil, err
	}
	raw, err := r.store.Get(storage.KeyInvestments)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Investment{}, nil
		}
		return nil, err
	}
	return decodeInvestments(raw)
}

// GetByAccount returns the investments held against an account number.
func (r *InvestmentRepository) GetByAccount(accountNumber string) ([]models.Investment, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	matched := []models.Investment{}
	for _, inv := range all {
		if inv.AccountNumber == accountNumber {
			matched = append(matched, inv)
		}
	}
	return matched, nil
}

// Create assigns a fresh id, appends the investment and persists the
// collection.
func (r *InvestmentRepository) Create(investment *models.Investment) error {
	if err := EnsureSeeded(r.store); err != nil {
		return err
	}
	return r.store.Update(func(b *storage.Batch) error {
		return r.CreateIn(b, investment)
	})
}

// CreateIn is Create staged into an existing batch. Opening an investment
// uses this so the deposit commits with the balance deduction.
func (r *InvestmentRepository) CreateIn(b *storage.Batch, investment *models.Investment) error {
	investments, err := investmentsIn(b)
	if err != nil {
		return err
	}
	investment.ID = uuid.NewString()
	investments = append(investments, *investment)
	return putInvestments(b, investments)
}

// Update merges the non-nil fields of update into the investment with the
// given id. Returns ErrInvestmentNotFound if no investment has that id.
func (r *InvestmentRepository) Update(id string, update models.InvestmentUpdate) (*models.Investment, error) {
	var updated *models.Investment
	err := r.store.Update(func(b *storage.Batch) error {
		investments, err := investmentsIn(b)
		if err != nil {
			return err
		}
		for i := range investments {
			if investments[i].ID != id {
				continue
			}
			if update.Status != nil {
				investments[i].Status = *update.Status
			}
			updated = &investments[i]
			return putInvestments(b, investments)
		}
		return ErrInvestmentNotFound
	})
	return updated, err
}

func investmentsIn(b *storage.Batch) ([]models.Investment, error) {
	raw, err := b.Get(storage.KeyInvestments)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Investment{}, nil
		}
		return nil, err
	}
	return decodeInvestments(raw)
}

func putInvestments(b *storage.Batch, investments []models.Investment) error {
	raw, err := json.Marshal(investments)
	if err != nil {
		return fmt.Errorf("failed to encode investments: %w", err)
	}
	b.Set(storage.KeyInvestments, raw)
	return nil
}

func decodeInvestments(raw []byte) ([]models.Investment, error) {
	var investments []models.Investment
	if err := json.Unmarshal(raw, &investments); err != nil {
		return nil, fmt.Errorf("failed to decode investments: %w", err)
	}
	return investments, nil
}
