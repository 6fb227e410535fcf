package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/storage"
)

// TransactionRepository holds the ledger. Entries are append-only; there is
// no update path for a recorded transaction.
type TransactionRepository struct {
	store *storage.Store
}

func NewTransactionRepository(store *storage.Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// GetAll returns every transaction in insertion order.
func (r *TransactionRepository) GetAll() ([]models.Transaction, error) {
	if err := EnsureSeeded(r.store); err != nil {
		return nil, err
	}
	raw, err := r.store.Get(storage.KeyTransactions)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Transaction{}, nil
		}
		return nil, err
	}
	return decodeTransactions(raw)
}

// GetByAccount returns transactions where the account number appears as
// sender or recipient, in insertion order.
func (r *TransactionRepository) GetByAccount(accountNumber string) ([]models.Transaction, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	matched := []models.Transaction{}
	for _, tx := range all {
		if tx.FromAccount == accountNumber || tx.ToAccount == accountNumber {
			matched = append(matched, tx)
		}
	}
	return matched, nil
}

// Create assigns a fresh id, appends the transaction and persists the ledger.
func (r *TransactionRepository) Create(tx *models.Transaction) error {
	if err := EnsureSeeded(r.store); err != nil {
		return err
	}
	return r.store.Update(func(b *storage.Batch) error {
		return r.CreateIn(b, tx)
	})
}

// CreateIn is Create staged into an existing batch. The transfer path uses
// this so the ledger entry commits with the balance updates.
func (r *TransactionRepository) CreateIn(b *storage.Batch, tx *models.Transaction) error {
	transactions, err := transactionsIn(b)
	if err != nil {
		return err
	}
	tx.ID = uuid.NewString()
	transactions = append(transactions, *tx)
	raw, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	b.Set(storage.KeyTransactions, raw)
	return nil
}

func transactionsIn(b *storage.Batch) ([]models.Transaction, error) {
	raw, err := b.Get(storage.KeyTransactions)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Transaction{}, nil
		}
		return nil, err
	}
	return decodeTransactions(raw)
}

func decodeTransactions(raw []byte) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := json.Unmarshal(raw, &transactions); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return transactions, nil
}
