package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/storage"
)

// ErrAccountNotFound reports a lookup that matched no account. Distinct from
// storage failures, which come back wrapped.
var ErrAccountNotFound = errors.New("account not found")

type AccountRepository struct {
	store *storage.Store
}

func NewAccountRepository(store *storage.Store) *AccountRepository {
	return &AccountRepository{store: store}
}

// GetAll returns every account in insertion order, seeding sample data on the
// first access against an empty store.
func (r *AccountRepository) GetAll() ([]models.Account, error) {
	if err := EnsureSeeded(r.store); err != nil {
		return nil, err
	}
	raw, err := r.store.Get(storage.KeyAccounts)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Account{}, nil
		}
		return nil, err
	}
	return decodeAccounts(raw)
}

// Create assigns a fresh id, appends the account and persists the collection.
func (r *AccountRepository) Create(account *models.Account) error {
	if err := EnsureSeeded(r.store); err != nil {
		return err
	}
	return r.store.Update(func(b *storage.Batch) error {
		return r.CreateIn(b, account)
	})
}

// CreateIn is Create staged into an existing batch.
func (r *AccountRepository) CreateIn(b *storage.Batch, account *models.Account) error {
	accounts, err := accountsIn(b)
	if err != nil {
		return err
	}
	account.ID = uuid.NewString()
	accounts = append(accounts, *account)
	return putAccounts(b, accounts)
}

// Update merges the non-nil fields of update into the account with the given
// id and persists the collection. Returns ErrAccountNotFound if no account
// has that id; the collection is left untouched in that case.
func (r *AccountRepository) Update(id string, update models.AccountUpdate) (*models.Account, error) {
	var updated *models.Account
	err := r.store.Update(func(b *storage.Batch) error {
		var err error
		updated, err = r.UpdateIn(b, id, update)
		return err
	})
	return updated, err
}

// UpdateIn is Update staged into an existing batch.
func (r *AccountRepository) UpdateIn(b *storage.Batch, id string, update models.AccountUpdate) (*models.Account, error) {
	accounts, err := accountsIn(b)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].ID != id {
			continue
		}
		applyAccountUpdate(&accounts[i], update)
		if err := putAccounts(b, accounts); err != nil {
			return nil, err
		}
		return &accounts[i], nil
	}
	return nil, ErrAccountNotFound
}

// GetByNumber resolves an account by its account number. First match wins.
func (r *AccountRepository) GetByNumber(accountNumber string) (*models.Account, error) {
	accounts, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].AccountNumber == accountNumber {
			return &accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

// GetByNumberIn is GetByNumber against a staged batch, so a multi-entity
// mutation can validate balances under the same write it commits with.
func (r *AccountRepository) GetByNumberIn(b *storage.Batch, accountNumber string) (*models.Account, error) {
	accounts, err := accountsIn(b)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].AccountNumber == accountNumber {
			return &accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

// GetByEmail resolves an account by email, the profile-edit lookup path.
func (r *AccountRepository) GetByEmail(email string) (*models.Account, error) {
	accounts, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Email == email {
			return &accounts[i], nil
		}
	}
	return nil, ErrAccountNotFound
}

// UpdateByEmail merges update into the account with the given email.
func (r *AccountRepository) UpdateByEmail(email string, update models.AccountUpdate) (*models.Account, error) {
	account, err := r.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	return r.Update(account.ID, update)
}

func applyAccountUpdate(account *models.Account, update models.AccountUpdate) {
	if update.AccountType != nil {
		account.AccountType = *update.AccountType
	}
	if update.Balance != nil {
		account.Balance = *update.Balance
	}
	if update.CustomerName != nil {
		account.CustomerName = *update.CustomerName
	}
	if update.Email != nil {
		account.Email = *update.Email
	}
	if update.Phone != nil {
		account.Phone = *update.Phone
	}
	if update.Address != nil {
		account.Address = *update.Address
	}
	if update.Password != nil {
		account.Password = *update.Password
	}
	if update.Role != nil {
		account.Role = *update.Role
	}
	if update.Status != nil {
		account.Status = *update.Status
	}
}

func accountsIn(b *storage.Batch) ([]models.Account, error) {
	raw, err := b.Get(storage.KeyAccounts)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Account{}, nil
		}
		return nil, err
	}
	return decodeAccounts(raw)
}

func putAccounts(b *storage.Batch, accounts []models.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("failed to encode accounts: %w", err)
	}
	b.Set(storage.KeyAccounts, raw)
	return nil
}

func decodeAccounts(raw []byte) ([]models.Account, error) {
	var accounts []models.Account
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, fmt.Errorf("failed to decode accounts: %w", err)
	}
	return accounts, nil
}
