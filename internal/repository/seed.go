package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/storage"
	"github.com/nivethitha870/BANK/internal/utils"
)

// SeedPassword is the password of the sample customer accounts.
const SeedPassword = "password123"

var collectionKeys = []string{
	storage.KeyAccounts,
	storage.KeyTransactions,
	storage.KeyCards,
	storage.KeyLoans,
	storage.KeyInvestments,
}

// EnsureSeeded lazily initializes the store on first use: absent collections
// get empty arrays, and an absent accounts collection gets two sample
// customers. Keys that already exist are never touched.
func EnsureSeeded(store *storage.Store) error {
	seeded := true
	for _, key := range collectionKeys {
		if !store.Has(key) {
			seeded = false
			break
		}
	}
	if seeded {
		return nil
	}

	var sampleAccounts []byte
	if !store.Has(storage.KeyAccounts) {
		accounts, err := sampleCustomers()
		if err != nil {
			return err
		}
		sampleAccounts, err = json.Marshal(accounts)
		if err != nil {
			return fmt.Errorf("failed to encode sample accounts: %w", err)
		}
	}

	return store.Update(func(b *storage.Batch) error {
		if sampleAccounts != nil {
			if _, err := b.Get(storage.KeyAccounts); errors.Is(err, storage.ErrKeyNotFound) {
				b.Set(storage.KeyAccounts, sampleAccounts)
			}
		}
		for _, key := range collectionKeys[1:] {
			if _, err := b.Get(key); errors.Is(err, storage.ErrKeyNotFound) {
				b.Set(key, []byte("[]"))
			}
		}
		return nil
	})
}

func sampleCustomers() ([]models.Account, error) {
	hash, err := utils.HashPassword(SeedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash sample password: %w", err)
	}
	now := time.Now().UTC()
	return []models.Account{
		{
			ID:            uuid.NewString(),
			AccountNumber: "SB1234567890",
			AccountType:   models.AccountSavings,
			Balance:       50000,
			CustomerName:  "John Customer",
			Email:         "john.customer@bank.com",
			Phone:         "9876543210",
			Address:       "Chennai",
			Password:      hash,
			Role:          models.RoleCustomer,
			Status:        models.AccountActive,
			CreatedAt:     now,
		},
		{
			ID:            uuid.NewString(),
			AccountNumber: "SB9876543210",
			AccountType:   models.AccountCurrent,
			Balance:       100000,
			CustomerName:  "Jane Customer",
			Email:         "jane.customer@bank.com",
			Phone:         "9123456789",
			Address:       "Bangalore",
			Password:      hash,
			Role:          models.RoleCustomer,
			Status:        models.AccountActive,
			CreatedAt:     now,
		},
	}, nil
}
