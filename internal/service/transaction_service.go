package service

import (
	"context"
	"errors"
	"time"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/storage"
)

type TransactionService struct {
	store           *storage.Store
	accountRepo     *repository.AccountRepository
	transactionRepo *repository.TransactionRepository
	transferLimit   float64
	processingDelay time.Duration
}

func NewTransactionService(
	store *storage.Store,
	accountRepo *repository.AccountRepository,
	transactionRepo *repository.TransactionRepository,
	transferLimit float64,
	processingDelay time.Duration,
) *TransactionService {
	return &TransactionService{
		store:           store,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		transferLimit:   transferLimit,
		processingDelay: processingDelay,
	}
}

// Transfer moves money between two accounts and records the ledger entry.
// Every validation runs before any mutation; the debit, credit and ledger
// append then commit as one atomic store write.
func (s *TransactionService) Transfer(ctx context.Context, fromAccount string, req *models.TransferRequest) (*models.Transaction, error) {
	// 1. Validate the request shape
	if req.ToAccount == "" {
		return nil, validationError("recipient account number is required")
	}
	if req.Amount <= 0 {
		return nil, validationError("amount must be greater than 0")
	}
	if req.Amount > s.transferLimit {
		return nil, validationError("transfer limit is %.0f per operation", s.transferLimit)
	}
	transferType := req.Type
	if transferType == "" {
		transferType = models.TransferIMPS
	}
	switch transferType {
	case models.TransferIMPS, models.TransferNEFT, models.TransferRTGS, models.TransferUPI:
	default:
		return nil, validationError("transfer type must be IMPS, NEFT, RTGS or UPI")
	}
	if req.ToAccount == fromAccount {
		return nil, validationError("cannot transfer to your own account")
	}

	// 2. Simulated processing latency, abandoned cleanly on cancellation
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	// 3. Validate against current balances and commit, all under one write
	category := req.Category
	if category == "" {
		category = "Transfer"
	}
	description := req.Description
	if description == "" {
		description = "Transfer to " + req.ToAccount
	}
	transaction := &models.Transaction{
		FromAccount: fromAccount,
		ToAccount:   req.ToAccount,
		Amount:      req.Amount,
		Type:        transferType,
		Category:    category,
		Status:      models.TransactionCompleted,
		Timestamp:   time.Now().UTC(),
		Description: description,
	}

	err := s.store.Update(func(b *storage.Batch) error {
		sender, err := s.accountRepo.GetByNumberIn(b, fromAccount)
		if err != nil {
			return err
		}
		recipient, err := s.accountRepo.GetByNumberIn(b, req.ToAccount)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return validationError("recipient account does not exist")
			}
			return err
		}
		if req.Amount > sender.Balance {
			return validationError("insufficient balance")
		}
		if sender.Status != models.AccountActive {
			return validationError("sender account is not active")
		}
		if recipient.Status != models.AccountActive {
			return validationError("recipient account is not active")
		}

		debited := sender.Balance - req.Amount
		credited := recipient.Balance + req.Amount
		if _, err := s.accountRepo.UpdateIn(b, sender.ID, models.AccountUpdate{Balance: &debited}); err != nil {
			return err
		}
		if _, err := s.accountRepo.UpdateIn(b, recipient.ID, models.AccountUpdate{Balance: &credited}); err != nil {
			return err
		}
		return s.transactionRepo.CreateIn(b, transaction)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// GetHistory returns the transactions involving an account, sender or
// recipient side.
func (s *TransactionService) GetHistory(accountNumber string) ([]models.Transaction, error) {
	return s.transactionRepo.GetByAccount(accountNumber)
}

// ListAll returns the full ledger, for the admin monitoring view.
func (s *TransactionService) ListAll() ([]models.Transaction, error) {
	return s.transactionRepo.GetAll()
}

func (s *TransactionService) wait(ctx context.Context) error {
	if s.processingDelay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.processingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
