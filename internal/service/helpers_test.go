package service_test

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/session"
	"github.com/nivethitha870/BANK/internal/storage"
	"github.com/nivethitha870/BANK/internal/utils"
)

const testTransferLimit = 10000

type testEnv struct {
	store           *storage.Store
	accountRepo     *repository.AccountRepository
	transactionRepo *repository.TransactionRepository
	cardRepo        *repository.CardRepository
	loanRepo        *repository.LoanRepository
	investmentRepo  *repository.InvestmentRepository
	sessions        *session.Manager
	tokens          *utils.TokenSource
}

// newTestEnv builds a file-backed store in a temp dir. Accounts given here
// replace the sample seed data so each test controls its own fixtures.
func newTestEnv(t *testing.T, accounts ...models.Account) *testEnv {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "bank.json"))
	require.NoError(t, err)

	if accounts == nil {
		accounts = []models.Account{}
	}
	raw, err := json.Marshal(accounts)
	require.NoError(t, err)
	require.NoError(t, store.Set(storage.KeyAccounts, raw))

	return &testEnv{
		store:           store,
		accountRepo:     repository.NewAccountRepository(store),
		transactionRepo: repository.NewTransactionRepository(store),
		cardRepo:        repository.NewCardRepository(store),
		loanRepo:        repository.NewLoanRepository(store),
		investmentRepo:  repository.NewInvestmentRepository(store),
		sessions:        session.NewManager(store),
		tokens:          utils.NewTokenSource("test-secret", time.Hour),
	}
}

func activeAccount(t *testing.T, number string, balance float64) models.Account {
	t.Helper()
	hash, err := utils.HashPassword("secret!1")
	require.NoError(t, err)
	return models.Account{
		ID:            "id-" + number,
		AccountNumber: number,
		AccountType:   models.AccountSavings,
		Balance:       balance,
		CustomerName:  "Holder " + number,
		Email:         number + "@bank.test",
		Password:      hash,
		Role:          models.RoleCustomer,
		Status:        models.AccountActive,
		CreatedAt:     time.Now().UTC(),
	}
}

func (e *testEnv) account(t *testing.T, number string) *models.Account {
	t.Helper()
	account, err := e.accountRepo.GetByNumber(number)
	require.NoError(t, err)
	return account
}

// backdateInvestment rewrites a stored investment's maturity date, something
// no public update path allows.
func backdateInvestment(t *testing.T, env *testEnv, id string, maturity time.Time) {
	t.Helper()
	raw, err := env.store.Get(storage.KeyInvestments)
	require.NoError(t, err)
	var investments []models.Investment
	require.NoError(t, json.Unmarshal(raw, &investments))
	for i := range investments {
		if investments[i].ID == id {
			investments[i].MaturityDate = maturity
		}
	}
	raw, err = json.Marshal(investments)
	require.NoError(t, err)
	require.NoError(t, env.store.Set(storage.KeyInvestments, raw))
}
