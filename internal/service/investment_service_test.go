package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/service"
)

func newInvestmentService(t *testing.T, accounts ...models.Account) (*service.InvestmentService, *testEnv) {
	t.Helper()
	env := newTestEnv(t, accounts...)
	return service.NewInvestmentService(env.store, env.investmentRepo, env.accountRepo), env
}

func TestInvestmentService_CreateDeductsBalance(t *testing.T) {
	svc, env := newInvestmentService(t, activeAccount(t, "SB1111111111", 20000))

	investment, err := svc.Create("SB1111111111", &models.InvestmentRequest{
		InvestmentType: models.InvestmentFD,
		Amount:         10000,
		Tenure:         12,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, investment.ID)
	assert.Equal(t, 6.5, investment.InterestRate, "rate comes from the investment type")
	assert.Equal(t, models.InvestmentActive, investment.Status)
	assert.Equal(t, "Holder SB1111111111", investment.CustomerName)
	assert.False(t, investment.MaturityDate.IsZero())

	assert.Equal(t, 10000.0, env.account(t, "SB1111111111").Balance)
}

func TestInvestmentService_CreateRejections(t *testing.T) {
	tests := []struct {
		name string
		req  models.InvestmentRequest
	}{
		{"unknown investment type", models.InvestmentRequest{InvestmentType: "crypto", Amount: 5000, Tenure: 12}},
		{"FD below minimum", models.InvestmentRequest{InvestmentType: models.InvestmentFD, Amount: 999, Tenure: 12}},
		{"RD below minimum", models.InvestmentRequest{InvestmentType: models.InvestmentRD, Amount: 499, Tenure: 12}},
		{"mutual fund below minimum", models.InvestmentRequest{InvestmentType: models.InvestmentMutualFund, Amount: 499, Tenure: 12}},
		{"zero tenure", models.InvestmentRequest{InvestmentType: models.InvestmentFD, Amount: 5000}},
		{"insufficient balance", models.InvestmentRequest{InvestmentType: models.InvestmentFD, Amount: 5000, Tenure: 12}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, env := newInvestmentService(t, activeAccount(t, "SB1111111111", 2000))

			_, err := svc.Create("SB1111111111", &tt.req)
			assert.ErrorIs(t, err, service.ErrValidation)

			// A rejected investment must not touch the balance.
			assert.Equal(t, 2000.0, env.account(t, "SB1111111111").Balance)
			all, err := svc.ListAll()
			require.NoError(t, err)
			assert.Empty(t, all)
		})
	}
}

func TestInvestmentService_ReadsCarryMaturityValue(t *testing.T) {
	svc, _ := newInvestmentService(t, activeAccount(t, "SB1111111111", 50000))

	_, err := svc.Create("SB1111111111", &models.InvestmentRequest{
		InvestmentType: models.InvestmentFD,
		Amount:         10000,
		Tenure:         12,
	})
	require.NoError(t, err)
	_, err = svc.Create("SB1111111111", &models.InvestmentRequest{
		InvestmentType: models.InvestmentMutualFund,
		Amount:         5000,
		Tenure:         6,
	})
	require.NoError(t, err)

	views, err := svc.GetByAccount("SB1111111111")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 10650.0, views[0].MaturityValue)
	assert.Equal(t, 5300.0, views[1].MaturityValue)
}

func TestInvestmentService_MarkMatured(t *testing.T) {
	svc, env := newInvestmentService(t, activeAccount(t, "SB1111111111", 20000))

	investment, err := svc.Create("SB1111111111", &models.InvestmentRequest{
		InvestmentType: models.InvestmentRD,
		Amount:         5000,
		Tenure:         12,
	})
	require.NoError(t, err)

	// The maturity date is a year out, so the transition is refused.
	_, err = svc.MarkMatured(investment.ID)
	assert.ErrorIs(t, err, service.ErrValidation)

	// Backdate the stored maturity and retry.
	backdateInvestment(t, env, investment.ID, investment.MaturityDate.AddDate(-2, 0, 0))

	updated, err := svc.MarkMatured(investment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InvestmentMatured, updated.Status)

	_, err = svc.MarkMatured("no-such-investment")
	assert.ErrorIs(t, err, repository.ErrInvestmentNotFound)
}
