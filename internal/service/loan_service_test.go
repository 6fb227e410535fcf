package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/service"
)

func newLoanService(t *testing.T, accounts ...models.Account) (*service.LoanService, *testEnv) {
	t.Helper()
	env := newTestEnv(t, accounts...)
	return service.NewLoanService(env.loanRepo, env.accountRepo), env
}

func TestLoanService_Apply(t *testing.T) {
	tests := []struct {
		name     string
		loanType string
		amount   float64
		tenure   int
		wantRate float64
		wantEMI  float64
	}{
		{"personal", models.LoanPersonal, 100000, 12, 10.5, 8815},
		{"home", models.LoanHome, 500000, 240, 8.5, 4339},
		{"car", models.LoanCar, 200000, 60, 9.0, 4152},
		{"education", models.LoanEducation, 50000, 24, 7.5, 2250},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newLoanService(t, activeAccount(t, "SB1111111111", 1000))

			loan, err := svc.Apply("SB1111111111", &models.LoanApplicationRequest{
				LoanType: tt.loanType,
				Amount:   tt.amount,
				Tenure:   tt.tenure,
			})
			require.NoError(t, err)

			assert.NotEmpty(t, loan.ID)
			assert.Equal(t, tt.wantRate, loan.InterestRate, "rate comes from the loan type")
			assert.Equal(t, tt.wantEMI, loan.EMI)
			assert.Equal(t, models.LoanPending, loan.Status)
			assert.Equal(t, "Holder SB1111111111", loan.CustomerName)
			assert.False(t, loan.AppliedDate.IsZero())
		})
	}
}

func TestLoanService_ApplyRejections(t *testing.T) {
	svc, _ := newLoanService(t, activeAccount(t, "SB1111111111", 1000))

	tests := []struct {
		name string
		req  models.LoanApplicationRequest
	}{
		{"unknown loan type", models.LoanApplicationRequest{LoanType: "payday", Amount: 1000, Tenure: 12}},
		{"zero amount", models.LoanApplicationRequest{LoanType: models.LoanPersonal, Tenure: 12}},
		{"zero tenure", models.LoanApplicationRequest{LoanType: models.LoanPersonal, Amount: 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Apply("SB1111111111", &tt.req)
			assert.ErrorIs(t, err, service.ErrValidation)
		})
	}

	_, err := svc.Apply("SB9999999999", &models.LoanApplicationRequest{LoanType: models.LoanPersonal, Amount: 1000, Tenure: 12})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestLoanService_ApproveAndReject(t *testing.T) {
	svc, _ := newLoanService(t, activeAccount(t, "SB1111111111", 1000))

	first, err := svc.Apply("SB1111111111", &models.LoanApplicationRequest{LoanType: models.LoanPersonal, Amount: 100000, Tenure: 12})
	require.NoError(t, err)
	second, err := svc.Apply("SB1111111111", &models.LoanApplicationRequest{LoanType: models.LoanCar, Amount: 200000, Tenure: 60})
	require.NoError(t, err)

	approved, err := svc.Approve(first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanApproved, approved.Status)
	assert.Equal(t, first.EMI, approved.EMI, "EMI is fixed at application time")

	rejected, err := svc.Reject(second.ID)
	require.NoError(t, err)
	assert.Equal(t, models.LoanRejected, rejected.Status)

	_, err = svc.Approve("no-such-loan")
	assert.ErrorIs(t, err, repository.ErrLoanNotFound)

	mine, err := svc.GetByAccount("SB1111111111")
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
