package service_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
	"github.com/nivethitha870/BANK/internal/service"
)

var (
	cardNumberFormat = regexp.MustCompile(`^\d{4} \d{4} \d{4} \d{4}$`)
	cvvFormat        = regexp.MustCompile(`^\d{3}$`)
	expiryFormat     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

func newCardService(t *testing.T, accounts ...models.Account) (*service.CardService, *testEnv) {
	t.Helper()
	env := newTestEnv(t, accounts...)
	return service.NewCardService(env.cardRepo, env.accountRepo), env
}

func TestCardService_Apply(t *testing.T) {
	svc, _ := newCardService(t, activeAccount(t, "SB1111111111", 1000))

	card, err := svc.Apply("SB1111111111", &models.CardApplicationRequest{CardType: models.CardDebit})
	require.NoError(t, err)

	assert.NotEmpty(t, card.ID)
	assert.Regexp(t, cardNumberFormat, card.CardNumber)
	assert.Regexp(t, cvvFormat, card.CVV)
	assert.Regexp(t, expiryFormat, card.ExpiryDate)
	assert.Equal(t, models.CardPending, card.Status)
	assert.Equal(t, "Holder SB1111111111", card.CustomerName)
	assert.Zero(t, card.Limit, "debit cards carry no spending limit")
}

func TestCardService_ApplyCreditCardGetsDefaultLimit(t *testing.T) {
	svc, _ := newCardService(t, activeAccount(t, "SB1111111111", 1000))

	card, err := svc.Apply("SB1111111111", &models.CardApplicationRequest{CardType: models.CardCredit})
	require.NoError(t, err)
	assert.Equal(t, 50000.0, card.Limit)
}

func TestCardService_ApplyRejections(t *testing.T) {
	svc, _ := newCardService(t, activeAccount(t, "SB1111111111", 1000))

	_, err := svc.Apply("SB1111111111", &models.CardApplicationRequest{CardType: "prepaid"})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Apply("SB9999999999", &models.CardApplicationRequest{CardType: models.CardDebit})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestCardService_ApproveAndBlock(t *testing.T) {
	svc, _ := newCardService(t, activeAccount(t, "SB1111111111", 1000))

	card, err := svc.Apply("SB1111111111", &models.CardApplicationRequest{CardType: models.CardVirtual})
	require.NoError(t, err)

	approved, err := svc.Approve(card.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CardActive, approved.Status)

	blocked, err := svc.Block(card.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CardBlocked, blocked.Status)

	_, err = svc.Approve("no-such-card")
	assert.ErrorIs(t, err, repository.ErrCardNotFound)
}

func TestCardService_GetByAccount(t *testing.T) {
	svc, _ := newCardService(t,
		activeAccount(t, "SB1111111111", 1000),
		activeAccount(t, "SB2222222222", 1000),
	)

	_, err := svc.Apply("SB1111111111", &models.CardApplicationRequest{CardType: models.CardDebit})
	require.NoError(t, err)
	_, err = svc.Apply("SB2222222222", &models.CardApplicationRequest{CardType: models.CardDebit})
	require.NoError(t, err)

	mine, err := svc.GetByAccount("SB1111111111")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "SB1111111111", mine[0].AccountNumber)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
