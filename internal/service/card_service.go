package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/repository"
)

// Default spending limit assigned to approved credit cards.
const defaultCreditLimit = 50000

type CardService struct {
	cardRepo    *repository.CardRepository
	accountRepo *repository.AccountRepository
}

func NewCardService(cardRepo *repository.CardRepository, accountRepo *repository.AccountRepository) *CardService {
	return &CardService{cardRepo: cardRepo, accountRepo: accountRepo}
}

// Apply files a card application for an account. The card number, CVV and
// expiry are generated here; the card waits in pending until a banker acts.
func (s *CardService) Apply(accountNumber string, req *models.CardApplicationRequest) (*models.Card, error) {
	// 1. Validate the card type
	switch req.CardType {
	case models.CardDebit, models.CardCredit, models.CardVirtual:
	default:
		return nil, validationError("card type must be debit, credit or virtual")
	}

	// 2. Resolve the applying account
	account, err := s.accountRepo.GetByNumber(accountNumber)
	if err != nil {
		return nil, err
	}

	// 3. Generate card details: 16 digits in groups of 4, 3-digit CVV,
	//    expiry three years out as MM/YY
	expiry := time.Now().AddDate(3, 0, 0)
	card := &models.Card{
		CardNumber:    generateCardNumber(),
		CardType:      req.CardType,
		AccountNumber: account.AccountNumber,
		CustomerName:  account.CustomerName,
		ExpiryDate:    fmt.Sprintf("%02d/%02d", int(expiry.Month()), expiry.Year()%100),
		CVV:           fmt.Sprintf("%03d", rand.Intn(900)+100),
		Status:        models.CardPending,
	}
	if req.CardType == models.CardCredit {
		card.Limit = defaultCreditLimit
	}

	// 4. Persist
	if err := s.cardRepo.Create(card); err != nil {
		return nil, err
	}
	return card, nil
}

// GetByAccount returns the cards issued against an account.
func (s *CardService) GetByAccount(accountNumber string) ([]models.Card, error) {
	return s.cardRepo.GetByAccount(accountNumber)
}

// ListAll returns every card, for the banker's approval queue.
func (s *CardService) ListAll() ([]models.Card, error) {
	return s.cardRepo.GetAll()
}

// Approve activates a pending card.
func (s *CardService) Approve(cardID string) (*models.Card, error) {
	status := models.CardActive
	return s.cardRepo.Update(cardID, models.CardUpdate{Status: &status})
}

// Block blocks a card, both the banker's reject action and the block action
// on an active card.
func (s *CardService) Block(cardID string) (*models.Card, error) {
	status := models.CardBlocked
	return s.cardRepo.Update(cardID, models.CardUpdate{Status: &status})
}

func generateCardNumber() string {
	groups := make([]byte, 0, 19)
	for i := 0; i < 4; i++ {
		if i > 0 {
			groups = append(groups, ' ')
		}
		groups = append(groups, fmt.Sprintf("%04d", rand.Intn(9000)+1000)...)
	}
	return string(groups)
}
