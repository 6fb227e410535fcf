package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/storage"
)

// ErrCardNotFound reports a lookup that matched no card.
var ErrCardNotFound = errors.New("card not found")

type CardRepository struct {
	store *storage.Store
}

func NewCardRepository(store *storage.Store) *CardRepository {
	return &CardRepository{store: store}
}

// GetAll returns every card in insertion order.
func (r *CardRepository) GetAll() ([]models.Card, error) {
	if err := EnsureSeeded(r.store); err != nil {
		return nil, err
	}
	raw, err := r.store.Get(storage.KeyCards)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Card{}, nil
		}
		return nil, err
	}
	return decodeCards(raw)
}

// GetByAccount returns the cards issued against an account number.
func (r *CardRepository) GetByAccount(accountNumber string) ([]models.Card, error) {
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	matched := []models.Card{}
	for _, card := range all {
		if card.AccountNumber == accountNumber {
			matched = append(matched, card)
		}
	}
	return matched, nil
}

// Create assigns a fresh id, appends the card and persists the collection.
func (r *CardRepository) Create(card *models.Card) error {
	if err := EnsureSeeded(r.store); err != nil {
		return err
	}
	return r.store.Update(func(b *storage.Batch) error {
		cards, err := cardsIn(b)
		if err != nil {
			return err
		}
		card.ID = uuid.NewString()
		cards = append(cards, *card)
		return putCards(b, cards)
	})
}

// Update merges the non-nil fields of update into the card with the given id.
// Returns ErrCardNotFound if no card has that id.
func (r *CardRepository) Update(id string, update models.CardUpdate) (*models.Card, error) {
	var updated *models.Card
	err := r.store.Update(func(b *storage.Batch) error {
		cards, err := cardsIn(b)
		if err != nil {
			return err
		}
		for i := range cards {
			if cards[i].ID != id {
				continue
			}
			if update.Limit != nil {
				cards[i].Limit = *update.Limit
			}
			if update.Status != nil {
				cards[i].Status = *update.Status
			}
			updated = &cards[i]
			return putCards(b, cards)
		}
		return ErrCardNotFound
	})
	return updated, err
}

func cardsIn(b *storage.Batch) ([]models.Card, error) {
	raw, err := b.Get(storage.KeyCards)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []models.Card{}, nil
		}
		return nil, err
	}
	return decodeCards(raw)
}

func putCards(b *storage.Batch, cards []models.Card) error {
	raw, err := json.Marshal(cards)
	if err != nil {
		return fmt.Errorf("failed to encode cards: %w", err)
	}
	b.Set(storage.KeyCards, raw)
	return nil
}

func decodeCards(raw []byte) ([]models.Card, error) {
	var cards []models.Card
	if err := json.Unmarshal(raw, &cards); err != nil {
		return nil, fmt.Errorf("failed to decode cards: %w", err)
	}
	return cards, nil
}
