package api

import (
	"encoding/json"
	"net/http"

	"github.com/nivethitha870/BANK/internal/dto"
	"github.com/nivethitha870/BANK/internal/middleware"
	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/service"
)

type CardHandler struct {
	cardService *service.CardService
}

func NewCardHandler(cardService *service.CardService) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// Cards dispatches GET (the caller's cards, or all for bankers) and POST
// (a new application).
func (h *CardHandler) Cards(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.apply(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CardHandler) list(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := middleware.CallerAccountNumber(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := middleware.CallerRole(r.Context())

	var (
		cards []models.Card
		err   error
	)
	if role == models.RoleBanker || role == models.RoleAdmin {
		cards, err = h.cardService.ListAll()
	} else {
		cards, err = h.cardService.GetByAccount(accountNumber)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

func (h *CardHandler) apply(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := middleware.CallerAccountNumber(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CardApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	card, err := h.cardService.Apply(accountNumber, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// Approve activates a pending card (banker).
func (h *CardHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.cardService.Approve, "Card approved")
}

// Block blocks a card (banker).
func (h *CardHandler) Block(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.cardService.Block, "Card blocked")
}

func (h *CardHandler) updateStatus(w http.ResponseWriter, r *http.Request, action func(string) (*models.Card, error), message string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	card, err := action(req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Card *models.Card `json:"card"`
		dto.MessageResponse
	}{
		Card:            card,
		MessageResponse: dto.MessageResponse{Message: message, Success: true},
	})
}
