package api

import (
	"encoding/json"
	"net/http"

	"github.com/nivethitha870/BANK/internal/middleware"
	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/service"
)

type InvestmentHandler struct {
	investmentService *service.InvestmentService
}

func NewInvestmentHandler(investmentService *service.InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{investmentService: investmentService}
}

// Investments dispatches GET (the caller's investments, with maturity
// values, or all for bankers) and POST (open a new one).
func (h *InvestmentHandler) Investments(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *InvestmentHandler) list(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := middleware.CallerAccountNumber(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := middleware.CallerRole(r.Context())

	var (
		investments []service.InvestmentView
		err         error
	)
	if role == models.RoleBanker || role == models.RoleAdmin {
		investments, err = h.investmentService.ListAll()
	} else {
		investments, err = h.investmentService.GetByAccount(accountNumber)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, investments)
}

func (h *InvestmentHandler) create(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := middleware.CallerAccountNumber(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.InvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	investment, err := h.investmentService.Create(accountNumber, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, investment)
}
