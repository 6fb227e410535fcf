package api

import (
	"encoding/json"
	"net/http"

	"github.com/nivethitha870/BANK/internal/dto"
	"github.com/nivethitha870/BANK/internal/middleware"
	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/service"
)

type LoanHandler struct {
	loanService *service.LoanService
}

func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// Loans dispatches GET (the caller's loans, or all for bankers) and POST
// (a new application).
func (h *LoanHandler) Loans(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.apply(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *LoanHandler) list(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := middleware.CallerAccountNumber(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	role, _ := middleware.CallerRole(r.Context())

	var (
		loans []models.Loan
		err   error
	)
	if role == models.RoleBanker || role == models.RoleAdmin {
		loans, err = h.loanService.ListAll()
	} else {
		loans, err = h.loanService.GetByAccount(accountNumber)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loans)
}

func (h *LoanHandler) apply(w http.ResponseWriter, r *http.Request) {
	accountNumber, ok := middleware.CallerAccountNumber(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.LoanApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	loan, err := h.loanService.Apply(accountNumber, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, loan)
}

// Approve marks a pending loan approved (banker).
func (h *LoanHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.loanService.Approve, "Loan approved")
}

// Reject marks a pending loan rejected (banker).
func (h *LoanHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.loanService.Reject, "Loan rejected")
}

func (h *LoanHandler) updateStatus(w http.ResponseWriter, r *http.Request, action func(string) (*models.Loan, error), message string) {
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

	loan, err := action(req.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		Loan *models.Loan `json:"loan"`
		dto.MessageResponse
	}{
		Loan:            loan,
		MessageResponse: dto.MessageResponse{Message: message, Success: true},
	})
}
