package api

import (
	"encoding/json"
	"net/http"

	"github.com/nivethitha870/BANK/internal/dto"
	"github.com/nivethitha870/BANK/internal/middleware"
	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/service"
)

type AccountHandler struct {
	accountService *service.AccountService
	authService    *service.AuthService
}

func NewAccountHandler(accountService *service.AccountService, authService *service.AuthService) *AccountHandler {
	return &AccountHandler{accountService: accountService, authService: authService}
}

// Accounts dispatches GET (list, banker/admin) and POST (create, banker).
func (h *AccountHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *AccountHandler) list(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.ListAccounts()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToAccountDTOList(accounts))
}

// create opens an account on behalf of a customer, with an opening balance.
func (h *AccountHandler) create(w http.ResponseWriter, r *http.Request) {
	role, _ := middleware.CallerRole(r.Context())
	if role != models.RoleBanker && role != models.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.authService.Register(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ToAccountDTO(account))
}

// SetStatus activates or deactivates an account (admin).
func (h *AccountHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		AccountNumber string `json:"accountNumber"`
		Status        string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	account, err := h.accountService.SetStatus(req.AccountNumber, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToAccountDTO(account))
}

// UpdateProfile edits the caller's own profile, resolved by email.
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	accountNumber, ok := middleware.CallerAccountNumber(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	caller, err := h.accountService.GetByNumber(accountNumber)
	if err != nil {
		writeError(w, err)
		return
	}
	account, err := h.accountService.UpdateProfile(caller.Email, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToAccountDTO(account))
}
