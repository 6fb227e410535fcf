package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/nivethitha870/BANK/internal/middleware"
	"github.com/nivethitha870/BANK/internal/models"
	"github.com/nivethitha870/BANK/internal/utils"
)

// Handlers bundles every handler the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Accounts     *AccountHandler
	Transactions *TransactionHandler
	Cards        *CardHandler
	Loans        *LoanHandler
	Investments  *InvestmentHandler
}

// SetupRoutes mounts the API. Register and login are public; everything
// else requires a bearer token, with banker/admin gates on the approval and
// management endpoints.
func SetupRoutes(h Handlers, tokens *utils.TokenSource, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	authed := middleware.Auth(tokens)
	bankerOnly := middleware.RequireRole(models.RoleBanker, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// Public routes
	mux.HandleFunc("/api/auth/register", h.Auth.Register)
	mux.HandleFunc("/api/auth/login", h.Auth.Login)

	// Protected routes
	mux.Handle("/api/auth/me", authed(http.HandlerFunc(h.Auth.Me)))
	mux.Handle("/api/auth/logout", authed(http.HandlerFunc(h.Auth.Logout)))
	mux.Handle("/api/profile", authed(http.HandlerFunc(h.Accounts.UpdateProfile)))

	mux.Handle("/api/accounts", authed(bankerOnly(http.HandlerFunc(h.Accounts.Accounts))))
	mux.Handle("/api/accounts/status", authed(adminOnly(http.HandlerFunc(h.Accounts.SetStatus))))

	mux.Handle("/api/transactions", authed(http.HandlerFunc(h.Transactions.History)))
	mux.Handle("/api/transactions/transfer", authed(http.HandlerFunc(h.Transactions.Transfer)))

	mux.Handle("/api/cards", authed(http.HandlerFunc(h.Cards.Cards)))
	mux.Handle("/api/cards/approve", authed(bankerOnly(http.HandlerFunc(h.Cards.Approve))))
	mux.Handle("/api/cards/block", authed(bankerOnly(http.HandlerFunc(h.Cards.Block))))

	mux.Handle("/api/loans", authed(http.HandlerFunc(h.Loans.Loans)))
	mux.Handle("/api/loans/approve", authed(bankerOnly(http.HandlerFunc(h.Loans.Approve))))
	mux.Handle("/api/loans/reject", authed(bankerOnly(http.HandlerFunc(h.Loans.Reject))))

	mux.Handle("/api/investments", authed(http.HandlerFunc(h.Investments.Investments)))

	return middleware.RequestLogger(logger)(mux)
}
