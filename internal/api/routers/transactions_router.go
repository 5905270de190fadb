package routers

import (
	"net/http"

	"github.com/muhammadelshareif/BudgetBuddy/internal/api/handlers/transactions"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
)

func transactionsRouter(store *repositories.Store) *http.ServeMux {
	handler := transactions.NewHandler(store)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/transactions", handler.Collection)
	mux.HandleFunc("/api/transactions/{id}", handler.Item)

	return mux
}
