package routers

import (
	"net/http"

	"github.com/muhammadelshareif/BudgetBuddy/internal/api/handlers/savings"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
)

func savingsRouter(store *repositories.Store) *http.ServeMux {
	handler := savings.NewHandler(store)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/savings-goals", handler.Collection)
	mux.HandleFunc("/api/savings-goals/{id}", handler.Item)

	return mux
}
