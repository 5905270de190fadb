package routers

import (
	"net/http"

	"github.com/muhammadelshareif/BudgetBuddy/internal/api/handlers/budgets"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
)

func budgetsRouter(store *repositories.Store) *http.ServeMux {
	handler := budgets.NewHandler(store)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/budgets", handler.Collection)
	mux.HandleFunc("/api/budgets/{id}", handler.Item)

	return mux
}
