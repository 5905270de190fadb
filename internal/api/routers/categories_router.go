package routers

import (
	"net/http"

	"github.com/muhammadelshareif/BudgetBuddy/internal/api/handlers/categories"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
)

func categoriesRouter(store *repositories.Store) *http.ServeMux {
	handler := categories.NewHandler(store)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/categories", handler.Collection)
	mux.HandleFunc("/api/categories/{id}", handler.Item)

	return mux
}
