package routers

import (
	"net/http"

	"github.com/muhammadelshareif/BudgetBuddy/internal/api/handlers/auth"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
)

func usersRouter(store *repositories.Store) *http.ServeMux {
	handler := auth.NewHandler(store)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/auth/signup", handler.Signup)
	mux.HandleFunc("/api/auth/login", handler.Login)
	mux.HandleFunc("/api/auth/logout", handler.Logout)

	return mux
}
