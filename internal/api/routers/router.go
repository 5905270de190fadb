package routers

import (
	"net/http"

	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
)

func MainRouter(store *repositories.Store) *http.ServeMux {
	mux := http.NewServeMux()

	uRouter := usersRouter(store)
	mux.Handle("/api/auth/", uRouter)

	cRouter := categoriesRouter(store)
	mux.Handle("/api/categories", cRouter)
	mux.Handle("/api/categories/", cRouter)

	tRouter := transactionsRouter(store)
	mux.Handle("/api/transactions", tRouter)
	mux.Handle("/api/transactions/", tRouter)

	bRouter := budgetsRouter(store)
	mux.Handle("/api/budgets", bRouter)
	mux.Handle("/api/budgets/", bRouter)

	sRouter := savingsRouter(store)
	mux.Handle("/api/savings-goals", sRouter)
	mux.Handle("/api/savings-goals/", sRouter)

	return mux
}
