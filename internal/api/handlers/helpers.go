package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
)

// UserID pulls the acting user id out of the request context. A missing
// id means the JWT middleware never ran or the claim is malformed; the
// handler body must not execute in that case.
func UserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

// ParseID reads the {id} path value as an integer.
func ParseID(w http.ResponseWriter, r *http.Request, label string) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteError(w, "invalid "+label+" ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// WriteDomainError maps store failures onto the response contract:
// NotFound 404, Forbidden 403 ("Unauthorized"), validation 400 with the
// specific message, anything else an opaque 500.
func WriteDomainError(w http.ResponseWriter, err error, notFoundMessage string) {
	var validationErr *repositories.ValidationError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		utils.WriteError(w, notFoundMessage, http.StatusNotFound)
	case errors.Is(err, repositories.ErrForbidden):
		utils.WriteError(w, "Unauthorized", http.StatusForbidden)
	case errors.As(err, &validationErr):
		utils.WriteError(w, validationErr.Message, http.StatusBadRequest)
	default:
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
