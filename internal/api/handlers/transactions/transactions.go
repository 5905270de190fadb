package transactions

import (
	"context"
	"net/http"
	"time"

	"github.com/muhammadelshareif/BudgetBuddy/internal/api/handlers"
	"github.com/muhammadelshareif/BudgetBuddy/internal/models"
	"github.com/muhammadelshareif/BudgetBuddy/internal/repositories"
	"github.com/muhammadelshareif/BudgetBuddy/pkg/utils"
)

type Store interface {
	ListTransactions(ctx context.Context, userID int) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id, userID int) (models.Transaction, error)
	CreateTransaction(ctx context.Context, userID int, f repositories.Fields) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, id, userID int, f repositories.Fields) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id, userID int) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) Item(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		utils.WriteError(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	transactions, err := h.store.ListTransactions(ctx, userID)
	if err != nil {
		handlers.WriteDomainError(w, err, "Transaction not found")
		return
	}

	response := make([]map[string]any, 0, len(transactions))
	for i := range transactions {
		response = append(response, transactions[i].Serialize())
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "transaction")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	transaction, err := h.store.GetTransaction(ctx, id, userID)
	if err != nil {
		handlers.WriteDomainError(w, err, "Transaction not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, transaction.Serialize())
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}

	fields, err := repositories.DecodeFields(r.Body)
	if err != nil {
		handlers.WriteDomainError(w, err, "Transaction not found")
		return
	}
	defer r.Body.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	transaction, err := h.store.CreateTransaction(ctx, userID, fields)
	if err != nil {
		handlers.WriteDomainError(w, err, "Transaction not found")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, transaction.Serialize())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "transaction")
	if !ok {
		return
	}

	fields, err := repositories.DecodeFields(r.Body)
	if err != nil {
		handlers.WriteDomainError(w, err, "Transaction not found")
		return
	}
	defer r.Body.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	transaction, err := h.store.UpdateTransaction(ctx, id, userID, fields)
	if err != nil {
		handlers.WriteDomainError(w, err, "Transaction not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, transaction.Serialize())
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "transaction")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.DeleteTransaction(ctx, id, userID); err != nil {
		handlers.WriteDomainError(w, err, "Transaction not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"message": "Transaction successfully deleted"})
}
