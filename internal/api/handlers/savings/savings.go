package savings

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
	ListSavingsGoals(ctx context.Context, userID int) ([]models.SavingsGoal, error)
	GetSavingsGoal(ctx context.Context, id, userID int) (models.SavingsGoal, error)
	CreateSavingsGoal(ctx context.Context, userID int, f repositories.Fields) (models.SavingsGoal, error)
	UpdateSavingsGoal(ctx context.Context, id, userID int, f repositories.Fields) (models.SavingsGoal, error)
	DeleteSavingsGoal(ctx context.Context, id, userID int) error
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

	goals, err := h.store.ListSavingsGoals(ctx, userID)
	if err != nil {
		handlers.WriteDomainError(w, err, "Savings goal not found")
		return
	}

	response := make([]map[string]any, 0, len(goals))
	for i := range goals {
		response = append(response, goals[i].Serialize())
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "savings goal")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	goal, err := h.store.GetSavingsGoal(ctx, id, userID)
	if err != nil {
		handlers.WriteDomainError(w, err, "Savings goal not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, goal.Serialize())
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}

	fields, err := repositories.DecodeFields(r.Body)
	if err != nil {
		handlers.WriteDomainError(w, err, "Savings goal not found")
		return
	}
	defer r.Body.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	goal, err := h.store.CreateSavingsGoal(ctx, userID, fields)
	if err != nil {
		handlers.WriteDomainError(w, err, "Savings goal not found")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, goal.Serialize())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "savings goal")
	if !ok {
		return
	}

	fields, err := repositories.DecodeFields(r.Body)
	if err != nil {
		handlers.WriteDomainError(w, err, "Savings goal not found")
		return
	}
	defer r.Body.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	goal, err := h.store.UpdateSavingsGoal(ctx, id, userID, fields)
	if err != nil {
		handlers.WriteDomainError(w, err, "Savings goal not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, goal.Serialize())
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "savings goal")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.DeleteSavingsGoal(ctx, id, userID); err != nil {
		handlers.WriteDomainError(w, err, "Savings goal not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"message": "Savings goal successfully deleted"})
}
