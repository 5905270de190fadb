package categories

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
	ListCategories(ctx context.Context, userID int) ([]models.Category, error)
	GetCategory(ctx context.Context, id, userID int) (models.Category, error)
	CreateCategory(ctx context.Context, userID int, f repositories.Fields) (models.Category, error)
	UpdateCategory(ctx context.Context, id, userID int, f repositories.Fields) (models.Category, error)
	DeleteCategory(ctx context.Context, id, userID int) error
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Collection serves GET (list) and POST (create) on /api/categories.
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

// Item serves GET, PUT and DELETE on /api/categories/{id}.
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

	categories, err := h.store.ListCategories(ctx, userID)
	if err != nil {
		handlers.WriteDomainError(w, err, "Category not found")
		return
	}

	response := make([]map[string]any, 0, len(categories))
	for i := range categories {
		response = append(response, categories[i].Serialize())
	}
	utils.WriteJSON(w, http.StatusOK, response)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "category")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	category, err := h.store.GetCategory(ctx, id, userID)
	if err != nil {
		handlers.WriteDomainError(w, err, "Category not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, category.Serialize())
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}

	fields, err := repositories.DecodeFields(r.Body)
	if err != nil {
		handlers.WriteDomainError(w, err, "Category not found")
		return
	}
	defer r.Body.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	category, err := h.store.CreateCategory(ctx, userID, fields)
	if err != nil {
		handlers.WriteDomainError(w, err, "Category not found")
		return
	}
	utils.WriteJSON(w, http.StatusCreated, category.Serialize())
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "category")
	if !ok {
		return
	}

	fields, err := repositories.DecodeFields(r.Body)
	if err != nil {
		handlers.WriteDomainError(w, err, "Category not found")
		return
	}
	defer r.Body.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	category, err := h.store.UpdateCategory(ctx, id, userID, fields)
	if err != nil {
		handlers.WriteDomainError(w, err, "Category not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, category.Serialize())
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := handlers.UserID(w, r)
	if !ok {
		return
	}
	id, ok := handlers.ParseID(w, r, "category")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.store.DeleteCategory(ctx, id, userID); err != nil {
		handlers.WriteDomainError(w, err, "Category not found")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"message": "Category successfully deleted"})
}
