package openitem

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cwehmeyer/belegwerk/internal/openitem"
)

type Handler struct {
	svc *openitem.Service
}

func NewHandler(svc *openitem.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Patch("/{id}/paid", h.markPaid)
}

type createOpenItemRequest struct {
	CustomerID  uuid.UUID `json:"customer_id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	DueDate     string    `json:"due_date"`
}

type openItemResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	DueDate     string    `json:"due_date"`
	Paid        bool      `json:"paid"`
}

func toResponse(item *openitem.OpenItem) openItemResponse {
	return openItemResponse{
		ID:          item.ID,
		CustomerID:  item.CustomerID,
		Description: item.Description,
		Amount:      item.Amount.StringFixed(2),
		DueDate:     item.DueDate.Format(time.DateOnly),
		Paid:        item.Paid,
	}
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createOpenItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		http.Error(w, "invalid amount", http.StatusBadRequest)
		return
	}

	dueDate, err := time.Parse(time.DateOnly, req.DueDate)
	if err != nil {
		http.Error(w, "invalid due_date", http.StatusBadRequest)
		return
	}

	item, err := h.svc.Create(r.Context(), openitem.CreateParams{
		CustomerID:  req.CustomerID,
		Description: req.Description,
		Amount:      amount,
		DueDate:     dueDate,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(item)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filter := openitem.ListFilter{}

	if s := r.URL.Query().Get("customer_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			http.Error(w, "invalid customer_id", http.StatusBadRequest)
			return
		}

		filter.CustomerID = &id
	}

	if r.URL.Query().Get("unpaid") == "true" {
		filter.Unpaid = true
	}

	items, err := h.svc.List(r.Context(), filter)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]openItemResponse, len(items))
	for i, item := range items {
		resp[i] = toResponse(item)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.MarkPaid(r.Context(), id); err != nil {
		if errors.Is(err, openitem.ErrNotFound) {
			http.Error(w, "open item not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
