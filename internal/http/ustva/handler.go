package ustva

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/cwehmeyer/belegwerk/internal/ustva"
)

type Handler struct {
	svc *ustva.Service
}

func NewHandler(svc *ustva.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/generate/{customerID}/{period}", h.generate)
	r.Get("/{customerID}", h.list)
}

type summaryResponse struct {
	ID          uuid.UUID `json:"id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	Period      string    `json:"period"`
	NetSum      string    `json:"net_sum"`
	TaxSum      string    `json:"tax_sum"`
	GrossSum    string    `json:"gross_sum"`
	SalesTax    string    `json:"sales_tax"`
	InputTax    string    `json:"input_tax"`
	Liability   string    `json:"liability"`
	GeneratedAt time.Time `json:"generated_at"`
}

func toResponse(sum *ustva.Summary) summaryResponse {
	return summaryResponse{
		ID:          sum.ID,
		CustomerID:  sum.CustomerID,
		Period:      sum.Period,
		NetSum:      sum.NetSum.StringFixed(2),
		TaxSum:      sum.TaxSum.StringFixed(2),
		GrossSum:    sum.GrossSum.StringFixed(2),
		SalesTax:    sum.SalesTax.StringFixed(2),
		InputTax:    sum.InputTax.StringFixed(2),
		Liability:   sum.Liability.StringFixed(2),
		GeneratedAt: sum.GeneratedAt,
	}
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerID"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	period, err := ustva.ParsePeriod(chi.URLParam(r, "period"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, created, err := h.svc.Generate(r.Context(), customerID, period.Year, int(period.Month))
	if err != nil {
		if errors.Is(err, ustva.ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if created {
		w.WriteHeader(http.StatusCreated)
	}

	if err := json.NewEncoder(w).Encode(toResponse(summary)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	customerID, err := uuid.Parse(chi.URLParam(r, "customerID"))
	if err != nil {
		http.Error(w, "invalid customer id", http.StatusBadRequest)
		return
	}

	summaries, err := h.svc.List(r.Context(), customerID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := make([]summaryResponse, len(summaries))
	for i, sum := range summaries {
		resp[i] = toResponse(sum)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
