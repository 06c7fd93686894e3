package installment

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homebill/internal/installment"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

type Handler struct {
	svc *transaction.Service
}

func NewHandler(svc *transaction.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.listGroups)
	r.Post("/", h.createSeries)
	r.Post("/recurring", h.createRecurring)
}

type groupResponse struct {
	BaseName         string  `json:"base_name"`
	TotalPeriods     int     `json:"total_periods"`
	PaidPeriods      int     `json:"paid_periods"`
	RemainingPeriods int     `json:"remaining_periods"`
	AmountPerPeriod  int64   `json:"amount_per_period"`
	Progress         float64 `json:"progress"`
	StartDate        string  `json:"start_date"`
	EndMonth         string  `json:"end_month"`
}

func (h *Handler) listGroups(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.List(r.Context(), transaction.ListFilter{})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	groups := installment.GroupTransactions(txs)

	out := make([]groupResponse, len(groups))
	for i, g := range groups {
		out[i] = groupResponse{
			BaseName:         g.BaseName,
			TotalPeriods:     g.TotalPeriods,
			PaidPeriods:      g.PaidPeriods,
			RemainingPeriods: g.RemainingPeriods,
			AmountPerPeriod:  g.AmountPerPeriod,
			Progress:         g.Progress,
			StartDate:        g.StartDate.Format(time.DateOnly),
			EndMonth:         g.EndMonth.String(),
		}
	}

	writeJSON(w, http.StatusOK, out)
}

type seriesRequest struct {
	Name        string `json:"name"`
	TotalAmount int64  `json:"total_amount"`
	Periods     int    `json:"periods"`
	StartDate   string `json:"start_date"`
	CardBank    string `json:"card_bank"`
	Category    string `json:"category"`
}

type seriesResponse struct {
	Created int `json:"created"`
}

func (h *Handler) createSeries(w http.ResponseWriter, r *http.Request) {
	var req seriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}

	drafts, err := installment.PlanSeries(installment.SeriesParams{
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
		Periods:     req.Periods,
		StartDate:   start,
		CardBank:    req.CardBank,
		Category:    req.Category,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.svc.CreateBatch(r.Context(), drafts); err != nil {
		if errors.Is(err, transaction.ErrInvalidDraft) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, seriesResponse{Created: len(drafts)})
}

type recurringRequest struct {
	Name          string `json:"name"`
	Amount        int64  `json:"amount"`
	Periods       int    `json:"periods"`
	StartDate     string `json:"start_date"`
	PaymentMethod string `json:"payment_method"`
	CardBank      string `json:"card_bank"`
	Category      string `json:"category"`
}

type recurringResponse struct {
	Created int       `json:"created"`
	GroupID uuid.UUID `json:"group_id"`
}

func (h *Handler) createRecurring(w http.ResponseWriter, r *http.Request) {
	var req recurringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		http.Error(w, "invalid start_date", http.StatusBadRequest)
		return
	}

	drafts, groupID, err := installment.PlanRecurring(installment.RecurringParams{
		Name:          req.Name,
		Amount:        req.Amount,
		Periods:       req.Periods,
		StartDate:     start,
		PaymentMethod: transaction.PaymentMethod(req.PaymentMethod),
		CardBank:      req.CardBank,
		Category:      req.Category,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := h.svc.CreateBatch(r.Context(), drafts); err != nil {
		if errors.Is(err, transaction.ErrInvalidDraft) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	writeJSON(w, http.StatusCreated, recurringResponse{Created: len(drafts), GroupID: groupID})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
