package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/budget"
)

type Handler struct {
	svc *budget.Service
}

func NewHandler(svc *budget.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{month}", h.get)
	r.Patch("/{month}", h.update)
	r.Get("/{month}/projection", h.projection)
}

type budgetResponse struct {
	Month          string               `json:"month"`
	OpeningBalance int64                `json:"opening_balance"`
	Incomes        []budget.IncomeEntry `json:"incomes"`
	Loan           int64                `json:"loan"`
	CreditCards    []budget.CardEntry   `json:"credit_cards"`
}

func toResponse(b *budget.MonthlyBudget) budgetResponse {
	return budgetResponse{
		Month:          b.Month.String(),
		OpeningBalance: b.OpeningBalance,
		Incomes:        b.Incomes,
		Loan:           b.Loan,
		CreditCards:    b.CreditCards,
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	month, err := billing.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	b, err := h.svc.Get(r.Context(), month)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponse(b))
}

type updateRequest struct {
	OpeningBalance *int64               `json:"opening_balance,omitempty"`
	Loan           *int64               `json:"loan,omitempty"`
	Incomes        []budget.IncomeEntry `json:"incomes,omitempty"`
	CreditCards    []budget.CardEntry   `json:"credit_cards,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	month, err := billing.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	b, err := h.svc.Update(r.Context(), month, budget.UpdateParams{
		OpeningBalance: req.OpeningBalance,
		Loan:           req.Loan,
		Incomes:        req.Incomes,
		CreditCards:    req.CreditCards,
	})
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponse(b))
}

type projectionResponse struct {
	Month        string `json:"month"`
	IncomeTotal  int64  `json:"income_total"`
	ExpenseTotal int64  `json:"expense_total"`
	Balance      int64  `json:"balance"`
}

func (h *Handler) projection(w http.ResponseWriter, r *http.Request) {
	month, err := billing.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	source := budget.SourceManual
	if s := r.URL.Query().Get("source"); s != "" {
		source = budget.AmountSource(s)
	}

	p, err := h.svc.ProjectMonth(r.Context(), month, source)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, projectionResponse{
		Month:        month.String(),
		IncomeTotal:  p.IncomeTotal,
		ExpenseTotal: p.ExpenseTotal,
		Balance:      p.Balance,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
