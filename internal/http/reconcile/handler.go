package reconcile

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/reconcile"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

type Handler struct {
	svc *reconcile.Service
}

func NewHandler(svc *reconcile.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/cards", h.cardSummaries)
	r.Get("/{bank}", h.summarize)
}

type candidateResponse struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	Amount      int64     `json:"amount"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
}

type cycleRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type summaryResponse struct {
	Bank            string              `json:"bank"`
	Month           string              `json:"month"`
	Cycle           *cycleRange         `json:"cycle,omitempty"`
	Candidates      []candidateResponse `json:"candidates"`
	CandidateTotal  int64               `json:"candidate_total"`
	ReconciledTotal int64               `json:"reconciled_total"`
	EnteredTotal    int64               `json:"entered_total"`
	Discrepancy     int64               `json:"discrepancy"`
	IsBalanced      bool                `json:"is_balanced"`
	IsIssued        bool                `json:"is_issued"`
}

func toResponse(s *reconcile.Summary) summaryResponse {
	out := summaryResponse{
		Bank:            s.Bank,
		Month:           s.Month.String(),
		Candidates:      make([]candidateResponse, len(s.Candidates)),
		CandidateTotal:  s.CandidateTotal,
		ReconciledTotal: s.ReconciledTotal,
		EnteredTotal:    s.EnteredTotal,
		Discrepancy:     s.Discrepancy,
		IsBalanced:      s.IsBalanced,
		IsIssued:        s.IsIssued,
	}

	if s.Cycle != nil {
		out.Cycle = &cycleRange{
			Start: s.Cycle.Start.Format(time.DateOnly),
			End:   s.Cycle.End.Format(time.DateOnly),
		}
	}

	for i, tx := range s.Candidates {
		out.Candidates[i] = toCandidate(tx)
	}

	return out
}

func toCandidate(tx *transaction.Transaction) candidateResponse {
	return candidateResponse{
		ID:          tx.ID,
		Date:        tx.Date.Format(time.DateOnly),
		Amount:      tx.Amount,
		Category:    tx.Category,
		Description: tx.Description,
	}
}

func (h *Handler) summarize(w http.ResponseWriter, r *http.Request) {
	month, err := billing.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	var enteredTotal int64

	if s := r.URL.Query().Get("entered_total"); s != "" {
		enteredTotal, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			http.Error(w, "invalid entered_total", http.StatusBadRequest)
			return
		}
	}

	summary, err := h.svc.Summarize(r.Context(), chi.URLParam(r, "bank"), month, enteredTotal)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponse(summary))
}

type cardSummaryResponse struct {
	Bank     string `json:"bank"`
	Unbilled int64  `json:"unbilled"`
	Billed   int64  `json:"billed"`
}

func (h *Handler) cardSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.CardSummaries(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]cardSummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = cardSummaryResponse{Bank: s.Bank, Unbilled: s.Unbilled, Billed: s.Billed}
	}

	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
