package card

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/homebill/internal/billing"
	"github.com/MrJamesThe3rd/homebill/internal/card"
)

type Handler struct {
	svc *card.Service
}

func NewHandler(svc *card.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Get("/{bank}", h.get)
	r.Put("/{bank}/statement-day", h.setStatementDay)
	r.Put("/{bank}/next-month", h.setNextMonth)
	r.Put("/{bank}/statements/{month}/amount", h.recordAmount)
	r.Post("/{bank}/statements/{month}/toggle-issued", h.toggleIssued)
	r.Get("/{bank}/cycle", h.cycle)
}

type settingResponse struct {
	Bank             string           `json:"bank"`
	StatementDay     int              `json:"statement_day"`
	IsNextMonth      bool             `json:"is_next_month"`
	IssuedMonths     []string         `json:"issued_months"`
	StatementAmounts map[string]int64 `json:"statement_amounts"`
}

func toResponse(s *card.Setting) settingResponse {
	issued := make([]string, 0, len(s.IssuedMonths))
	for month := range s.IssuedMonths {
		issued = append(issued, month)
	}

	return settingResponse{
		Bank:             s.Bank,
		StatementDay:     s.StatementDay,
		IsNextMonth:      s.IsNextMonth,
		IssuedMonths:     issued,
		StatementAmounts: s.StatementAmounts,
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	out := make([]settingResponse, len(settings))
	for i, s := range settings {
		out[i] = toResponse(s)
	}

	writeJSON(w, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.svc.Get(r.Context(), chi.URLParam(r, "bank"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponse(setting))
}

type statementDayRequest struct {
	StatementDay int `json:"statement_day"`
}

func (h *Handler) setStatementDay(w http.ResponseWriter, r *http.Request) {
	var req statementDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	setting, err := h.svc.SetStatementDay(r.Context(), chi.URLParam(r, "bank"), req.StatementDay)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, toResponse(setting))
}

type nextMonthRequest struct {
	IsNextMonth bool `json:"is_next_month"`
}

func (h *Handler) setNextMonth(w http.ResponseWriter, r *http.Request) {
	var req nextMonthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	setting, err := h.svc.SetNextMonthFlag(r.Context(), chi.URLParam(r, "bank"), req.IsNextMonth)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toResponse(setting))
}

type recordAmountRequest struct {
	Amount int64 `json:"amount"`
}

func (h *Handler) recordAmount(w http.ResponseWriter, r *http.Request) {
	month, err := billing.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	var req recordAmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.svc.RecordStatementAmount(r.Context(), chi.URLParam(r, "bank"), month, req.Amount); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type toggleIssuedRequest struct {
	EnteredTotal *int64 `json:"entered_total,omitempty"`
}

type toggleIssuedResponse struct {
	Issued bool `json:"issued"`
}

func (h *Handler) toggleIssued(w http.ResponseWriter, r *http.Request) {
	month, err := billing.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	var req toggleIssuedRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	issued, err := h.svc.ToggleIssued(r.Context(), chi.URLParam(r, "bank"), month, req.EnteredTotal)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toggleIssuedResponse{Issued: issued})
}

type cycleResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// cycle exposes the shared cycle computation so every screen renders the same
// window instead of re-deriving it.
func (h *Handler) cycle(w http.ResponseWriter, r *http.Request) {
	month, err := billing.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}

	setting, err := h.svc.Get(r.Context(), chi.URLParam(r, "bank"))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	cycle, ok := billing.CycleRange(setting.StatementDay, month)
	if !ok {
		http.Error(w, "card has no statement day", http.StatusNotFound)
		return
	}

	writeJSON(w, cycleResponse{
		Start: cycle.Start.Format("2006-01-02"),
		End:   cycle.End.Format("2006-01-02"),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
