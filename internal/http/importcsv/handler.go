package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/homebill/internal/importer"
	"github.com/MrJamesThe3rd/homebill/internal/transaction"
)

const maxUploadSize = 10 << 20 // 10 MiB

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{importSvc: importSvc, txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importFile)
}

type importResponse struct {
	Imported int `json:"imported"`
}

// importFile accepts a multipart CSV upload and creates one transaction per
// parsed row. The whole file is rejected if any row fails validation, so a
// partial import never happens.
func (h *Handler) importFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatHousehold
	}

	method := transaction.PaymentMethod(r.FormValue("payment_method"))
	if method == "" {
		method = transaction.PaymentCash
	}

	cardBank := r.FormValue("card_bank")

	drafts, err := h.importSvc.Import(format, file, method, cardBank)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txs, err := h.txSvc.CreateBatch(r.Context(), drafts)
	if err != nil {
		if errors.Is(err, transaction.ErrInvalidDraft) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(importResponse{Imported: len(txs)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
