package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	budgetHandler "github.com/MrJamesThe3rd/homebill/internal/http/budget"
	cardHandler "github.com/MrJamesThe3rd/homebill/internal/http/card"
	importHandler "github.com/MrJamesThe3rd/homebill/internal/http/importcsv"
	installmentHandler "github.com/MrJamesThe3rd/homebill/internal/http/installment"
	reconcileHandler "github.com/MrJamesThe3rd/homebill/internal/http/reconcile"
	txHandler "github.com/MrJamesThe3rd/homebill/internal/http/transaction"
	"github.com/MrJamesThe3rd/homebill/internal/syncer"
)

func New(
	transactionsV1 *txHandler.Handler,
	cardsV1 *cardHandler.Handler,
	reconciliationV1 *reconcileHandler.Handler,
	budgetsV1 *budgetHandler.Handler,
	installmentsV1 *installmentHandler.Handler,
	importV1 *importHandler.Handler,
	syncStatus func() (syncer.Status, error),
	onMutation func(),
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	if onMutation != nil {
		router.Use(notifyOnMutation(onMutation))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			cardsV1.Routes(r)
		})

		r.Route("/reconciliation", reconciliationV1.Routes)

		r.Route("/budgets", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			budgetsV1.Routes(r)
		})

		r.Route("/installments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			installmentsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		if syncStatus != nil {
			r.Get("/sync/status", syncStatusHandler(syncStatus))
		}
	})

	return router
}

// syncStatusHandler surfaces the sync state so the UI can show a saving or
// error indicator. Sync failures never propagate into core computation.
func syncStatusHandler(status func() (syncer.Status, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := status()

		resp := struct {
			Status syncer.Status `json:"status"`
			Error  string        `json:"error,omitempty"`
		}{Status: st}

		if err != nil {
			resp.Error = err.Error()
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

// notifyOnMutation reports successful state-changing requests so the sync
// layer can schedule a debounced save. Reads never trigger saves.
func notifyOnMutation(notify func()) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			if ww.Status() < 400 {
				notify()
			}
		})
	}
}
