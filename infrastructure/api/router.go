package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"account-vault/services"

	"github.com/gorilla/mux"
)

// Server is the presentation boundary: a small JSON API over the registry
// and the import/export services. Rendering stays with the caller; after a
// successful bind the caller refreshes by fetching GET /slots again.
type Server struct {
	log      *slog.Logger
	registry services.IRegistry
	imports  *services.ImportService
	accounts *services.AccountService
}

func NewServer(log *slog.Logger, registry services.IRegistry, imports *services.ImportService, accounts *services.AccountService) *Server {
	return &Server{log: log, registry: registry, imports: imports, accounts: accounts}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "OK"); err != nil {
			s.log.Debug("health write failed", "error", err)
		}
	}).Methods("GET")
	r.HandleFunc("/slots", s.ListSlotsHandler).Methods("GET")
	r.HandleFunc("/slots/empty", s.FindEmptySlotHandler).Methods("GET")
	r.HandleFunc("/slots/{slot:[0-9]+}", s.CreateAccountHandler).Methods("POST")
	r.HandleFunc("/slots/{slot:[0-9]+}", s.RemoveAccountHandler).Methods("DELETE")
	r.HandleFunc("/slots/{slot:[0-9]+}/import", s.ImportAccountHandler).Methods("POST")
	r.HandleFunc("/slots/{slot:[0-9]+}/export", s.ExportAccountHandler).Methods("GET")
	return r
}
