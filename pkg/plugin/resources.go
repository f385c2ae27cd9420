package plugin

import (
	"encoding/json"
	"errors"
	"net/http"

	"cellery-observability-datasource/pkg/metrics"
	"cellery-observability-datasource/pkg/registry"

	"github.com/gorilla/mux"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
)

type runtimeResponse struct {
	RuntimeID string `json:"runtimeId"`
	Namespace string `json:"namespace"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (d *Datasource) newRouter() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/constants", d.handleConstants).Methods(http.MethodGet)
	router.HandleFunc("/constants/{path}", d.handleConstant).Methods(http.MethodGet)
	router.HandleFunc("/runtime", d.handleRuntime).Methods(http.MethodGet)
	return router
}

// handleConstants returns the whole registry in the shape the frontend expects.
func (d *Datasource) handleConstants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, registry.Get())
}

// handleConstant returns a single registry leaf addressed by its dotted path.
func (d *Datasource) handleConstant(w http.ResponseWriter, r *http.Request) {
	path := mux.Vars(r)["path"]

	entry, err := registry.Lookup(path)
	metrics.RecordLookup(err)
	if err != nil {
		var notFound *registry.NotFoundError
		if errors.As(err, &notFound) {
			writeJSON(w, r, http.StatusNotFound, errorResponse{Error: err.Error()})
			return
		}
		writeJSON(w, r, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, r, http.StatusOK, entry)
}

func (d *Datasource) handleRuntime(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, runtimeResponse{
		RuntimeID: d.settings.RuntimeID,
		Namespace: d.settings.Namespace,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.DefaultLogger.FromContext(r.Context()).Error("Failed to write resource response", "path", r.URL.Path, "error", err)
	}
}
