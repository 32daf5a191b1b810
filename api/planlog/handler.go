// Package planlog exposes stored production plans over HTTP.
package planlog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	coreplanlog "github.com/kilianp07/powerplan/core/planlog"
)

// NewHandler returns an HTTP handler exposing plan records via GET /plans.
// Supported query parameters: since/until (RFC3339) and feasible=true|false.
func NewHandler(store coreplanlog.Store) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		q := coreplanlog.Query{}
		if s := r.URL.Query().Get("since"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				http.Error(w, "invalid since: "+err.Error(), http.StatusBadRequest)
				return
			}
			q.Start = t
		}
		if s := r.URL.Query().Get("until"); s != "" {
			t, err := time.Parse(time.RFC3339, s)
			if err != nil {
				http.Error(w, "invalid until: "+err.Error(), http.StatusBadRequest)
				return
			}
			q.End = t
		}
		if s := r.URL.Query().Get("feasible"); s != "" {
			feasible, err := strconv.ParseBool(s)
			if err != nil {
				http.Error(w, "invalid feasible: "+err.Error(), http.StatusBadRequest)
				return
			}
			q.Feasible = &feasible
		}

		records, err := store.Query(r.Context(), q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if records == nil {
			records = []coreplanlog.Record{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
