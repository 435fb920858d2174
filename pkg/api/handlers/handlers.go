package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cbodonnell/stardrift/pkg/log"
	"github.com/cbodonnell/stardrift/pkg/repositories"
	"github.com/cbodonnell/stardrift/pkg/version"
)

func HandleGetLastScore(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		record, err := repository.LoadLastScore(r.Context())
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "No score recorded", http.StatusNotFound)
				return
			}
			log.Error("failed to load last score: %v", err)
			http.Error(w, "Failed to load last score", http.StatusInternalServerError)
			return
		}

		writeJSON(w, record)
	}
}

func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}
}

func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"version": version.Get()})
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
