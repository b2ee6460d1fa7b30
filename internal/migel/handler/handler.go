package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"migel-service/internal/fileio"
	"migel-service/internal/migel/ingest"
	"migel-service/internal/migel/model"
	"migel-service/internal/migel/service"
)

type matchResponse struct {
	Total   int                 `json:"total"`
	Matched int                 `json:"matched"`
	Results []model.MatchResult `json:"results"`
}

// Match returns the POST /match handler: a multipart product table upload is
// matched against the currently loaded catalog and answered as JSON.
func Match(cat *Catalog, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		m := cat.Matcher()
		if m == nil {
			http.Error(w, "catalog not loaded yet", http.StatusServiceUnavailable)
			return
		}

		defer r.Body.Close()
		if err := r.ParseMultipartForm(64 << 20); err != nil {
			http.Error(w, "bad multipart form: "+err.Error(), http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()

		rows, err := fileio.ReadRows(file, header.Filename)
		if err != nil {
			http.Error(w, "failed to read table: "+err.Error(), http.StatusBadRequest)
			return
		}
		_, products := ingest.Products(rows, mappingFromForm(r))

		results := m.MatchAll(r.Context(), products)
		resp := matchResponse{
			Total:   len(results),
			Matched: service.Matched(results),
			Results: results,
		}

		writeJSON(w, log, resp)
		log.Info().
			Int("products", resp.Total).
			Int("matched", resp.Matched).
			Dur("elapsed", time.Since(start)).
			Msg("match done")
	}
}

// Refresh returns the POST /refresh handler: re-download the catalog and swap
// in a fresh index. Concurrent triggers share one load.
func Refresh(cat *Catalog, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		if err := cat.Refresh(r.Context()); err != nil {
			log.Error().Err(err).Msg("catalog refresh")
			http.Error(w, "refresh failed: "+err.Error(), http.StatusBadGateway)
			return
		}
		m := cat.Matcher()
		writeJSON(w, log, map[string]any{
			"entries":  m.Entries(),
			"keywords": m.Keywords(),
		})
		log.Info().
			Int("entries", m.Entries()).
			Int("keywords", m.Keywords()).
			Dur("elapsed", time.Since(start)).
			Msg("catalog refreshed")
	}
}

func writeJSON(w http.ResponseWriter, log zerolog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("write json")
	}
}

func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := r.Header.Get("X-Request-ID"); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}
