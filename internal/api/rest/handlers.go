package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/fortuna/gridiron/internal/pbp"
	"github.com/fortuna/gridiron/internal/service"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db       *store.Database
	analyzer *service.AnalyzerService
}

// NewHandler creates a new handler
func NewHandler(db *store.Database, analyzer *service.AnalyzerService) *Handler {
	return &Handler{
		db:       db,
		analyzer: analyzer,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if err := h.db.HealthCheck(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, map[string]string{
		"status":  status,
		"service": "gridiron",
	})
}

// IngestGame accepts a game's play-by-play input, analyzes it and stores
// the resulting record
func (h *Handler) IngestGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	season := vars["season"]

	var input pbp.GameInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game input", err)
		return
	}

	record, err := h.analyzer.IngestGame(r.Context(), season, &input)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to analyze game", err)
		return
	}

	respondJSON(w, http.StatusCreated, record)
}

// GetSeasonGames returns all analyzed games for a team's season
func (h *Handler) GetSeasonGames(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	season := vars["season"]
	team := normalizeAbbr(vars["team"])

	games, err := h.analyzer.SeasonGames(r.Context(), season, team)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch season games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season": season,
		"team":   team,
		"games":  games,
		"count":  len(games),
	})
}

// GetGame returns one analyzed game by game number
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	season := vars["season"]
	team := normalizeAbbr(vars["team"])

	gameNumber, err := strconv.Atoi(vars["gameNumber"])
	if err != nil || gameNumber < 1 {
		respondError(w, http.StatusBadRequest, "Invalid game number", err)
		return
	}

	record, err := h.analyzer.Game(r.Context(), season, team, gameNumber)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, record)
}

// GetSeasonSummary returns the aggregate season summary for a team
func (h *Handler) GetSeasonSummary(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	season := vars["season"]
	team := normalizeAbbr(vars["team"])

	summary, err := h.analyzer.SeasonSummary(r.Context(), season, team)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to build season summary", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season":  season,
		"team":    team,
		"summary": summary,
	})
}

// normalizeAbbr upper-cases team abbreviations so URL casing doesn't matter
func normalizeAbbr(team string) string {
	return strings.ToUpper(strings.TrimSpace(team))
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
