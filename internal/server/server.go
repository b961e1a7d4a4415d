package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"rift-tracker/internal/domain"
	"rift-tracker/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// TrackerServer exposes the sync service as JSON endpoints for the
// presentation layer.
type TrackerServer struct {
	sync   *service.SyncService
	logger zerolog.Logger
}

func NewTrackerServer(sync *service.SyncService, logger zerolog.Logger) *TrackerServer {
	return &TrackerServer{sync: sync, logger: logger}
}

func (s *TrackerServer) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/search", s.handleSearch)
	r.Post("/api/load-more", s.handleLoadMore)
	r.Post("/api/refresh", s.handleRefresh)
	return r
}

type searchRequest struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Region   string `json:"region"`
}

type loadMoreRequest struct {
	UserID string `json:"userId"`
	Start  int    `json:"start"`
}

type refreshRequest struct {
	UserID string `json:"userId"`
	Region string `json:"region"`
}

func (s *TrackerServer) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.sync.Search(r.Context(), domain.PlayerIdentity{
		GameName: req.GameName,
		TagLine:  req.TagLine,
		Region:   req.Region,
	})
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *TrackerServer) handleLoadMore(w http.ResponseWriter, r *http.Request) {
	var req loadMoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.sync.LoadMore(r.Context(), req.UserID, req.Start)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *TrackerServer) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.sync.Refresh(r.Context(), req.UserID, req.Region)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *TrackerServer) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.Error().Err(err).Str("path", r.URL.Path).Msg("operation failed")
		writeError(w, http.StatusInternalServerError, "operation failed, try again later")
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
