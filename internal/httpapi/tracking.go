package httpapi

import (
	"net/http"

	"imagevault/internal/common"
	"imagevault/internal/models"
)

// handleTrack records one access under the caller's display name from the
// token claims.
func (s *Server) handleTrack(w http.ResponseWriter, r *http.Request) {
	id := IdentityFromContext(r.Context())

	entry, err := s.tracking.Record(r.Context(), id.Name)
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleTrackingStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.tracking.Stats(r.Context())
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleTrackingLog(w http.ResponseWriter, r *http.Request) {
	list, err := s.tracking.List(r.Context())
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// handleTrackingClear wipes the log. Admin only.
func (s *Server) handleTrackingClear(w http.ResponseWriter, r *http.Request) {
	id := IdentityFromContext(r.Context())
	if id.Role != models.RoleAdmin {
		sendError(w, common.ErrForbidden)
		return
	}

	if err := s.tracking.Clear(r.Context()); err != nil {
		sendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
