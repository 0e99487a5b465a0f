package httpapi

import (
	"fmt"
	"net/http"
)

type dashboardResponse struct {
	Message string           `json:"message"`
	User    identityResponse `json:"user"`
}

func (s *Server) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	id := IdentityFromContext(r.Context())

	writeJSON(w, http.StatusOK, dashboardResponse{
		Message: fmt.Sprintf("Welcome to the admin dashboard, %s!", id.Name),
		User: identityResponse{
			ID:    id.ID,
			Name:  id.Name,
			Email: id.Email,
			Role:  id.Role,
		},
	})
}
