package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"imagevault/internal/models"
	"imagevault/internal/services"
)

type createUserRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Role     models.Role `json:"role"`
}

type updateUserRequest struct {
	Name     *string      `json:"name"`
	Email    *string      `json:"email"`
	Password *string      `json:"password"`
	Role     *models.Role `json:"role"`
}

func userIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", err.Error())
		return
	}

	user, err := s.users.Create(r.Context(), services.CreateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	// ?email= narrows the listing to a single lookup.
	if email := r.URL.Query().Get("email"); email != "" {
		user, err := s.users.GetByEmail(r.Context(), email)
		if err != nil {
			sendError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
		return
	}

	list, err := s.users.List(r.Context())
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid user ID", "ID must be a positive integer")
		return
	}

	user, err := s.users.Get(r.Context(), id)
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid user ID", "ID must be a positive integer")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid JSON format", err.Error())
		return
	}

	user, err := s.users.Update(r.Context(), id, services.UpdateUserParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(r)
	if !ok {
		sendErrorResponse(w, http.StatusBadRequest, "Invalid user ID", "ID must be a positive integer")
		return
	}

	user, err := s.users.Delete(r.Context(), id)
	if err != nil {
		sendError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
