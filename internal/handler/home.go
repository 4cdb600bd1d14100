package handler

import (
	"net/http"

	"github.com/fardannozami/portfolio/internal/service"
)

type HomeHandler struct {
	profileService *service.ProfileService
}

func NewHomeHandler(profileService *service.ProfileService) *HomeHandler {
	return &HomeHandler{profileService: profileService}
}

// HomePage serves the portfolio profile payload: hero, skills,
// experience, projects, and contact links.
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.profileService.Profile())
}

func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
