package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/fardannozami/portfolio/internal/service"
	"github.com/fardannozami/portfolio/internal/validation"
)

type NewsletterHandler struct {
	emailService *service.EmailService
}

func NewNewsletterHandler(emailService *service.EmailService) *NewsletterHandler {
	return &NewsletterHandler{emailService: emailService}
}

// Subscribe adds an address to the newsletter audience. The response is
// always success for valid addresses to prevent email enumeration.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if err := validation.ValidateEmail(email); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.emailService.SubscribeNewsletter(email)
	if err != nil {
		// Service layer already logs details; still report success.
		slog.Warn("newsletter subscription error", "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
