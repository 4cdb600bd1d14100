package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fardannozami/portfolio/internal/service"
)

func devEmailService() *service.EmailService {
	return service.NewEmailService("", "noreply@example.com", "owner@example.com", "", true)
}

func TestContactSend(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid message",
			body:       `{"name":"Ada","email":"ada@example.com","message":"Hello there"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "uppercase email accepted",
			body:       `{"name":"Ada","email":"ADA@Example.COM","message":"Hello"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing name",
			body:       `{"email":"ada@example.com","message":"Hello"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "bad email",
			body:       `{"name":"Ada","email":"not-an-email","message":"Hello"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty message",
			body:       `{"name":"Ada","email":"ada@example.com","message":"  "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewContactHandler(devEmailService())
			req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Send(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestNewsletterSubscribe(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid address", `{"email":"reader@example.com"}`, http.StatusOK},
		{"invalid address", `{"email":"nope"}`, http.StatusBadRequest},
		{"malformed body", `not json`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewNewsletterHandler(devEmailService())
			req := httptest.NewRequest(http.MethodPost, "/newsletter/subscribe", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Subscribe(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
