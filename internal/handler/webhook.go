package handler

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	signatureHeader    = "X-Hashnode-Signature"
	legacySecretHeader = "X-Hashnode-Secret"

	// maxTimestampSkew bounds how old a signed webhook may be before it
	// is rejected as a possible replay.
	maxTimestampSkew = 5 * time.Minute

	maxWebhookBody = 1 << 20
)

// Refresher regenerates the content snapshot from the remote CMS.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// WebhookHandler accepts the CMS publish/update webhook and triggers a
// snapshot refresh. Authentication prefers an HMAC signature of the form
// "t=<unix>,v1=<hex>" over "<timestamp>.<body>"; the legacy shared-secret
// header remains accepted for older webhook configurations.
type WebhookHandler struct {
	secret  string
	content Refresher
	now     func() time.Time
}

func NewWebhookHandler(secret string, content Refresher) *WebhookHandler {
	return &WebhookHandler{
		secret:  secret,
		content: content,
		now:     time.Now,
	}
}

// webhookEvent is the subset of the CMS payload worth logging.
type webhookEvent struct {
	Metadata struct {
		UUID string `json:"uuid"`
	} `json:"metadata"`
	Data struct {
		EventType string `json:"eventType"`
		Post      struct {
			ID string `json:"id"`
		} `json:"post"`
	} `json:"data"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.secret == "" {
		writeError(w, http.StatusInternalServerError, "Server not configured")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to read request body")
		return
	}

	if !h.authorized(r, body) {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var event webhookEvent
	err = json.Unmarshal(body, &event)
	if err == nil {
		eventID := event.Metadata.UUID
		if _, parseErr := uuid.Parse(eventID); parseErr != nil {
			eventID = ""
		}
		slog.Info("webhook received, refreshing posts",
			"event_id", eventID,
			"event_type", event.Data.EventType,
			"post_id", event.Data.Post.ID,
		)
	} else {
		slog.Info("webhook received with unparseable payload, refreshing posts")
	}

	err = h.content.Refresh(r.Context())
	if err != nil {
		slog.Error("webhook refresh failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *WebhookHandler) authorized(r *http.Request, body []byte) bool {
	signature := r.Header.Get(signatureHeader)
	if signature != "" {
		return h.validSignature(signature, body)
	}

	legacy := r.Header.Get(legacySecretHeader)
	if legacy != "" {
		return subtle.ConstantTimeCompare([]byte(legacy), []byte(h.secret)) == 1
	}

	return false
}

// validSignature verifies a "t=<unix>,v1=<hex>" header against the body.
func (h *WebhookHandler) validSignature(header string, body []byte) bool {
	var timestamp, digest string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			timestamp = value
		case "v1":
			digest = value
		}
	}
	if timestamp == "" || digest == "" {
		return false
	}

	unix, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	age := h.now().Sub(time.UnixMilli(unix))
	if age < 0 {
		age = -age
	}
	if age > maxTimestampSkew {
		return false
	}

	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return subtle.ConstantTimeCompare([]byte(expected), []byte(digest)) == 1
}
