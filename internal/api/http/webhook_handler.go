package http

import (
	"encoding/json"
	"net/http"

	"github.com/rubentalstra/BAK/internal/domain"
	"github.com/rubentalstra/BAK/internal/logger"
	"github.com/rubentalstra/BAK/internal/security"
	"github.com/rubentalstra/BAK/internal/service"
)

const associationRequestTable = "association_requests"

// WebhookPayload is the row-level change notification the data store delivers
// on updates. Payloads for other tables or event types are acknowledged
// without side effects; the webhook may fire for many tables.
type WebhookPayload struct {
	Type   string                    `json:"type"`
	Table  string                    `json:"table"`
	Schema string                    `json:"schema"`
	Record domain.AssociationRequest `json:"record"`
}

// WebhookHandler serves the association request webhook endpoint
type WebhookHandler struct {
	reqSvc service.AssociationRequestService
	tokens security.TokenManager // nil disables webhook authentication
}

func NewWebhookHandler(reqSvc service.AssociationRequestService, tokens security.TokenManager) *WebhookHandler {
	return &WebhookHandler{
		reqSvc: reqSvc,
		tokens: tokens,
	}
}

func (h *WebhookHandler) HandleAssociationRequest(w http.ResponseWriter, r *http.Request) {
	if h.tokens != nil {
		if err := h.tokens.ValidateWebhookToken(bearerToken(r)); err != nil {
			logger.Warn("Webhook delivery rejected", "error", err)
			writeError(w, http.StatusUnauthorized, "invalid webhook token")
			return
		}
	}

	var payload WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if payload.Type != "UPDATE" || payload.Table != associationRequestTable {
		logger.Debug("Ignoring webhook event", "type", payload.Type, "table", payload.Table)
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		return
	}

	if _, err := h.reqSvc.HandleStatusUpdate(r.Context(), &payload.Record); err != nil {
		logger.Error("Webhook processing failed", "requestID", payload.Record.ID, "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
