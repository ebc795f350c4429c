package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/rubentalstra/BAK/internal/identity"
	"github.com/rubentalstra/BAK/internal/service"
)

// NotificationHandler serves the authenticated user's notifications
type NotificationHandler struct {
	noteSvc     service.NotificationService
	identitySvc identity.Service
}

func NewNotificationHandler(noteSvc service.NotificationService, identitySvc identity.Service) *NotificationHandler {
	return &NotificationHandler{
		noteSvc:     noteSvc,
		identitySvc: identitySvc,
	}
}

func (h *NotificationHandler) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "Missing or invalid Authorization header.")
		return "", false
	}
	uid, err := h.identitySvc.VerifyToken(r.Context(), token)
	if err != nil || uid == "" {
		writeError(w, http.StatusUnauthorized, "Error fetching user data.")
		return "", false
	}
	return uid, true
}

func (h *NotificationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	page := int32(1)
	pageSize := int32(20)
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("page_size")); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}

	notes, total, err := h.noteSvc.GetNotifications(r.Context(), uid, page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"notifications": notes,
		"total":         total,
	})
}

func (h *NotificationHandler) HandleMarkAsRead(w http.ResponseWriter, r *http.Request) {
	uid, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	if err := h.noteSvc.MarkAsRead(r.Context(), uid, id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
