package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// NotificationHandler handles HTTP requests for the caller's notifications.
// Notifications have no create, update, or delete endpoints: the change
// notifier is their only producer, and retrieval is their only mutation
// (the first read flips unseen to seen).
type NotificationHandler struct {
	notifications ports.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ListNotifications handles GET /api/v1/notifications.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.ListNotifications(r.Context(), actorID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewNotificationListResponse(notifications))
}

// GetNotification handles GET /api/v1/notifications/{id}. Other users'
// notifications read as 404, not 403, so their existence is not leaked.
func (h *NotificationHandler) GetNotification(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	notification, err := h.notifications.GetNotification(r.Context(), actorID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewNotificationResponse(notification))
}
