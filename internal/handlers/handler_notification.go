package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
)

// notificationHandler serves the per-user notification feed that
// clients poll.
type notificationHandler struct {
	notificationService portssvc.NotificationSvcFacade
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(ns portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationService: ns}
}

// registerNotificationRoutes registers all notification routes. Every
// route is implicitly scoped to the authenticated principal; there is
// no way to read or mutate another user's feed.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationService portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationService)

	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.PUT("/read-all", h.markAllRead)
		notifications.PUT("/:id/read", h.markRead)
	}
}

// listNotifications godoc
// @Summary List notifications
// @Description Retrieves the authenticated user's most recent notifications, newest first, capped at 50.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.Envelope{data=[]dto.NotificationResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListNotifications(c.Request.Context(), principal.ID)
	if err != nil {
		respondError(c, err, "Failed to list notifications")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToListNotificationResponse(notifications))
}

// markRead godoc
// @Summary Mark a notification as read
// @Description Flags a single notification as read. Only the owning user's rows match; anyone else's id yields 404.
// @Tags notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.Envelope{data=dto.NotificationResponse}
// @Failure 401 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *notificationHandler) markRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), c.Param("id"), principal.ID)
	if err != nil {
		respondError(c, err, "Notification not found")
		return
	}

	respondSuccess(c, http.StatusOK, dto.ToNotificationResponse(notification))
}

// markAllRead godoc
// @Summary Mark all notifications as read
// @Description Flags every unread notification of the authenticated user as read.
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Failure 500 {object} dto.Envelope
// @Security BearerAuth
// @Router /notifications/read-all [put]
func (h *notificationHandler) markAllRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkAllRead(c.Request.Context(), principal.ID); err != nil {
		respondError(c, err, "Failed to mark notifications as read")
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
