package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/service"
	"github.com/indiabills/console/internal/utils"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List returns the live notifications for this console session.
func (h *NotificationHandler) List(c *gin.Context) {
	utils.Success(c, 200, "OK", h.notifications.List())
}

// Dismiss removes a notification locally. The upstream is never told.
func (h *NotificationHandler) Dismiss(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.Error(c, 400, "INVALID_REQUEST", "Missing notification id")
		return
	}
	h.notifications.Dismiss(id)
	utils.Success(c, 200, "Dismissed", nil)
}
