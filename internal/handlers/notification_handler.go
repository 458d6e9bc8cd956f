package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberhub/barbershop-api/internal/notify"
)

// NotificationHandler exposes the transient mutation feed the dashboard
// polls for toasts.
type NotificationHandler struct {
	notify *notify.Center
}

func NewNotificationHandler(center *notify.Center) *NotificationHandler {
	return &NotificationHandler{notify: center}
}

func (h *NotificationHandler) List(c *gin.Context) {
	msgs := h.notify.Messages()
	if msgs == nil {
		msgs = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": msgs,
		"total":    len(msgs),
	})
}

func (h *NotificationHandler) Clear(c *gin.Context) {
	h.notify.Clear()
	c.Status(http.StatusNoContent)
}
