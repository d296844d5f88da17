package handler

import (
	"wallet-settings/internal/adapter/http/dto"
	"wallet-settings/internal/core/ports"
	"wallet-settings/pkg/apperror"
	"wallet-settings/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultNotificationLimit = 20

// NotificationHandler lists queued user notifications.
type NotificationHandler struct {
	queue ports.NotificationQueue
}

func NewNotificationHandler(queue ports.NotificationQueue) *NotificationHandler {
	return &NotificationHandler{queue: queue}
}

// List handles GET /api/v1/notifications?limit=N, newest first.
func (h *NotificationHandler) List(c *gin.Context) {
	var q dto.NotificationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultNotificationLimit
	}

	items, err := h.queue.Recent(c.Request.Context(), q.Limit)
	if err != nil {
		response.Error(c, apperror.ErrCacheError(err))
		return
	}

	out := make([]dto.NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, dto.NewNotificationResponse(n))
	}
	response.OK(c, out)
}
