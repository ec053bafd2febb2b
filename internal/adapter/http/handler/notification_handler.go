package handler

import (
	"net/http"

	"settlement-ledger/internal/adapter/http/middleware"
	"settlement-ledger/internal/core/ports"
	"settlement-ledger/pkg/apperror"
	"settlement-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NotificationStream upgrades a request into a live notification feed.
type NotificationStream interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error
}

// NotificationHandler handles notification listing and the live feed.
type NotificationHandler struct {
	querySvc ports.LedgerQueries
	stream   NotificationStream
}

// NewNotificationHandler creates a new NotificationHandler. stream may be nil,
// in which case the websocket endpoint answers 404.
func NewNotificationHandler(querySvc ports.LedgerQueries, stream NotificationStream) *NotificationHandler {
	return &NotificationHandler{querySvc: querySvc, stream: stream}
}

// List handles GET /api/v1/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	items, err := h.querySvc.ListNotifications(c.Request.Context(), actor.UserID, limitQuery(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Stream handles GET /api/v1/notifications/ws.
func (h *NotificationHandler) Stream(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}
	if h.stream == nil {
		response.Error(c, apperror.ErrNotFound("Notification stream"))
		return
	}
	// The upgrader has already written an HTTP error when this fails.
	_ = h.stream.ServeWS(c.Writer, c.Request, actor.UserID)
}
