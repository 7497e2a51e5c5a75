package http

import (
	"net/http"
	"strconv"

	"vidstream/pkg/logger"
	"vidstream/pkg/middleware"
	"vidstream/services/notification/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUseCase usecase.NotificationUseCase
	logger              *logger.Logger
}

func NewNotificationHandler(notificationUseCase usecase.NotificationUseCase, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
		logger:              logger,
	}
}

func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

// GetNotifications godoc
// @Summary      List my notifications
// @Description  Moderation notices for the caller, newest first.
// @Tags         notifications
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query int false "Page size" default(20)
// @Param        offset query int false "Offset"    default(0)
// @Success      200  {object}  entity.NotificationPage
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	limit, ok := queryInt(c, "limit", usecase.DefaultLimit)
	if !ok {
		return
	}
	offset, ok := queryInt(c, "offset", 0)
	if !ok {
		return
	}

	page, err := h.notificationUseCase.GetNotifications(c.Request.Context(), c.GetString(middleware.ContextUserID), limit, offset)
	if err != nil {
		h.logger.Error("Failed to get notifications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get notifications"})
		return
	}

	c.JSON(http.StatusOK, page)
}
