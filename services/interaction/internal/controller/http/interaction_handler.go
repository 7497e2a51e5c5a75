package http

import (
	"errors"
	"fmt"
	"net/http"

	"vidstream/pkg/logger"
	"vidstream/pkg/middleware"
	"vidstream/services/interaction/internal/entity"
	"vidstream/services/interaction/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InteractionHandler struct {
	interactionUseCase usecase.InteractionUseCase
	logger             *logger.Logger
}

func NewInteractionHandler(interactionUseCase usecase.InteractionUseCase, logger *logger.Logger) *InteractionHandler {
	return &InteractionHandler{
		interactionUseCase: interactionUseCase,
		logger:             logger,
	}
}

type ViewRequest struct {
	WatchedPercentage *float64 `json:"watched_percentage" binding:"required"`
	Reaction          *string  `json:"reaction"`
}

type CommentRequest struct {
	Text string `json:"comment_text" binding:"required"`
}

type ReportRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *InteractionHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrGone):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Interaction request %s failed: %v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record interaction"})
	}
}

func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return "", false
	}
	return id, true
}

// RecordView godoc
// @Summary      Record a view
// @Description  Stores how far the caller watched a video and their reaction. Watching again replaces the previous view.
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        video_id path string true "Video ID"
// @Param        request body ViewRequest true "Watch state"
// @Success      200  {object}  entity.View
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{video_id}/view [put]
func (h *InteractionHandler) RecordView(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.interactionUseCase.RecordView(c.Request.Context(), c.GetString(middleware.ContextUserID), videoID, *req.WatchedPercentage, req.Reaction)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// AddComment godoc
// @Summary      Comment on a video
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        video_id path string true "Video ID"
// @Param        request body CommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{video_id}/comments [post]
func (h *InteractionHandler) AddComment(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.interactionUseCase.AddComment(c.Request.Context(), c.GetString(middleware.ContextUserID), videoID, req.Text)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// FileReport godoc
// @Summary      Report a video
// @Description  Files an unresolved report for moderators. One report per user and video per day.
// @Tags         interactions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        video_id path string true "Video ID"
// @Param        request body ReportRequest true "Reason"
// @Success      201  {object}  entity.Report
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /videos/{video_id}/reports [post]
func (h *InteractionHandler) FileReport(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.interactionUseCase.FileReport(c.Request.Context(), c.GetString(middleware.ContextUserID), videoID, req.Reason)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// Subscribe godoc
// @Summary      Subscribe to a channel
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Success      200  {object}  entity.Subscription
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /channels/{channel_id}/subscription [put]
func (h *InteractionHandler) Subscribe(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}

	sub, err := h.interactionUseCase.Subscribe(c.Request.Context(), c.GetString(middleware.ContextUserID), channelID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// Unsubscribe godoc
// @Summary      Unsubscribe from a channel
// @Tags         interactions
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Success      200  {object}  entity.Subscription
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /channels/{channel_id}/subscription [delete]
func (h *InteractionHandler) Unsubscribe(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}

	sub, err := h.interactionUseCase.Unsubscribe(c.Request.Context(), c.GetString(middleware.ContextUserID), channelID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}
