package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"vidstream/pkg/logger"
	"vidstream/pkg/middleware"
	"vidstream/services/moderation/internal/entity"
	"vidstream/services/moderation/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxReportLimit = 500

type ModerationHandler struct {
	moderationUseCase usecase.ModerationUseCase
	logger            *logger.Logger
}

func NewModerationHandler(moderationUseCase usecase.ModerationUseCase, logger *logger.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUseCase: moderationUseCase,
		logger:            logger,
	}
}

type StrikeRequest struct {
	VideoID      *string `json:"video_id" binding:"omitempty,uuid"`
	DurationDays *int    `json:"duration_days" binding:"omitempty,min=1,max=3650"`
}

func (h *ModerationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrGone):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidState):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Moderation request %s failed: %v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply moderation action"})
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

// IssueStrike godoc
// @Summary      Issue a channel strike
// @Description  Records a strike against the channel, optionally tied to one of its videos. Duration defaults to 7 days.
// @Tags         moderation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Param        request body StrikeRequest false "Strike details"
// @Success      201  {object}  entity.StrikeResult
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /moderation/channels/{channel_id}/strikes [post]
func (h *ModerationHandler) IssueStrike(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}

	// The body is optional.
	var req StrikeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := h.moderationUseCase.IssueStrike(c.Request.Context(), c.GetString(middleware.ContextUserID), channelID, usecase.StrikeRequest{
		VideoID:      req.VideoID,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// ResolveReport godoc
// @Summary      Resolve a report
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        report_id path string true "Report ID"
// @Success      200  {object}  entity.ReportResolution
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /moderation/reports/{report_id}/resolve [patch]
func (h *ModerationHandler) ResolveReport(c *gin.Context) {
	reportID, ok := pathID(c, "report_id")
	if !ok {
		return
	}

	result, err := h.moderationUseCase.ResolveReport(c.Request.Context(), c.GetString(middleware.ContextUserID), reportID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// BanUser godoc
// @Summary      Ban a user
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.BanResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      410  {object}  map[string]string
// @Router       /moderation/users/{user_id}/ban [post]
func (h *ModerationHandler) BanUser(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	result, err := h.moderationUseCase.BanUser(c.Request.Context(), c.GetString(middleware.ContextUserID), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListReports godoc
// @Summary      List reports
// @Description  Newest first. Omit resolved to list reports in either state.
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        resolved query bool false "Filter by resolution state"
// @Param        skip query int false "Offset" default(0)
// @Param        limit query int false "Page size" default(50)
// @Success      200  {object}  entity.ReportPage
// @Failure      400  {object}  map[string]string
// @Router       /moderation/reports [get]
func (h *ModerationHandler) ListReports(c *gin.Context) {
	var resolved *bool
	if raw := c.Query("resolved"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resolved must be a boolean"})
			return
		}
		resolved = &v
	}

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil || skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultReportLimit)))
	if err != nil || limit < 1 || limit > maxReportLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("limit must be an integer between 1 and %d", maxReportLimit)})
		return
	}

	page, err := h.moderationUseCase.ListReports(c.Request.Context(), resolved, skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// DeactivateVideo godoc
// @Summary      Deactivate a video
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  entity.VideoAction
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /moderation/videos/{video_id}/deactivate [patch]
func (h *ModerationHandler) DeactivateVideo(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	result, err := h.moderationUseCase.DeactivateVideo(c.Request.Context(), c.GetString(middleware.ContextUserID), videoID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DemonetizeVideo godoc
// @Summary      Demonetize a video
// @Tags         moderation
// @Produce      json
// @Security     BearerAuth
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  entity.VideoAction
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /moderation/videos/{video_id}/demonetize [patch]
func (h *ModerationHandler) DemonetizeVideo(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	result, err := h.moderationUseCase.DemonetizeVideo(c.Request.Context(), c.GetString(middleware.ContextUserID), videoID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
