package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"vidstream/pkg/logger"
	"vidstream/services/analytics/internal/entity"
	"vidstream/services/analytics/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 100
	defaultRiskMinReports      = 1
	defaultRiskLimit           = 20
	defaultReporterMinReports  = 3
	defaultReporterLimit       = 50
	maxPageLimit               = 500
)

type AnalyticsHandler struct {
	analyticsUseCase usecase.AnalyticsUseCase
	logger           *logger.Logger
}

func NewAnalyticsHandler(analyticsUseCase usecase.AnalyticsUseCase, logger *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
		logger:           logger,
	}
}

func (h *AnalyticsHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, entity.ErrGone):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	default:
		h.logger.Error("Analytics request %s failed: %v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute analytics"})
	}
}

// pathID reads a uuid path parameter, replying 400 when it is malformed.
func pathID(c *gin.Context, name string) (string, bool) {
	id := c.Param(name)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s", name)})
		return "", false
	}
	return id, true
}

// queryInt reads an optional integer query parameter bounded by [lo, hi].
func queryInt(c *gin.Context, name string, def, lo, hi int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < lo || v > hi {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s must be an integer between %d and %d", name, lo, hi)})
		return 0, false
	}
	return v, true
}

// Recommend godoc
// @Summary      Recommend videos
// @Description  Ranks every catalog video for the user by channel affinity, active subscription and popularity. Ties are broken by video id ascending.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        limit query int false "Maximum number of videos (1-100)" default(10)
// @Success      200  {array}   entity.VideoRef
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      410  {object}  map[string]string
// @Router       /users/{user_id}/recommendations [get]
func (h *AnalyticsHandler) Recommend(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultRecommendationLimit, 1, maxRecommendationLimit)
	if !ok {
		return
	}

	videos, err := h.analyticsUseCase.Recommend(c.Request.Context(), userID, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id": userID,
		"videos":  videos,
	})
}

// GetCredibility godoc
// @Summary      Reporter credibility
// @Description  Share of the user's filed reports that were resolved, as a percentage.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.Credibility
// @Failure      404  {object}  map[string]string
// @Failure      410  {object}  map[string]string
// @Router       /users/{user_id}/credibility [get]
func (h *AnalyticsHandler) GetCredibility(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	cred, err := h.analyticsUseCase.UserCredibility(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cred)
}

// GetYearlyViews godoc
// @Summary      Views in a year
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        year query int false "Calendar year, defaults to the current one"
// @Success      200  {object}  entity.YearlyViews
// @Router       /users/{user_id}/stats/views [get]
func (h *AnalyticsHandler) GetYearlyViews(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year", 0, 1970, 9999)
	if !ok {
		return
	}

	views, err := h.analyticsUseCase.YearlyViews(c.Request.Context(), userID, year)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetFavoriteCreator godoc
// @Summary      Most watched channel in a year
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        year query int false "Calendar year, defaults to the current one"
// @Success      200  {object}  entity.FavoriteCreator
// @Router       /users/{user_id}/stats/favorite-creator [get]
func (h *AnalyticsHandler) GetFavoriteCreator(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year", 0, 1970, 9999)
	if !ok {
		return
	}

	favorite, err := h.analyticsUseCase.FavoriteCreator(c.Request.Context(), userID, year)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorite)
}

// GetYearlyReactions godoc
// @Summary      Comments and reactions in a year
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Param        year query int false "Calendar year, defaults to the current one"
// @Success      200  {object}  entity.YearlyReactions
// @Router       /users/{user_id}/stats/reactions [get]
func (h *AnalyticsHandler) GetYearlyReactions(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year", 0, 1970, 9999)
	if !ok {
		return
	}

	reactions, err := h.analyticsUseCase.YearlyReactions(c.Request.Context(), userID, year)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reactions)
}

// GetAverageWatch godoc
// @Summary      Average watched percentage
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        user_id path string true "User ID"
// @Success      200  {object}  entity.AverageWatch
// @Router       /users/{user_id}/stats/average-view-time [get]
func (h *AnalyticsHandler) GetAverageWatch(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	avg, err := h.analyticsUseCase.AverageWatchPercentage(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, avg)
}

// GetChannelInfo godoc
// @Summary      Channel overview
// @Description  Subscribers, per-video views and the number of strikes still in effect.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Success      200  {object}  entity.ChannelInfo
// @Failure      404  {object}  map[string]string
// @Router       /channels/{channel_id}/info [get]
func (h *AnalyticsHandler) GetChannelInfo(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}

	info, err := h.analyticsUseCase.ChannelInfo(c.Request.Context(), channelID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// GetChannelRevenue godoc
// @Summary      Channel revenue
// @Description  Accrued paid-subscription revenue. Every period bills at least one month.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Success      200  {object}  entity.ChannelRevenue
// @Failure      404  {object}  map[string]string
// @Router       /channels/{channel_id}/revenue [get]
func (h *AnalyticsHandler) GetChannelRevenue(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}

	revenue, err := h.analyticsUseCase.ChannelRevenue(c.Request.Context(), channelID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, revenue)
}

// GetActiveStrikes godoc
// @Summary      Active strikes
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]string
// @Router       /channels/{channel_id}/strikes/active [get]
func (h *AnalyticsHandler) GetActiveStrikes(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}

	count, err := h.analyticsUseCase.ActiveStrikeCount(c.Request.Context(), channelID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"channel_id":     channelID,
		"active_strikes": count,
	})
}

// GetChannelRisk godoc
// @Summary      Channel risk profile
// @Description  Classifies the channel on all-time strikes and total reports.
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        channel_id path string true "Channel ID"
// @Param        min_reports query int false "Report this channel only if it has at least this many reports" default(0)
// @Success      200  {object}  entity.ChannelRiskProfile
// @Failure      404  {object}  map[string]string
// @Router       /channels/{channel_id}/risk [get]
func (h *AnalyticsHandler) GetChannelRisk(c *gin.Context) {
	channelID, ok := pathID(c, "channel_id")
	if !ok {
		return
	}
	minReports, ok := queryInt(c, "min_reports", 0, 0, 1<<30)
	if !ok {
		return
	}

	profile, err := h.analyticsUseCase.ChannelRiskProfile(c.Request.Context(), channelID, int64(minReports))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetVideoStats godoc
// @Summary      Video statistics
// @Tags         analytics
// @Produce      json
// @Security     BearerAuth
// @Param        video_id path string true "Video ID"
// @Success      200  {object}  entity.VideoStats
// @Failure      404  {object}  map[string]string
// @Router       /videos/{video_id}/stats [get]
func (h *AnalyticsHandler) GetVideoStats(c *gin.Context) {
	videoID, ok := pathID(c, "video_id")
	if !ok {
		return
	}

	stats, err := h.analyticsUseCase.VideoStats(c.Request.Context(), videoID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetChannelsRisk godoc
// @Summary      Risk report over all channels
// @Description  Moderator only. Channels with at least min_reports reports, most reported first.
// @Tags         moderation-analytics
// @Produce      json
// @Security     BearerAuth
// @Param        min_reports query int false "Minimum reports" default(1)
// @Param        limit query int false "Maximum channels" default(20)
// @Success      200  {array}   entity.ChannelRiskProfile
// @Failure      403  {object}  map[string]string
// @Router       /moderation/channels/risk [get]
func (h *AnalyticsHandler) GetChannelsRisk(c *gin.Context) {
	minReports, ok := queryInt(c, "min_reports", defaultRiskMinReports, 0, 1<<30)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultRiskLimit, 1, maxPageLimit)
	if !ok {
		return
	}

	profiles, err := h.analyticsUseCase.ChannelsRiskReport(c.Request.Context(), int64(minReports), limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": profiles})
}

// GetProblematicReporters godoc
// @Summary      Users filing many reports
// @Description  Moderator only. Users with at least min_reports filed reports, highest count first.
// @Tags         moderation-analytics
// @Produce      json
// @Security     BearerAuth
// @Param        min_reports query int false "Minimum reports" default(3)
// @Param        skip query int false "Offset" default(0)
// @Param        limit query int false "Page size" default(50)
// @Success      200  {array}   entity.ProblematicReporter
// @Failure      403  {object}  map[string]string
// @Router       /moderation/users/problematic [get]
func (h *AnalyticsHandler) GetProblematicReporters(c *gin.Context) {
	minReports, ok := queryInt(c, "min_reports", defaultReporterMinReports, 0, 1<<30)
	if !ok {
		return
	}
	skip, ok := queryInt(c, "skip", 0, 0, 1<<30)
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", defaultReporterLimit, 1, maxPageLimit)
	if !ok {
		return
	}

	reporters, err := h.analyticsUseCase.ProblematicReporters(c.Request.Context(), int64(minReports), skip, limit)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": reporters})
}
