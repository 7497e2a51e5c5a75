package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vidstream/pkg/logger"
	"vidstream/pkg/middleware"
	"vidstream/services/interaction/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	userID    = "3c4d5e6f-0000-4000-8000-000000000001"
	videoID   = "3c4d5e6f-0000-4000-8000-000000000002"
	channelID = "3c4d5e6f-0000-4000-8000-000000000003"
)

var watchedAt = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

type MockInteractionUseCase struct {
	mock.Mock
}

func (m *MockInteractionUseCase) RecordView(ctx context.Context, userID, videoID string, watchedPercentage float64, reaction *string) (*entity.View, error) {
	args := m.Called(userID, videoID, watchedPercentage, reaction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.View), args.Error(1)
}

func (m *MockInteractionUseCase) AddComment(ctx context.Context, userID, videoID, text string) (*entity.Comment, error) {
	args := m.Called(userID, videoID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockInteractionUseCase) FileReport(ctx context.Context, userID, videoID, reason string) (*entity.Report, error) {
	args := m.Called(userID, videoID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Report), args.Error(1)
}

func (m *MockInteractionUseCase) Subscribe(ctx context.Context, userID, channelID string) (*entity.Subscription, error) {
	args := m.Called(userID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func (m *MockInteractionUseCase) Unsubscribe(ctx context.Context, userID, channelID string) (*entity.Subscription, error) {
	args := m.Called(userID, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Subscription), args.Error(1)
}

func setupRouter(uc *MockInteractionUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewInteractionHandler(uc, logger.New())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	})
	r.PUT("/videos/:video_id/view", handler.RecordView)
	r.POST("/videos/:video_id/comments", handler.AddComment)
	r.POST("/videos/:video_id/reports", handler.FileReport)
	r.PUT("/channels/:channel_id/subscription", handler.Subscribe)
	r.DELETE("/channels/:channel_id/subscription", handler.Unsubscribe)
	return r
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRecordView(t *testing.T) {
	uc := new(MockInteractionUseCase)
	router := setupRouter(uc)
	liked := entity.ReactionLiked

	uc.On("RecordView", userID, videoID, 0.75, &liked).Return(&entity.View{
		UserID:            userID,
		VideoID:           videoID,
		WatchedPercentage: 0.75,
		Reaction:          &liked,
		WatchedAt:         watchedAt,
	}, nil)

	w := doJSON(router, http.MethodPut, "/videos/"+videoID+"/view", `{"watched_percentage": 0.75, "reaction": "Liked"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Liked", body["reaction"])
	assert.Equal(t, 0.75, body["watched_percentage"])
	uc.AssertExpectations(t)
}

func TestRecordView_ZeroPercentageIsAccepted(t *testing.T) {
	uc := new(MockInteractionUseCase)
	router := setupRouter(uc)

	uc.On("RecordView", userID, videoID, 0.0, (*string)(nil)).Return(&entity.View{VideoID: videoID}, nil)

	w := doJSON(router, http.MethodPut, "/videos/"+videoID+"/view", `{"watched_percentage": 0}`)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestRecordView_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "missing percentage", path: "/videos/" + videoID + "/view", body: `{"reaction": "Liked"}`},
		{name: "malformed video id", path: "/videos/abc/view", body: `{"watched_percentage": 0.5}`},
		{name: "not json", path: "/videos/" + videoID + "/view", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockInteractionUseCase)
			router := setupRouter(uc)

			w := doJSON(router, http.MethodPut, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "RecordView", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAddComment(t *testing.T) {
	uc := new(MockInteractionUseCase)
	router := setupRouter(uc)

	uc.On("AddComment", userID, videoID, "great").Return(&entity.Comment{ID: "comment-1", Text: "great"}, nil)

	w := doJSON(router, http.MethodPost, "/videos/"+videoID+"/comments", `{"comment_text": "great"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"comment_text":"great"`)
	uc.AssertExpectations(t)
}

func TestAddComment_MissingText(t *testing.T) {
	uc := new(MockInteractionUseCase)
	router := setupRouter(uc)

	w := doJSON(router, http.MethodPost, "/videos/"+videoID+"/comments", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFileReport(t *testing.T) {
	uc := new(MockInteractionUseCase)
	router := setupRouter(uc)

	uc.On("FileReport", userID, videoID, "spam").Return(&entity.Report{ID: "report-1", Reason: "spam"}, nil)

	w := doJSON(router, http.MethodPost, "/videos/"+videoID+"/reports", `{"reason": "spam"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	uc.AssertExpectations(t)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "not found", err: fmt.Errorf("video: %w", entity.ErrNotFound), code: http.StatusNotFound},
		{name: "gone", err: fmt.Errorf("user: %w", entity.ErrGone), code: http.StatusGone},
		{name: "invalid state", err: fmt.Errorf("already reported: %w", entity.ErrInvalidState), code: http.StatusBadRequest},
		{name: "banned", err: fmt.Errorf("banned: %w", entity.ErrForbidden), code: http.StatusForbidden},
		{name: "internal", err: errors.New("connection reset"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockInteractionUseCase)
			router := setupRouter(uc)

			uc.On("FileReport", userID, videoID, "spam").Return(nil, tt.err)

			w := doJSON(router, http.MethodPost, "/videos/"+videoID+"/reports", `{"reason": "spam"}`)

			assert.Equal(t, tt.code, w.Code)
			if tt.code == http.StatusInternalServerError {
				assert.NotContains(t, w.Body.String(), "connection reset")
			}
		})
	}
}

func TestSubscribe(t *testing.T) {
	uc := new(MockInteractionUseCase)
	router := setupRouter(uc)

	uc.On("Subscribe", userID, channelID).
		Return(&entity.Subscription{UserID: userID, ChannelID: channelID, IsActive: true}, nil)

	w := doJSON(router, http.MethodPut, "/channels/"+channelID+"/subscription", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":true`)
	uc.AssertExpectations(t)
}

func TestUnsubscribe_NotSubscribed(t *testing.T) {
	uc := new(MockInteractionUseCase)
	router := setupRouter(uc)

	uc.On("Unsubscribe", userID, channelID).Return(nil, fmt.Errorf("subscription: %w", entity.ErrNotFound))

	w := doJSON(router, http.MethodDelete, "/channels/"+channelID+"/subscription", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
