package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vidstream/pkg/logger"
	"vidstream/pkg/middleware"
	"vidstream/pkg/queue"
	"vidstream/services/notification/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID = "7a8b9c0d-0000-4000-8000-000000000001"

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) HandleModerationEvent(ctx context.Context, event queue.ModerationEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockNotificationUseCase) GetNotifications(ctx context.Context, userID string, limit, offset int) (*entity.NotificationPage, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.NotificationPage), args.Error(1)
}

func setupRouter(uc *MockNotificationUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewNotificationHandler(uc, logger.New())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	})
	r.GET("/notifications", handler.GetNotifications)
	return r
}

func TestGetNotifications(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupRouter(uc)

	uc.On("GetNotifications", userID, 5, 10).Return(&entity.NotificationPage{
		Notifications: []entity.Notification{{UserID: userID, Title: "Channel strike", Type: entity.TypeStrike}},
		Total:         11,
		Limit:         5,
		Offset:        10,
	}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/notifications?limit=5&offset=10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(11), body["total"])
	assert.Len(t, body["notifications"], 1)
	uc.AssertExpectations(t)
}

func TestGetNotifications_Defaults(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupRouter(uc)

	uc.On("GetNotifications", userID, 20, 0).Return(&entity.NotificationPage{Limit: 20}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestGetNotifications_InvalidQuery(t *testing.T) {
	for _, query := range []string{"?limit=abc", "?offset=-1"} {
		t.Run(query, func(t *testing.T) {
			uc := new(MockNotificationUseCase)
			router := setupRouter(uc)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/notifications"+query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "GetNotifications", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGetNotifications_StoreError(t *testing.T) {
	uc := new(MockNotificationUseCase)
	router := setupRouter(uc)

	uc.On("GetNotifications", userID, 20, 0).Return(nil, errors.New("redis down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/notifications", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "redis down")
}
