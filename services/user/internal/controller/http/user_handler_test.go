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

	"vidstream/pkg/logger"
	"vidstream/pkg/middleware"
	"vidstream/services/user/internal/entity"
	"vidstream/services/user/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	aliceID = "5c1e0a52-0000-4000-8000-000000000001"
	bobID   = "5c1e0a52-0000-4000-8000-000000000002"
)

// MockUserUseCase is a mock implementation of UserUseCase
type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetUser(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(ctx context.Context, caller usecase.Caller, userID string, update entity.UserUpdate) (*entity.User, error) {
	args := m.Called(caller, userID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, caller usecase.Caller, userID string) error {
	args := m.Called(caller, userID)
	return args.Error(0)
}

func setupRouter(uc *MockUserUseCase, callerID, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewUserHandler(uc, logger.New())

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, callerID)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	})
	r.GET("/users/:user_id", handler.GetUser)
	r.PATCH("/users/:user_id", handler.UpdateUser)
	r.DELETE("/users/:user_id", handler.DeleteUser)
	return r
}

func TestGetUser(t *testing.T) {
	uc := new(MockUserUseCase)
	router := setupRouter(uc, bobID, "")
	uc.On("GetUser", aliceID).Return(&entity.User{ID: aliceID, Username: "alice"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users/"+aliceID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "alice", body["username"])
}

func TestGetUser_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "missing", err: entity.ErrNotFound, want: http.StatusNotFound},
		{name: "deleted", err: entity.ErrGone, want: http.StatusGone},
		{name: "store failure", err: errors.New("timeout"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUserUseCase)
			router := setupRouter(uc, bobID, "")
			uc.On("GetUser", aliceID).Return(nil, tt.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/users/"+aliceID, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestGetUser_InvalidID(t *testing.T) {
	uc := new(MockUserUseCase)
	router := setupRouter(uc, bobID, "")

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/users/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUser(t *testing.T) {
	uc := new(MockUserUseCase)
	router := setupRouter(uc, aliceID, "")
	username := "alice2"
	uc.On("UpdateUser", usecase.Caller{UserID: aliceID}, aliceID, entity.UserUpdate{Username: &username}).
		Return(&entity.User{ID: aliceID, Username: username}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/users/"+aliceID, bytes.NewBufferString(`{"username":"alice2"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestUpdateUser_ModeratorCaller(t *testing.T) {
	uc := new(MockUserUseCase)
	router := setupRouter(uc, bobID, middleware.RoleModerator)
	email := "alice@new.example.com"
	uc.On("UpdateUser", usecase.Caller{UserID: bobID, IsModerator: true}, aliceID, entity.UserUpdate{Email: &email}).
		Return(&entity.User{ID: aliceID, Email: email}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPatch, "/users/"+aliceID, bytes.NewBufferString(`{"email":"alice@new.example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	uc.AssertExpectations(t)
}

func TestUpdateUser_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "taken", err: fmt.Errorf("username already exists: %w", entity.ErrInvalidState), want: http.StatusBadRequest},
		{name: "store failure", err: errors.New("deadlock detected"), want: http.StatusInternalServerError},
		{name: "forbidden", err: entity.ErrForbidden, want: http.StatusForbidden},
		{name: "deleted", err: entity.ErrGone, want: http.StatusGone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUserUseCase)
			router := setupRouter(uc, bobID, "")
			uc.On("UpdateUser", mock.Anything, aliceID, mock.Anything).Return(nil, tt.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPatch, "/users/"+aliceID, bytes.NewBufferString(`{"username":"charlie"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestUpdateUser_InvalidBody(t *testing.T) {
	for _, body := range []string{`{"username":"ab"}`, `{"email":"not-an-email"}`, `nope`} {
		t.Run(body, func(t *testing.T) {
			uc := new(MockUserUseCase)
			router := setupRouter(uc, aliceID, "")

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPatch, "/users/"+aliceID, bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	uc := new(MockUserUseCase)
	router := setupRouter(uc, aliceID, "")
	uc.On("DeleteUser", usecase.Caller{UserID: aliceID}, aliceID).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/users/"+aliceID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	uc.AssertExpectations(t)
}

func TestDeleteUser_AlreadyDeleted(t *testing.T) {
	uc := new(MockUserUseCase)
	router := setupRouter(uc, aliceID, "")
	uc.On("DeleteUser", usecase.Caller{UserID: aliceID}, aliceID).Return(entity.ErrGone)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/users/"+aliceID, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusGone, w.Code)
}
