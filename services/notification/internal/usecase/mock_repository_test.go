package usecase

import (
	"context"

	"vidstream/services/notification/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockRecipientRepository struct {
	mock.Mock
}

func (m *MockRecipientRepository) ChannelOwner(ctx context.Context, channelID string) (*entity.ChannelOwner, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ChannelOwner), args.Error(1)
}

func (m *MockRecipientRepository) VideoOwner(ctx context.Context, videoID string) (*entity.VideoOwner, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.VideoOwner), args.Error(1)
}

type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Push(ctx context.Context, n *entity.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationStore) List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.Notification), args.Get(1).(int64), args.Error(2)
}
