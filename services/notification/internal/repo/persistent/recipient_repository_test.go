package persistent

import (
	"context"
	"errors"
	"testing"

	"vidstream/services/notification/internal/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestChannelOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipientRepository(db)

	mock.ExpectQuery(`SELECT "id","name","owner_id" FROM "channels" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}).AddRow("chan-1", "cats", "owner-1"))

	owner, err := repo.ChannelOwner(context.Background(), "chan-1")

	require.NoError(t, err)
	assert.Equal(t, "owner-1", owner.OwnerID)
	assert.Equal(t, "cats", owner.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelOwner_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipientRepository(db)

	mock.ExpectQuery(`FROM "channels"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_id"}))

	_, err := repo.ChannelOwner(context.Background(), "chan-404")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestVideoOwner(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipientRepository(db)

	mock.ExpectQuery(`SELECT videos.id AS video_id, videos.title, channels.owner_id FROM "videos" JOIN channels ON channels.id = videos.channel_id WHERE videos.id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"video_id", "title", "owner_id"}).AddRow("video-1", "Cat compilation", "owner-1"))

	owner, err := repo.VideoOwner(context.Background(), "video-1")

	require.NoError(t, err)
	assert.Equal(t, &entity.VideoOwner{VideoID: "video-1", Title: "Cat compilation", OwnerID: "owner-1"}, owner)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVideoOwner_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipientRepository(db)

	mock.ExpectQuery(`FROM "videos"`).
		WillReturnRows(sqlmock.NewRows([]string{"video_id", "title", "owner_id"}))

	_, err := repo.VideoOwner(context.Background(), "video-404")

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestVideoOwner_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRecipientRepository(db)

	mock.ExpectQuery(`FROM "videos"`).WillReturnError(errors.New("connection reset"))

	_, err := repo.VideoOwner(context.Background(), "video-1")

	assert.Error(t, err)
	assert.False(t, errors.Is(err, entity.ErrNotFound))
}
