package persistent

import (
	"vidstream/pkg/models"
	"vidstream/services/user/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Username:    m.Username,
		Email:       m.Email,
		IsModerator: m.IsModerator,
		IsBanned:    m.IsBanned,
		IsDeleted:   m.IsDeleted,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
