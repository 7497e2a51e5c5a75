package persistent

import (
	"context"
	"errors"
	"fmt"

	"vidstream/pkg/models"
	"vidstream/services/user/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, update entity.UserUpdate) (*entity.User, error)
	SoftDelete(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entity.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("username or email already exists: %w", entity.ErrInvalidState)
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user %s: %w", id, translate(err))
	}
	return ToUserEntity(&user), nil
}

// lockActive loads the user row FOR UPDATE and rejects soft-deleted users.
func lockActive(tx *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, fmt.Errorf("user %s: %w", id, translate(err))
	}
	if user.IsDeleted {
		return nil, fmt.Errorf("user %s: %w", id, entity.ErrGone)
	}
	return &user, nil
}

// taken reports whether another user already holds value in column.
func taken(tx *gorm.DB, column, value, selfID string) (bool, error) {
	var count int64
	err := tx.Model(&models.User{}).
		Where(column+" = ? AND id <> ?", value, selfID).
		Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Update(ctx context.Context, id string, update entity.UserUpdate) (*entity.User, error) {
	var user *models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if user, err = lockActive(tx, id); err != nil {
			return err
		}

		changes := map[string]interface{}{}
		if update.Username != nil && *update.Username != user.Username {
			exists, err := taken(tx, "username", *update.Username, id)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("username already exists: %w", entity.ErrInvalidState)
			}
			changes["username"] = *update.Username
		}
		if update.Email != nil && *update.Email != user.Email {
			exists, err := taken(tx, "email", *update.Email, id)
			if err != nil {
				return err
			}
			if exists {
				return fmt.Errorf("email already exists: %w", entity.ErrInvalidState)
			}
			changes["email"] = *update.Email
		}
		if len(changes) == 0 {
			return nil
		}

		if err := tx.Model(user).Updates(changes).Error; err != nil {
			return translate(err)
		}
		if update.Username != nil {
			user.Username = *update.Username
		}
		if update.Email != nil {
			user.Email = *update.Email
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToUserEntity(user), nil
}

func (r *userRepository) SoftDelete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := lockActive(tx, id)
		if err != nil {
			return err
		}
		return tx.Model(user).Update("is_deleted", true).Error
	})
}
