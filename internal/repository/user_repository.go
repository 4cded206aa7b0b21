package repository

import (
	"context"

	"github.com/lshigami/testgrader/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Upsert(ctx context.Context, user *model.User) error
	FindByExternalID(ctx context.Context, externalID int64) (*model.User, error)
	DeleteByExternalID(ctx context.Context, externalID int64) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

// Upsert looks the user up by external ID, creating it when missing and
// refreshing username and city otherwise. user.ID is populated on return.
// Two concurrent first submissions for the same ID race on the unique index;
// the loser's transaction fails.
func (r *userRepository) Upsert(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", user.ExternalID).
		Assign(model.User{Username: user.Username, City: user.City}).
		FirstOrCreate(user).Error
}

func (r *userRepository) FindByExternalID(ctx context.Context, externalID int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("user_id = ?", externalID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteByExternalID removes the user with all attempts and their answers.
func (r *userRepository) DeleteByExternalID(ctx context.Context, externalID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.Where("user_id = ?", externalID).First(&user).Error; err != nil {
			return err
		}
		attemptIDs := tx.Model(&model.TestAttempt{}).Select("id").Where("user_id = ?", user.ID)
		if err := tx.Where("attempt_id IN (?)", attemptIDs).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&model.TestAttempt{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
