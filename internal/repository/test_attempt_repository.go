package repository

import (
	"context"

	"github.com/lshigami/testgrader/internal/model"
	"gorm.io/gorm"
)

type TestAttemptRepository interface {
	WithTx(tx *gorm.DB) TestAttemptRepository
	Create(ctx context.Context, attempt *model.TestAttempt) error
	FindByIDWithDetails(ctx context.Context, id uint) (*model.TestAttempt, error)
	FindAllByTestAndUser(ctx context.Context, testID uint, userID *uint) ([]model.TestAttempt, error)
	Delete(ctx context.Context, id uint) error
}

type testAttemptRepository struct {
	db *gorm.DB
}

func NewTestAttemptRepository(db *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: db}
}

func (r *testAttemptRepository) WithTx(tx *gorm.DB) TestAttemptRepository {
	return &testAttemptRepository{db: tx}
}

func (r *testAttemptRepository) Create(ctx context.Context, attempt *model.TestAttempt) error {
	// attempt.UserAnswers are created with it.
	return r.db.WithContext(ctx).Omit("User", "Test").Create(attempt).Error
}

func (r *testAttemptRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.TestAttempt, error) {
	var attempt model.TestAttempt
	err := r.db.WithContext(ctx).
		Preload("Test").
		Preload("User").
		Preload("UserAnswers.Answer").
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *testAttemptRepository) FindAllByTestAndUser(ctx context.Context, testID uint, userID *uint) ([]model.TestAttempt, error) {
	var attempts []model.TestAttempt
	query := r.db.WithContext(ctx).Preload("User").Where("test_id = ?", testID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("completed_at DESC").Order("id DESC").Find(&attempts).Error
	return attempts, err
}

func (r *testAttemptRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attempt_id = ?", id).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.TestAttempt{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
