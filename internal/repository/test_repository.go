package repository

import (
	"context"

	"github.com/lshigami/testgrader/internal/model"
	"gorm.io/gorm"
)

// TestWithAnswerCount is a test row together with the size of its answer key.
type TestWithAnswerCount struct {
	model.Test
	AnswerCount int
}

type TestRepository interface {
	WithTx(tx *gorm.DB) TestRepository
	Create(ctx context.Context, test *model.Test) error
	FindByID(ctx context.Context, id uint) (*model.Test, error)
	FindByIDWithAnswers(ctx context.Context, id uint) (*model.Test, error)
	FindAllWithAnswerCount(ctx context.Context) ([]TestWithAnswerCount, error)
	SetEnded(ctx context.Context, id uint, ended bool) error
	Delete(ctx context.Context, id uint) error
}

type testRepository struct {
	db *gorm.DB
}

func NewTestRepository(db *gorm.DB) TestRepository {
	return &testRepository{db: db}
}

func (r *testRepository) WithTx(tx *gorm.DB) TestRepository {
	return &testRepository{db: tx}
}

func (r *testRepository) Create(ctx context.Context, test *model.Test) error {
	// test.Answers are inserted in the same statement batch by GORM's association handling.
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *testRepository) FindByID(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	if err := r.db.WithContext(ctx).First(&test, id).Error; err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindByIDWithAnswers(ctx context.Context, id uint) (*model.Test, error) {
	var test model.Test
	err := r.db.WithContext(ctx).Preload("Answers", func(db *gorm.DB) *gorm.DB {
		return db.Order("answers.question_number ASC")
	}).First(&test, id).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *testRepository) FindAllWithAnswerCount(ctx context.Context) ([]TestWithAnswerCount, error) {
	var results []TestWithAnswerCount
	err := r.db.WithContext(ctx).Model(&model.Test{}).
		Select("tests.*, (SELECT COUNT(*) FROM answers WHERE answers.test_id = tests.id) AS answer_count").
		Order("tests.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *testRepository) SetEnded(ctx context.Context, id uint, ended bool) error {
	res := r.db.WithContext(ctx).Model(&model.Test{}).Where("id = ?", id).Update("is_ended", ended)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the test and everything that hangs off it. Children are
// deleted explicitly so the result does not depend on the driver enforcing
// ON DELETE CASCADE.
func (r *testRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("test_id = ?", id).Delete(&model.UserAnswer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.TestAttempt{}).Error; err != nil {
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Test{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
