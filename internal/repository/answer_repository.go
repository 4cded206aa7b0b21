package repository

import (
	"context"

	"github.com/lshigami/testgrader/internal/model"
	"gorm.io/gorm"
)

type AnswerRepository interface {
	FindByTestID(ctx context.Context, testID uint) ([]model.Answer, error)
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

// FindByTestID returns the answer key ordered by question number.
func (r *answerRepository) FindByTestID(ctx context.Context, testID uint) ([]model.Answer, error) {
	var answers []model.Answer
	if err := r.db.WithContext(ctx).Where("test_id = ?", testID).Order("question_number ASC").Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}
