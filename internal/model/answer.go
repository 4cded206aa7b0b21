package model

import (
	"time"
)

// Answer is one entry of a test's answer key.
type Answer struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	TestID         uint         `json:"test_id" gorm:"not null;uniqueIndex:idx_answers_test_question"`
	QuestionNumber int          `json:"question_number" gorm:"not null;uniqueIndex:idx_answers_test_question"`
	QuestionType   QuestionType `json:"question_type" gorm:"type:varchar(10);not null"`
	CorrectAnswer  string       `json:"correct_answer" gorm:"type:varchar(150);not null"`
	Score          float64      `json:"score" gorm:"not null"` // weight, 0 allowed
	UserAnswers    []UserAnswer `json:"-" gorm:"foreignKey:AnswerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
