package model

import (
	"time"
)

// UserAnswer is the value submitted for one answer-key entry within an attempt.
type UserAnswer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	AttemptID  uint      `json:"attempt_id" gorm:"not null;index"`
	AnswerID   uint      `json:"answer_id" gorm:"not null;index"`
	Answer     Answer    `json:"answer,omitempty" gorm:"foreignKey:AnswerID"`
	TestID     uint      `json:"test_id" gorm:"not null;index"` // denormalised from the attempt
	UserAnswer string    `json:"user_answer" gorm:"type:varchar(150);not null"`
	IsCorrect  bool      `json:"is_correct" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}
