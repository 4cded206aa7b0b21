package model

import (
	"time"
)

type TestAttempt struct {
	ID             uint         `gorm:"primarykey" json:"id"`
	UserID         uint         `json:"user_id" gorm:"not null;index"`
	User           User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	TestID         uint         `json:"test_id" gorm:"not null;index"`
	Test           Test         `json:"test,omitempty" gorm:"foreignKey:TestID"`
	Score          float64      `json:"score" gorm:"not null;default:0"`
	CorrectAnswers int          `json:"correct_answers" gorm:"not null;default:0"`
	WrongAnswers   int          `json:"wrong_answers" gorm:"not null;default:0"`
	StartedAt      time.Time    `json:"started_at"`
	CompletedAt    time.Time    `json:"completed_at"`
	UserAnswers    []UserAnswer `json:"user_answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}
