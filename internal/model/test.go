package model

import (
	"time"
)

type Test struct {
	ID             uint          `gorm:"primarykey" json:"id"`
	TestName       string        `json:"test_name" gorm:"not null"`
	OpenQuestions  int           `json:"open_questions" gorm:"not null;default:0"`
	CloseQuestions int           `json:"close_questions" gorm:"not null;default:0"`
	TestTime       int           `json:"test_time" gorm:"not null;default:60"` // minutes
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	IsEnded        bool          `json:"is_ended" gorm:"not null;default:false"`
	Answers        []Answer      `json:"answers,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	TestAttempts   []TestAttempt `json:"test_attempts,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	UserAnswers    []UserAnswer  `json:"-" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
