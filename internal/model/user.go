package model

import (
	"time"
)

type User struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	Username     string        `json:"username" gorm:"type:varchar(50);not null"`
	City         string        `json:"city" gorm:"type:varchar(50);not null"`
	ExternalID   int64         `json:"user_id" gorm:"column:user_id;not null;uniqueIndex"` // identifier issued by the caller
	TestAttempts []TestAttempt `json:"test_attempts,omitempty" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
