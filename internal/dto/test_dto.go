package dto

import "time"

// AnswerKeyEntryDTO is one question of the answer key in a test definition.
type AnswerKeyEntryDTO struct {
	QuestionNumber int      `json:"question_number" binding:"omitempty,min=1"` // defaults to the entry's position
	QuestionType   string   `json:"question_type" binding:"required"`          // OPEN or CLOSE
	CorrectAnswer  string   `json:"correct_answer" binding:"required,max=150"`
	Score          *float64 `json:"score,omitempty" binding:"omitempty,gte=0"`
}

// TestCreateDTO is for admin to create a test together with its answer key.
type TestCreateDTO struct {
	TestName       string              `json:"test_name" binding:"required"`
	OpenQuestions  int                 `json:"open_questions" binding:"gte=0"`
	CloseQuestions int                 `json:"close_questions" binding:"gte=0"`
	TestTime       int                 `json:"test_time" binding:"omitempty,gt=0"`
	StartTime      time.Time           `json:"start_time"`
	EndTime        time.Time           `json:"end_time"`
	IsEnded        bool                `json:"is_ended"`
	Answers        []AnswerKeyEntryDTO `json:"answers" binding:"required,min=1,dive"`
}

// AnswerKeyResponseDTO exposes a stored answer-key entry (admin only).
type AnswerKeyResponseDTO struct {
	ID             uint    `json:"id"`
	QuestionNumber int     `json:"question_number"`
	QuestionType   string  `json:"question_type"`
	CorrectAnswer  string  `json:"correct_answer"`
	Score          float64 `json:"score"`
}

// TestResponseDTO is the admin view of a test, answer key included.
type TestResponseDTO struct {
	ID             uint                   `json:"id"`
	TestName       string                 `json:"test_name"`
	OpenQuestions  int                    `json:"open_questions"`
	CloseQuestions int                    `json:"close_questions"`
	TestTime       int                    `json:"test_time"`
	StartTime      time.Time              `json:"start_time"`
	EndTime        time.Time              `json:"end_time"`
	IsEnded        bool                   `json:"is_ended"`
	Answers        []AnswerKeyResponseDTO `json:"answers,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

// QuestionInfoDTO describes a question without revealing its answer.
type QuestionInfoDTO struct {
	QuestionNumber int    `json:"question_number"`
	QuestionType   string `json:"question_type"`
}

// TestDetailsDTO is the test-taker view of a test.
type TestDetailsDTO struct {
	ID             uint              `json:"id"`
	TestName       string            `json:"test_name"`
	OpenQuestions  int               `json:"open_questions"`
	CloseQuestions int               `json:"close_questions"`
	TestTime       int               `json:"test_time"`
	StartTime      time.Time         `json:"start_time"`
	EndTime        time.Time         `json:"end_time"`
	IsEnded        bool              `json:"is_ended"`
	Questions      []QuestionInfoDTO `json:"questions"`
}

// TestSummaryDTO is used for listing tests.
type TestSummaryDTO struct {
	ID            uint      `json:"id"`
	TestName      string    `json:"test_name"`
	QuestionCount int       `json:"question_count"`
	TestTime      int       `json:"test_time"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	IsEnded       bool      `json:"is_ended"`
	CreatedAt     time.Time `json:"created_at"`
}

// --- DTOs for Test Attempts ---

// TestAttemptSubmitDTO carries the submitted answers in question-number order.
type TestAttemptSubmitDTO struct {
	UserID      int64     `json:"user_id" binding:"required"`
	Username    string    `json:"username" binding:"required,max=50"`
	City        string    `json:"city" binding:"required,max=50"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Answers     []string  `json:"answers" binding:"required,min=1,dive,max=150"`
}

// AttemptResultDTO is returned once an attempt is graded and stored.
type AttemptResultDTO struct {
	AttemptID      uint    `json:"attempt_id"`
	TestID         uint    `json:"test_id"`
	UserID         int64   `json:"user_id"`
	Score          float64 `json:"score"`
	CorrectAnswers int     `json:"correct_answers"`
	WrongAnswers   int     `json:"wrong_answers"`
	TotalQuestions int     `json:"total_questions"`
}

// UserAnswerResponseDTO is one graded answer within an attempt.
type UserAnswerResponseDTO struct {
	QuestionNumber int    `json:"question_number"`
	QuestionType   string `json:"question_type"`
	UserAnswer     string `json:"user_answer"`
	CorrectAnswer  string `json:"correct_answer"`
	IsCorrect      bool   `json:"is_correct"`
}

// TestAttemptDetailDTO is the full view of a single attempt.
type TestAttemptDetailDTO struct {
	ID             uint                    `json:"id"`
	TestID         uint                    `json:"test_id"`
	TestName       string                  `json:"test_name,omitempty"`
	UserID         int64                   `json:"user_id"`
	Username       string                  `json:"username"`
	City           string                  `json:"city"`
	Score          float64                 `json:"score"`
	CorrectAnswers int                     `json:"correct_answers"`
	WrongAnswers   int                     `json:"wrong_answers"`
	StartedAt      time.Time               `json:"started_at"`
	CompletedAt    time.Time               `json:"completed_at"`
	Answers        []UserAnswerResponseDTO `json:"answers,omitempty"`
}

// TestAttemptSummaryDTO is for listing attempts on a test.
type TestAttemptSummaryDTO struct {
	ID             uint      `json:"id"`
	TestID         uint      `json:"test_id"`
	UserID         int64     `json:"user_id"`
	Username       string    `json:"username"`
	Score          float64   `json:"score"`
	CorrectAnswers int       `json:"correct_answers"`
	WrongAnswers   int       `json:"wrong_answers"`
	StartedAt      time.Time `json:"started_at"`
	CompletedAt    time.Time `json:"completed_at"`
}
