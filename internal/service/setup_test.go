package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lshigami/testgrader/config"
	"github.com/lshigami/testgrader/database"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/repository"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

type fixture struct {
	db         *gorm.DB
	cfg        *config.Config
	admin      AdminTestService
	user       UserTestService
	submission TestSubmissionService
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.Database{
		Driver:   config.DriverSQLite,
		DSN:      fmt.Sprintf("file:grader_%d?mode=memory&cache=shared", dbSeq.Add(1)),
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newFixture(t *testing.T, mode, missing string) *fixture {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{Scoring: config.Scoring{Mode: mode, MissingAnswers: missing}}

	testRepo := repository.NewTestRepository(db)
	userRepo := repository.NewUserRepository(db)
	attemptRepo := repository.NewTestAttemptRepository(db)

	return &fixture{
		db:         db,
		cfg:        cfg,
		admin:      NewAdminTestService(testRepo, userRepo, attemptRepo, db),
		user:       NewUserTestService(testRepo, repository.NewAnswerRepository(db)),
		submission: NewTestSubmissionService(testRepo, userRepo, attemptRepo, NewScoreCalculatorService(cfg), cfg, db),
	}
}

func weight(w float64) *float64 { return &w }

// sampleTest is the 15-question test: ten OPEN letters then five CLOSE words.
func sampleTest() dto.TestCreateDTO {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	req := dto.TestCreateDTO{
		TestName:       "test1",
		OpenQuestions:  10,
		CloseQuestions: 5,
		TestTime:       120,
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
	}
	for i, letter := range []string{"A", "B", "C", "D", "E", "F", "A", "B", "C", "D"} {
		req.Answers = append(req.Answers, dto.AnswerKeyEntryDTO{
			QuestionNumber: i + 1, QuestionType: "OPEN", CorrectAnswer: letter, Score: weight(1.5),
		})
	}
	for i, word := range []string{"All", "Bee", "Car", "Door", "Elephant"} {
		req.Answers = append(req.Answers, dto.AnswerKeyEntryDTO{
			QuestionNumber: i + 11, QuestionType: "CLOSE", CorrectAnswer: word, Score: weight(1.5),
		})
	}
	return req
}

func sampleKey() []string {
	return []string{"A", "B", "C", "D", "E", "F", "A", "B", "C", "D", "All", "Bee", "Car", "Door", "Elephant"}
}

func submission(userID int64, answers ...string) dto.TestAttemptSubmitDTO {
	completed := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	return dto.TestAttemptSubmitDTO{
		UserID:      userID,
		Username:    "sardor",
		City:        "Tashkent",
		StartedAt:   completed.Add(-90 * time.Minute),
		CompletedAt: completed,
		Answers:     answers,
	}
}

func countRows(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(model)
	if where != "" {
		q = q.Where(where, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", model, err)
	}
	return n
}
