// Command seed loads the sample test and a graded attempt into the configured database.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/testgrader/config"
	"github.com/lshigami/testgrader/database"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/logger"
	"github.com/lshigami/testgrader/internal/repository"
	"github.com/lshigami/testgrader/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const questionScore = 1.5

var (
	openKey  = []string{"A", "B", "C", "D", "E", "F", "A", "B", "C", "D"}
	closeKey = []string{"All", "Bee", "Car", "Door", "Elephant"}

	sampleAnswers = []string{"A", "B", "C", "D", "E", "F", "E", "A", "B", "C", "HELLO", "Bee", "Car", "Door", "Earth"}
)

func main() {
	logger.Init()
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
}

// run owns the database handle so it is closed on every return path.
func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.Configure(cfg)

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()
	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err = seed(ctx, cfg, db)
	return err
}

// seed creates the sample test and grades the sample attempt against it.
func seed(ctx context.Context, cfg *config.Config, db *gorm.DB) (*dto.AttemptResultDTO, error) {
	testRepo := repository.NewTestRepository(db)
	userRepo := repository.NewUserRepository(db)
	attemptRepo := repository.NewTestAttemptRepository(db)

	adminSvc := service.NewAdminTestService(testRepo, userRepo, attemptRepo, db)
	submissionSvc := service.NewTestSubmissionService(testRepo, userRepo, attemptRepo, service.NewScoreCalculatorService(cfg), cfg, db)

	test, err := adminSvc.CreateTest(ctx, sampleTest())
	if err != nil {
		return nil, fmt.Errorf("create sample test: %w", err)
	}
	log.Info().Uint("testID", test.ID).Int("questions", len(test.Answers)).Msg("Sample test created")

	now := time.Now().UTC()
	result, err := submissionSvc.SubmitTest(ctx, test.ID, dto.TestAttemptSubmitDTO{
		UserID:      1,
		Username:    "sardor",
		City:        "Tashkent",
		StartedAt:   now.Add(-time.Hour),
		CompletedAt: now,
		Answers:     sampleAnswers,
	})
	if err != nil {
		return nil, fmt.Errorf("submit sample attempt: %w", err)
	}
	log.Info().
		Uint("attemptID", result.AttemptID).
		Float64("score", result.Score).
		Int("correct", result.CorrectAnswers).
		Int("wrong", result.WrongAnswers).
		Msg("Sample attempt graded")
	return result, nil
}

func sampleTest() dto.TestCreateDTO {
	start := time.Now().UTC()
	req := dto.TestCreateDTO{
		TestName:       "test1",
		OpenQuestions:  len(openKey),
		CloseQuestions: len(closeKey),
		TestTime:       120,
		StartTime:      start,
		EndTime:        start.Add(2 * time.Hour),
	}
	score := questionScore
	for _, letter := range openKey {
		req.Answers = append(req.Answers, dto.AnswerKeyEntryDTO{QuestionType: "OPEN", CorrectAnswer: letter, Score: &score})
	}
	for _, word := range closeKey {
		req.Answers = append(req.Answers, dto.AnswerKeyEntryDTO{QuestionType: "CLOSE", CorrectAnswer: word, Score: &score})
	}
	return req
}
