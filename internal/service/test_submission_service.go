package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/testgrader/config"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/model"
	"github.com/lshigami/testgrader/internal/monitoring"
	"github.com/lshigami/testgrader/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// TestSubmissionService grades submitted attempts and serves them back.
type TestSubmissionService interface {
	SubmitTest(ctx context.Context, testID uint, req dto.TestAttemptSubmitDTO) (*dto.AttemptResultDTO, error)
	GetTestAttemptDetails(ctx context.Context, attemptID uint) (*dto.TestAttemptDetailDTO, error)
	GetUserAttemptsForTest(ctx context.Context, testID uint, externalUserID *int64) ([]dto.TestAttemptSummaryDTO, error)
}

type testSubmissionService struct {
	testRepo        repository.TestRepository
	userRepo        repository.UserRepository
	testAttemptRepo repository.TestAttemptRepository
	scoreCalculator ScoreCalculatorService
	missingAnswers  string
	db              *gorm.DB // Used for transactions within service methods
}

// NewTestSubmissionService creates a new instance of TestSubmissionService.
func NewTestSubmissionService(
	testRepo repository.TestRepository,
	userRepo repository.UserRepository,
	testAttemptRepo repository.TestAttemptRepository,
	scoreCalculator ScoreCalculatorService,
	cfg *config.Config,
	db *gorm.DB,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo:        testRepo,
		userRepo:        userRepo,
		testAttemptRepo: testAttemptRepo,
		scoreCalculator: scoreCalculator,
		missingAnswers:  cfg.Scoring.MissingAnswers,
		db:              db,
	}
}

// SubmitTest grades the submitted answers against the test's answer key and
// stores the user, the attempt and one user answer per question atomically.
func (s *testSubmissionService) SubmitTest(ctx context.Context, testID uint, req dto.TestAttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	result, err := s.submit(ctx, testID, req)
	if err != nil {
		monitoring.AttemptsGraded.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, err
	}
	monitoring.AttemptsGraded.WithLabelValues("graded").Inc()
	monitoring.AttemptScores.Observe(result.Score)
	return result, nil
}

func (s *testSubmissionService) submit(ctx context.Context, testID uint, req dto.TestAttemptSubmitDTO) (*dto.AttemptResultDTO, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	// 1. Load the answer key in question-number order
	test, err := s.testRepo.FindByIDWithAnswers(ctx, testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("SubmitTest: Test not found")
		return nil, storageErr(err, "test %d", testID)
	}

	// 2. Line the submission up with the key and grade it
	if len(req.Answers) > len(test.Answers) {
		log.Warn().Uint("testID", testID).Int("submitted", len(req.Answers)).Int("keyLength", len(test.Answers)).
			Msg("SubmitTest: Extra answers submitted, truncating to answer key length")
	}
	submitted, err := alignAnswers(test.Answers, req.Answers, s.missingAnswers)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Int("submitted", len(req.Answers)).Msg("SubmitTest: Submission rejected")
		return nil, err
	}
	graded, correct, wrong := gradeAnswers(test.Answers, submitted)

	score, err := s.scoreCalculator.CalculateScore(toGradedQuestions(graded))
	if err != nil {
		return nil, err
	}

	completedAt := req.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}
	startedAt := req.StartedAt
	if startedAt.IsZero() {
		startedAt = completedAt
	}

	attempt := model.TestAttempt{
		TestID:         test.ID,
		Score:          score,
		CorrectAnswers: correct,
		WrongAnswers:   wrong,
		StartedAt:      startedAt,
		CompletedAt:    completedAt,
		UserAnswers:    make([]model.UserAnswer, len(graded)),
	}
	for i, g := range graded {
		attempt.UserAnswers[i] = model.UserAnswer{
			AnswerID:   g.key.ID,
			TestID:     test.ID,
			UserAnswer: g.submitted,
			IsCorrect:  g.isCorrect,
		}
	}

	// 3. Persist user, attempt and user answers as one unit
	user := model.User{ExternalID: req.UserID, Username: req.Username, City: req.City}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.WithTx(tx).Upsert(ctx, &user); err != nil {
			return fmt.Errorf("failed to resolve user %d: %w", req.UserID, err)
		}
		attempt.UserID = user.ID
		if err := s.testAttemptRepo.WithTx(tx).Create(ctx, &attempt); err != nil {
			return fmt.Errorf("failed to create test attempt record: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Int64("userID", req.UserID).Msg("SubmitTest: Transaction failed")
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	log.Info().
		Uint("attemptID", attempt.ID).
		Uint("testID", testID).
		Int64("userID", req.UserID).
		Int("correct", correct).
		Int("wrong", wrong).
		Float64("score", score).
		Str("scoringMode", s.scoreCalculator.Mode()).
		Msg("Test attempt graded")

	return &dto.AttemptResultDTO{
		AttemptID:      attempt.ID,
		TestID:         test.ID,
		UserID:         req.UserID,
		Score:          score,
		CorrectAnswers: correct,
		WrongAnswers:   wrong,
		TotalQuestions: len(graded),
	}, nil
}

// GetTestAttemptDetails retrieves an attempt with every graded answer in question order.
func (s *testSubmissionService) GetTestAttemptDetails(ctx context.Context, attemptID uint) (*dto.TestAttemptDetailDTO, error) {
	attempt, err := s.testAttemptRepo.FindByIDWithDetails(ctx, attemptID)
	if err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("GetTestAttemptDetails: Failed to find test attempt by ID.")
		return nil, storageErr(err, "test attempt %d", attemptID)
	}

	sort.SliceStable(attempt.UserAnswers, func(i, j int) bool {
		return attempt.UserAnswers[i].Answer.QuestionNumber < attempt.UserAnswers[j].Answer.QuestionNumber
	})

	var resp dto.TestAttemptDetailDTO
	if err := copier.Copy(&resp, attempt); err != nil {
		log.Error().Err(err).Msg("GetTestAttemptDetails: Failed to copy attempt model to DTO.")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.TestName = attempt.Test.TestName
	resp.UserID = attempt.User.ExternalID
	resp.Username = attempt.User.Username
	resp.City = attempt.User.City

	resp.Answers = make([]dto.UserAnswerResponseDTO, len(attempt.UserAnswers))
	for i, ua := range attempt.UserAnswers {
		resp.Answers[i] = dto.UserAnswerResponseDTO{
			QuestionNumber: ua.Answer.QuestionNumber,
			QuestionType:   string(ua.Answer.QuestionType),
			UserAnswer:     ua.UserAnswer,
			CorrectAnswer:  ua.Answer.CorrectAnswer,
			IsCorrect:      ua.IsCorrect,
		}
	}
	return &resp, nil
}

// GetUserAttemptsForTest lists attempts on a test, newest first. With a user
// filter for an unknown user the list is empty.
func (s *testSubmissionService) GetUserAttemptsForTest(ctx context.Context, testID uint, externalUserID *int64) ([]dto.TestAttemptSummaryDTO, error) {
	if _, err := s.testRepo.FindByID(ctx, testID); err != nil {
		return nil, storageErr(err, "test %d", testID)
	}

	var userID *uint
	if externalUserID != nil {
		user, err := s.userRepo.FindByExternalID(ctx, *externalUserID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.TestAttemptSummaryDTO{}, nil
		}
		if err != nil {
			return nil, storageErr(err, "user %d", *externalUserID)
		}
		userID = &user.ID
	}

	attempts, err := s.testAttemptRepo.FindAllByTestAndUser(ctx, testID, userID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Interface("userID", externalUserID).Msg("GetUserAttemptsForTest: Failed to find attempts from repository.")
		return nil, storageErr(err, "fetching attempts for test %d", testID)
	}

	dtos := make([]dto.TestAttemptSummaryDTO, 0, len(attempts))
	for _, attempt := range attempts {
		var summary dto.TestAttemptSummaryDTO
		if errCp := copier.Copy(&summary, &attempt); errCp != nil {
			log.Error().Err(errCp).Uint("attemptID", attempt.ID).Msg("GetUserAttemptsForTest: Error copying attempt to summary DTO")
			continue
		}
		summary.UserID = attempt.User.ExternalID
		summary.Username = attempt.User.Username
		dtos = append(dtos, summary)
	}
	return dtos, nil
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "invalid"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConsistency):
		return "inconsistent"
	default:
		return "error"
	}
}
