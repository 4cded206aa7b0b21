package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/model"
	"github.com/lshigami/testgrader/internal/monitoring"
	"github.com/lshigami/testgrader/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const defaultTestTimeMinutes = 60

type AdminTestService interface {
	CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestResponseDTO, error)
	GetTestWithKey(ctx context.Context, testID uint) (*dto.TestResponseDTO, error)
	EndTest(ctx context.Context, testID uint) (*dto.TestResponseDTO, error)
	DeleteTest(ctx context.Context, testID uint) error
	DeleteUser(ctx context.Context, externalUserID int64) error
	DeleteAttempt(ctx context.Context, attemptID uint) error
}

type adminTestService struct {
	testRepo    repository.TestRepository
	userRepo    repository.UserRepository
	attemptRepo repository.TestAttemptRepository
	db          *gorm.DB
}

func NewAdminTestService(
	testRepo repository.TestRepository,
	userRepo repository.UserRepository,
	attemptRepo repository.TestAttemptRepository,
	db *gorm.DB,
) AdminTestService {
	return &adminTestService{testRepo: testRepo, userRepo: userRepo, attemptRepo: attemptRepo, db: db}
}

// CreateTest stores a test and its answer key in one transaction and returns
// the stored test read back with its key.
func (s *adminTestService) CreateTest(ctx context.Context, req dto.TestCreateDTO) (*dto.TestResponseDTO, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	answers, err := buildAnswerKey(req.Answers)
	if err != nil {
		return nil, err
	}

	testModel := model.Test{
		TestName:       req.TestName,
		OpenQuestions:  req.OpenQuestions,
		CloseQuestions: req.CloseQuestions,
		TestTime:       req.TestTime,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		IsEnded:        req.IsEnded,
		Answers:        answers,
	}
	if testModel.TestTime == 0 {
		testModel.TestTime = defaultTestTimeMinutes
	}
	if testModel.StartTime.IsZero() {
		testModel.StartTime = time.Now().UTC()
	}
	if testModel.EndTime.IsZero() {
		testModel.EndTime = testModel.StartTime.Add(time.Duration(testModel.TestTime) * time.Minute)
	}
	if testModel.OpenQuestions == 0 && testModel.CloseQuestions == 0 {
		testModel.OpenQuestions, testModel.CloseQuestions = countByType(answers)
	} else if declared := testModel.OpenQuestions + testModel.CloseQuestions; declared != len(answers) {
		// Accepted as-is; grading always follows the stored key.
		log.Warn().Int("declared", declared).Int("keyLength", len(answers)).Str("testName", req.TestName).
			Msg("CreateTest: declared question counts do not match answer key length")
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.testRepo.WithTx(tx).Create(ctx, &testModel)
	})
	if err != nil {
		log.Error().Err(err).Str("testName", req.TestName).Msg("Failed to create test in database")
		return nil, storageErr(err, "creating test %q", req.TestName)
	}
	monitoring.TestsCreated.Inc()
	log.Info().Uint("testID", testModel.ID).Int("answers", len(answers)).Msg("Test created")

	created, err := s.testRepo.FindByIDWithAnswers(ctx, testModel.ID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testModel.ID).Msg("Failed to retrieve newly created test for response")
		return toTestResponse(&testModel)
	}
	return toTestResponse(created)
}

func (s *adminTestService) GetTestWithKey(ctx context.Context, testID uint) (*dto.TestResponseDTO, error) {
	test, err := s.testRepo.FindByIDWithAnswers(ctx, testID)
	if err != nil {
		return nil, storageErr(err, "test %d", testID)
	}
	return toTestResponse(test)
}

// EndTest flips the is_ended flag, the only mutation allowed on a stored test.
func (s *adminTestService) EndTest(ctx context.Context, testID uint) (*dto.TestResponseDTO, error) {
	if err := s.testRepo.SetEnded(ctx, testID, true); err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("EndTest: failed to mark test as ended")
		return nil, storageErr(err, "ending test %d", testID)
	}
	log.Info().Uint("testID", testID).Msg("Test ended")
	return s.GetTestWithKey(ctx, testID)
}

func (s *adminTestService) DeleteTest(ctx context.Context, testID uint) error {
	if err := s.testRepo.Delete(ctx, testID); err != nil {
		return storageErr(err, "deleting test %d", testID)
	}
	log.Info().Uint("testID", testID).Msg("Test deleted with its answers and attempts")
	return nil
}

func (s *adminTestService) DeleteUser(ctx context.Context, externalUserID int64) error {
	if err := s.userRepo.DeleteByExternalID(ctx, externalUserID); err != nil {
		return storageErr(err, "deleting user %d", externalUserID)
	}
	log.Info().Int64("userID", externalUserID).Msg("User deleted with its attempts")
	return nil
}

func (s *adminTestService) DeleteAttempt(ctx context.Context, attemptID uint) error {
	if err := s.attemptRepo.Delete(ctx, attemptID); err != nil {
		return storageErr(err, "deleting attempt %d", attemptID)
	}
	log.Info().Uint("attemptID", attemptID).Msg("Test attempt deleted")
	return nil
}

// buildAnswerKey checks types, letters and question numbering. Entries
// without a question number take their 1-based position.
func buildAnswerKey(entries []dto.AnswerKeyEntryDTO) ([]model.Answer, error) {
	seen := make(map[int]bool, len(entries))
	answers := make([]model.Answer, 0, len(entries))

	for i, entry := range entries {
		qType, err := model.ParseQuestionType(entry.QuestionType)
		if err != nil {
			return nil, validationErr("answer %d: %v", i+1, err)
		}

		number := entry.QuestionNumber
		if number == 0 {
			number = i + 1
		}
		if seen[number] {
			return nil, validationErr("duplicate question_number %d", number)
		}
		seen[number] = true

		if qType == model.QuestionTypeOpen && !model.OpenAnswerLetter(entry.CorrectAnswer).Valid() {
			return nil, validationErr("question %d: OPEN answer must be one of A-F, got %q", number, entry.CorrectAnswer)
		}

		weight := 1.0
		if entry.Score != nil {
			weight = *entry.Score
		}

		answers = append(answers, model.Answer{
			QuestionNumber: number,
			QuestionType:   qType,
			CorrectAnswer:  entry.CorrectAnswer,
			Score:          weight,
		})
	}
	return answers, nil
}

func countByType(answers []model.Answer) (open, closed int) {
	for _, a := range answers {
		if a.QuestionType == model.QuestionTypeOpen {
			open++
		} else {
			closed++
		}
	}
	return open, closed
}

func toTestResponse(test *model.Test) (*dto.TestResponseDTO, error) {
	var resp dto.TestResponseDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestResponseDTO")
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	resp.Answers = make([]dto.AnswerKeyResponseDTO, len(test.Answers))
	for i, a := range test.Answers {
		resp.Answers[i] = dto.AnswerKeyResponseDTO{
			ID:             a.ID,
			QuestionNumber: a.QuestionNumber,
			QuestionType:   string(a.QuestionType),
			CorrectAnswer:  a.CorrectAnswer,
			Score:          a.Score,
		}
	}
	return &resp, nil
}
