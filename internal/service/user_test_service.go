package service

import (
	"context"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/repository"
	"github.com/rs/zerolog/log"
)

type UserTestService interface {
	GetAllTests(ctx context.Context) ([]dto.TestSummaryDTO, error)
	GetTestDetails(ctx context.Context, testID uint) (*dto.TestDetailsDTO, error)
}

type userTestService struct {
	testRepo   repository.TestRepository
	answerRepo repository.AnswerRepository
}

func NewUserTestService(testRepo repository.TestRepository, answerRepo repository.AnswerRepository) UserTestService {
	return &userTestService{testRepo: testRepo, answerRepo: answerRepo}
}

func (s *userTestService) GetAllTests(ctx context.Context) ([]dto.TestSummaryDTO, error) {
	testsWithCount, err := s.testRepo.FindAllWithAnswerCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all tests with answer count from repository")
		return nil, storageErr(err, "listing tests")
	}

	dtos := make([]dto.TestSummaryDTO, 0, len(testsWithCount))
	for _, twc := range testsWithCount {
		dtos = append(dtos, dto.TestSummaryDTO{
			ID:            twc.Test.ID,
			TestName:      twc.Test.TestName,
			QuestionCount: twc.AnswerCount,
			TestTime:      twc.Test.TestTime,
			StartTime:     twc.Test.StartTime,
			EndTime:       twc.Test.EndTime,
			IsEnded:       twc.Test.IsEnded,
			CreatedAt:     twc.Test.CreatedAt,
		})
	}
	return dtos, nil
}

// GetTestDetails returns the test with its question list; correct answers stay hidden.
func (s *userTestService) GetTestDetails(ctx context.Context, testID uint) (*dto.TestDetailsDTO, error) {
	test, err := s.testRepo.FindByID(ctx, testID)
	if err != nil {
		log.Warn().Err(err).Uint("testID", testID).Msg("Failed to get test details from repository")
		return nil, storageErr(err, "test %d", testID)
	}
	answers, err := s.answerRepo.FindByTestID(ctx, testID)
	if err != nil {
		log.Error().Err(err).Uint("testID", testID).Msg("Failed to load question list")
		return nil, storageErr(err, "questions of test %d", testID)
	}

	var resp dto.TestDetailsDTO
	if err := copier.Copy(&resp, test); err != nil {
		log.Error().Err(err).Msg("Failed to copy Test model to TestDetailsDTO")
		return nil, fmt.Errorf("error preparing test details response: %w", err)
	}
	resp.Questions = make([]dto.QuestionInfoDTO, len(answers))
	for i, a := range answers {
		resp.Questions[i] = dto.QuestionInfoDTO{
			QuestionNumber: a.QuestionNumber,
			QuestionType:   string(a.QuestionType),
		}
	}
	return &resp, nil
}
