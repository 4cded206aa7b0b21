package service

import (
	"fmt"
	"math"

	"github.com/lshigami/testgrader/config"
)

const MaxScorePercent float64 = 100.0

// GradedQuestion is the outcome of comparing one submitted answer with its key entry.
type GradedQuestion struct {
	Weight    float64
	IsCorrect bool
}

type ScoreCalculatorService interface {
	// CalculateScore turns graded questions into a percentage rounded to two decimals.
	CalculateScore(graded []GradedQuestion) (float64, error)
	Mode() string
}

type scoreCalculatorService struct {
	mode string
}

func NewScoreCalculatorService(cfg *config.Config) ScoreCalculatorService {
	return &scoreCalculatorService{mode: cfg.Scoring.Mode}
}

func (s *scoreCalculatorService) Mode() string {
	return s.mode
}

// CalculateScore in flat mode is correct/total*100, every answer-key weight
// ignored. Weighted mode divides the weight of correct answers by the total
// weight and falls back to flat when the key carries no weight at all.
func (s *scoreCalculatorService) CalculateScore(graded []GradedQuestion) (float64, error) {
	if len(graded) == 0 {
		return 0, fmt.Errorf("%w: cannot score an empty answer key", ErrConsistency)
	}

	var correct int
	var earnedWeight, totalWeight float64
	for _, g := range graded {
		if g.Weight < 0 {
			return 0, fmt.Errorf("%w: negative question weight %.2f", ErrValidation, g.Weight)
		}
		totalWeight += g.Weight
		if g.IsCorrect {
			correct++
			earnedWeight += g.Weight
		}
	}

	var score float64
	switch {
	case s.mode == config.ScoringModeWeighted && totalWeight > 0:
		score = earnedWeight / totalWeight * MaxScorePercent
	default:
		score = float64(correct) / float64(len(graded)) * MaxScorePercent
	}

	return roundScore(score), nil
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
