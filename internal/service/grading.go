package service

import (
	"fmt"

	"github.com/lshigami/testgrader/config"
	"github.com/lshigami/testgrader/internal/model"
)

// gradedAnswer pairs an answer-key entry with the value submitted for it.
type gradedAnswer struct {
	key       model.Answer
	submitted string
	isCorrect bool
}

// alignAnswers lines submitted answers up with the key, which must already be
// ordered by question number. Extra answers are dropped; missing ones either
// fail with ErrConsistency or are padded with empty strings depending on policy.
func alignAnswers(key []model.Answer, submitted []string, missingPolicy string) ([]string, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: test has no answer key", ErrConsistency)
	}
	if len(submitted) >= len(key) {
		return submitted[:len(key)], nil
	}
	if missingPolicy != config.MissingAnswersIncorrect {
		return nil, fmt.Errorf("%w: %d answers submitted for %d questions", ErrConsistency, len(submitted), len(key))
	}
	aligned := make([]string, len(key))
	copy(aligned, submitted)
	return aligned, nil
}

// gradeAnswers compares each position with exact, case-sensitive equality.
// An empty submission never matches.
func gradeAnswers(key []model.Answer, submitted []string) (graded []gradedAnswer, correct, wrong int) {
	graded = make([]gradedAnswer, len(key))
	for i, k := range key {
		ok := submitted[i] != "" && submitted[i] == k.CorrectAnswer
		graded[i] = gradedAnswer{key: k, submitted: submitted[i], isCorrect: ok}
		if ok {
			correct++
		} else {
			wrong++
		}
	}
	return graded, correct, wrong
}

func toGradedQuestions(graded []gradedAnswer) []GradedQuestion {
	out := make([]GradedQuestion, len(graded))
	for i, g := range graded {
		out[i] = GradedQuestion{Weight: g.key.Score, IsCorrect: g.isCorrect}
	}
	return out
}
