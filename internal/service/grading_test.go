package service

import (
	"errors"
	"reflect"
	"testing"

	"github.com/lshigami/testgrader/config"
	"github.com/lshigami/testgrader/internal/model"
)

func keyOf(values ...string) []model.Answer {
	key := make([]model.Answer, len(values))
	for i, v := range values {
		key[i] = model.Answer{ID: uint(i + 1), QuestionNumber: i + 1, CorrectAnswer: v, Score: 1}
	}
	return key
}

func TestAlignAnswers(t *testing.T) {
	key := keyOf("A", "B", "C")
	tests := []struct {
		name      string
		submitted []string
		policy    string
		want      []string
		wantErr   error
	}{
		{name: "exact length", submitted: []string{"A", "B", "C"}, policy: config.MissingAnswersReject, want: []string{"A", "B", "C"}},
		{name: "longer is truncated", submitted: []string{"A", "B", "C", "D", "E"}, policy: config.MissingAnswersReject, want: []string{"A", "B", "C"}},
		{name: "shorter rejected", submitted: []string{"A"}, policy: config.MissingAnswersReject, wantErr: ErrConsistency},
		{name: "shorter padded", submitted: []string{"A"}, policy: config.MissingAnswersIncorrect, want: []string{"A", "", ""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := alignAnswers(key, tc.submitted, tc.policy)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("aligned = %v, want %v", got, tc.want)
			}
		})
	}

	if _, err := alignAnswers(nil, []string{"A"}, config.MissingAnswersIncorrect); !errors.Is(err, ErrConsistency) {
		t.Fatalf("empty key err = %v, want ErrConsistency", err)
	}
}

func TestGradeAnswers(t *testing.T) {
	key := keyOf("A", "Bee", "Car", "D")
	graded, correct, wrong := gradeAnswers(key, []string{"A", "bee", "Car", ""})

	if correct != 2 || wrong != 2 {
		t.Fatalf("correct=%d wrong=%d, want 2/2", correct, wrong)
	}
	want := []bool{true, false, true, false}
	for i, g := range graded {
		if g.isCorrect != want[i] {
			t.Errorf("question %d isCorrect = %v, want %v", i+1, g.isCorrect, want[i])
		}
		if g.key.ID != key[i].ID {
			t.Errorf("question %d paired with answer %d", i+1, g.key.ID)
		}
	}
}

func TestGradeAnswersSampleScenario(t *testing.T) {
	key := keyOf(sampleKey()...)
	submitted := []string{"A", "B", "C", "D", "E", "F", "E", "A", "B", "C", "HELLO", "Bee", "Car", "Door", "Earth"}

	// Exact matches at 1-6 and 12-14; 7-10 are shifted by one letter.
	graded, correct, wrong := gradeAnswers(key, submitted)
	if correct != 9 || wrong != 6 {
		t.Fatalf("correct=%d wrong=%d, want 9/6", correct, wrong)
	}
	for _, pos := range []int{7, 8, 9, 10, 11, 15} {
		if graded[pos-1].isCorrect {
			t.Errorf("position %d should be wrong", pos)
		}
	}
	for _, pos := range []int{1, 2, 3, 4, 5, 6, 12, 13, 14} {
		if !graded[pos-1].isCorrect {
			t.Errorf("position %d should be correct", pos)
		}
	}
}
