package model

import (
	"fmt"
	"strings"
)

// QuestionType tells how a question's correct answer is stored.
type QuestionType string

const (
	// QuestionTypeOpen answers are one of the six model-solution letters.
	QuestionTypeOpen QuestionType = "OPEN"
	// QuestionTypeClose answers are a short free-form string.
	QuestionTypeClose QuestionType = "CLOSE"
)

func (t QuestionType) Valid() bool {
	return t == QuestionTypeOpen || t == QuestionTypeClose
}

// ParseQuestionType accepts the enum name in any case.
func ParseQuestionType(s string) (QuestionType, error) {
	t := QuestionType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid question type %q (want OPEN or CLOSE)", s)
	}
	return t, nil
}

// OpenAnswerLetter is the code of one of the six canonical model answers.
type OpenAnswerLetter string

const (
	LetterA OpenAnswerLetter = "A"
	LetterB OpenAnswerLetter = "B"
	LetterC OpenAnswerLetter = "C"
	LetterD OpenAnswerLetter = "D"
	LetterE OpenAnswerLetter = "E"
	LetterF OpenAnswerLetter = "F"
)

var OpenAnswerLetters = []OpenAnswerLetter{LetterA, LetterB, LetterC, LetterD, LetterE, LetterF}

func (l OpenAnswerLetter) Valid() bool {
	for _, v := range OpenAnswerLetters {
		if l == v {
			return true
		}
	}
	return false
}
