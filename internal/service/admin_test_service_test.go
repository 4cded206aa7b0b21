package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/testgrader/config"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/model"
)

func TestCreateTestReadBack(t *testing.T) {
	f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
	ctx := context.Background()

	created, err := f.admin.CreateTest(ctx, sampleTest())
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected generated test ID")
	}

	got, err := f.admin.GetTestWithKey(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTestWithKey: %v", err)
	}
	if got.TestName != "test1" || got.TestTime != 120 || got.OpenQuestions != 10 || got.CloseQuestions != 5 {
		t.Fatalf("unexpected test metadata: %+v", got)
	}
	key := sampleKey()
	if len(got.Answers) != len(key) {
		t.Fatalf("answers = %d, want %d", len(got.Answers), len(key))
	}
	for i, a := range got.Answers {
		if a.QuestionNumber != i+1 || a.CorrectAnswer != key[i] || a.Score != 1.5 {
			t.Errorf("answer %d = %+v", i, a)
		}
		wantType := "OPEN"
		if i >= 10 {
			wantType = "CLOSE"
		}
		if a.QuestionType != wantType {
			t.Errorf("answer %d type = %s, want %s", i, a.QuestionType, wantType)
		}
	}
}

func TestCreateTestDefaults(t *testing.T) {
	f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
	req := dto.TestCreateDTO{
		TestName: "defaults",
		Answers: []dto.AnswerKeyEntryDTO{
			{QuestionType: "open", CorrectAnswer: "C"},
			{QuestionType: "CLOSE", CorrectAnswer: "river"},
		},
	}

	created, err := f.admin.CreateTest(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if created.TestTime != defaultTestTimeMinutes {
		t.Errorf("test time = %d, want %d", created.TestTime, defaultTestTimeMinutes)
	}
	if created.OpenQuestions != 1 || created.CloseQuestions != 1 {
		t.Errorf("counts = %d/%d, want 1/1", created.OpenQuestions, created.CloseQuestions)
	}
	if got := created.EndTime.Sub(created.StartTime).Minutes(); got != defaultTestTimeMinutes {
		t.Errorf("end - start = %v minutes", got)
	}
	for i, a := range created.Answers {
		if a.QuestionNumber != i+1 {
			t.Errorf("answer %d numbered %d", i, a.QuestionNumber)
		}
		if a.Score != 1 {
			t.Errorf("answer %d weight = %v, want 1", i, a.Score)
		}
	}
	if created.Answers[0].QuestionType != string(model.QuestionTypeOpen) {
		t.Errorf("type not normalised: %s", created.Answers[0].QuestionType)
	}
}

func TestCreateTestCountMismatchAccepted(t *testing.T) {
	f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
	req := sampleTest()
	req.OpenQuestions = 3

	created, err := f.admin.CreateTest(context.Background(), req)
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	if created.OpenQuestions != 3 || len(created.Answers) != 15 {
		t.Fatalf("declared counts or key changed: %+v", created)
	}
}

func TestCreateTestValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *dto.TestCreateDTO)
	}{
		{name: "unknown question type", mutate: func(req *dto.TestCreateDTO) { req.Answers[3].QuestionType = "ESSAY" }},
		{name: "open answer outside A-F", mutate: func(req *dto.TestCreateDTO) { req.Answers[0].CorrectAnswer = "G" }},
		{name: "lowercase open letter", mutate: func(req *dto.TestCreateDTO) { req.Answers[0].CorrectAnswer = "a" }},
		{name: "duplicate question number", mutate: func(req *dto.TestCreateDTO) { req.Answers[1].QuestionNumber = 1 }},
		{name: "negative question number", mutate: func(req *dto.TestCreateDTO) { req.Answers[1].QuestionNumber = -2 }},
		{name: "missing name", mutate: func(req *dto.TestCreateDTO) { req.TestName = "" }},
		{name: "empty key", mutate: func(req *dto.TestCreateDTO) { req.Answers = nil }},
		{name: "negative weight", mutate: func(req *dto.TestCreateDTO) { req.Answers[0].Score = weight(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
			req := sampleTest()
			tc.mutate(&req)

			_, err := f.admin.CreateTest(context.Background(), req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
			if n := countRows(t, f.db, &model.Test{}, ""); n != 0 {
				t.Errorf("tests written = %d, want 0", n)
			}
			if n := countRows(t, f.db, &model.Answer{}, ""); n != 0 {
				t.Errorf("answers written = %d, want 0", n)
			}
		})
	}
}

func TestEndTest(t *testing.T) {
	f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, sampleTest())
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}

	ended, err := f.admin.EndTest(ctx, created.ID)
	if err != nil {
		t.Fatalf("EndTest: %v", err)
	}
	if !ended.IsEnded {
		t.Fatal("expected is_ended to be set")
	}
	if len(ended.Answers) != 15 {
		t.Fatalf("answer key changed: %d entries", len(ended.Answers))
	}

	if _, err := f.admin.EndTest(ctx, created.ID+100); !errors.Is(err, ErrNotFound) {
		t.Fatalf("EndTest unknown id err = %v, want ErrNotFound", err)
	}
}

func TestDeleteTestCascades(t *testing.T) {
	f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
	ctx := context.Background()

	doomed, err := f.admin.CreateTest(ctx, sampleTest())
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	kept, err := f.admin.CreateTest(ctx, sampleTest())
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	for _, id := range []uint{doomed.ID, kept.ID} {
		if _, err := f.submission.SubmitTest(ctx, id, submission(1, sampleKey()...)); err != nil {
			t.Fatalf("SubmitTest(%d): %v", id, err)
		}
	}

	if err := f.admin.DeleteTest(ctx, doomed.ID); err != nil {
		t.Fatalf("DeleteTest: %v", err)
	}

	if n := countRows(t, f.db, &model.Answer{}, "test_id = ?", doomed.ID); n != 0 {
		t.Errorf("orphaned answers: %d", n)
	}
	if n := countRows(t, f.db, &model.TestAttempt{}, "test_id = ?", doomed.ID); n != 0 {
		t.Errorf("orphaned attempts: %d", n)
	}
	if n := countRows(t, f.db, &model.UserAnswer{}, "test_id = ?", doomed.ID); n != 0 {
		t.Errorf("orphaned user answers: %d", n)
	}

	// the other test and the user survive
	if n := countRows(t, f.db, &model.UserAnswer{}, "test_id = ?", kept.ID); n != 15 {
		t.Errorf("user answers of kept test = %d, want 15", n)
	}
	if n := countRows(t, f.db, &model.User{}, ""); n != 1 {
		t.Errorf("users = %d, want 1", n)
	}

	if err := f.admin.DeleteTest(ctx, doomed.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second DeleteTest err = %v, want ErrNotFound", err)
	}
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, sampleTest())
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	for _, uid := range []int64{7, 7, 8} {
		if _, err := f.submission.SubmitTest(ctx, created.ID, submission(uid, sampleKey()...)); err != nil {
			t.Fatalf("SubmitTest: %v", err)
		}
	}

	if err := f.admin.DeleteUser(ctx, 7); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}

	if n := countRows(t, f.db, &model.User{}, ""); n != 1 {
		t.Errorf("users = %d, want 1", n)
	}
	if n := countRows(t, f.db, &model.TestAttempt{}, ""); n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
	if n := countRows(t, f.db, &model.UserAnswer{}, ""); n != 15 {
		t.Errorf("user answers = %d, want 15", n)
	}
	// deleting a child never removes its parent
	if n := countRows(t, f.db, &model.Answer{}, ""); n != 15 {
		t.Errorf("answer key rows = %d, want 15", n)
	}

	if err := f.admin.DeleteUser(ctx, 7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second DeleteUser err = %v, want ErrNotFound", err)
	}
}

func TestDeleteAttemptCascades(t *testing.T) {
	f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, sampleTest())
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}
	first, err := f.submission.SubmitTest(ctx, created.ID, submission(1, sampleKey()...))
	if err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}
	if _, err := f.submission.SubmitTest(ctx, created.ID, submission(1, sampleKey()...)); err != nil {
		t.Fatalf("SubmitTest: %v", err)
	}

	if err := f.admin.DeleteAttempt(ctx, first.AttemptID); err != nil {
		t.Fatalf("DeleteAttempt: %v", err)
	}
	if n := countRows(t, f.db, &model.UserAnswer{}, "attempt_id = ?", first.AttemptID); n != 0 {
		t.Errorf("orphaned user answers: %d", n)
	}
	if n := countRows(t, f.db, &model.UserAnswer{}, ""); n != 15 {
		t.Errorf("remaining user answers = %d, want 15", n)
	}
	if n := countRows(t, f.db, &model.User{}, ""); n != 1 {
		t.Errorf("users = %d, want 1", n)
	}
	if n := countRows(t, f.db, &model.Test{}, ""); n != 1 {
		t.Errorf("tests = %d, want 1", n)
	}
	if _, err := f.submission.GetTestAttemptDetails(ctx, first.AttemptID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetTestAttemptDetails err = %v, want ErrNotFound", err)
	}
}

func TestUserTestServiceHidesAnswerKey(t *testing.T) {
	f := newFixture(t, config.ScoringModeFlat, config.MissingAnswersReject)
	ctx := context.Background()
	created, err := f.admin.CreateTest(ctx, sampleTest())
	if err != nil {
		t.Fatalf("CreateTest: %v", err)
	}

	list, err := f.user.GetAllTests(ctx)
	if err != nil {
		t.Fatalf("GetAllTests: %v", err)
	}
	if len(list) != 1 || list[0].ID != created.ID || list[0].QuestionCount != 15 {
		t.Fatalf("GetAllTests = %+v", list)
	}

	details, err := f.user.GetTestDetails(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTestDetails: %v", err)
	}
	if details.TestName != "test1" || len(details.Questions) != 15 {
		t.Fatalf("details = %+v", details)
	}
	if details.Questions[14].QuestionNumber != 15 || details.Questions[14].QuestionType != "CLOSE" {
		t.Errorf("last question = %+v", details.Questions[14])
	}

	if _, err := f.user.GetTestDetails(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
