package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testgrader/internal/controller"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService       service.UserTestService
	testSubmissionService service.TestSubmissionService
}

func NewUserTestController(uts service.UserTestService, tss service.TestSubmissionService) *UserTestController {
	return &UserTestController{
		userTestService:       uts,
		testSubmissionService: tss,
	}
}

// GetAllTests godoc
// @Summary (User) List all tests
// @Tags User - Tests & Attempts
// @Produce json
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	tests, err := c.userTestService.GetAllTests(ctx.Request.Context())
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve tests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Test metadata and its question list. Correct answers are not included.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestDetailsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := controller.ParseUintParam(ctx, "test_id", "Test ID")
	if !ok {
		return
	}
	testDetails, err := c.userTestService.GetTestDetails(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve test", err)
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// SubmitTestAttempt godoc
// @Summary (User) Submit answers for a test
// @Description Answers are matched by position to question numbers 1..N and graded by exact comparison.
// @Tags User - Tests & Attempts
// @Accept json
// @Produce json
// @Param test_id path int true "ID of the Test being attempted"
// @Param submission_data body dto.TestAttemptSubmitDTO true "User identity, timestamps and ordered answers"
// @Success 201 {object} dto.AttemptResultDTO "Attempt graded and stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 422 {object} dto.ErrorResponse "Answers do not line up with the answer key"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Error storing submission"
// @Router /tests/{test_id}/attempts [post]
func (c *UserTestController) SubmitTestAttempt(ctx *gin.Context) {
	testID, ok := controller.ParseUintParam(ctx, "test_id", "Test ID")
	if !ok {
		return
	}

	var req dto.TestAttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("User SubmitTestAttempt: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("testID", testID).Int64("userID", req.UserID).Int("answerCount", len(req.Answers)).Msg("Received request to submit test attempt")

	result, err := c.testSubmissionService.SubmitTest(ctx.Request.Context(), testID, req)
	if err != nil {
		controller.RespondError(ctx, "Failed to submit test attempt", err)
		return
	}
	ctx.JSON(http.StatusCreated, result)
}

// GetTestAttempts godoc
// @Summary (User) List attempts on a test
// @Description Summaries newest first, optionally filtered by user.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Param user_id query int false "External user ID to filter attempts"
// @Success 200 {array} dto.TestAttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format for Test ID or User ID"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{test_id}/attempts [get]
func (c *UserTestController) GetTestAttempts(ctx *gin.Context) {
	testID, ok := controller.ParseUintParam(ctx, "test_id", "Test ID")
	if !ok {
		return
	}

	var userID *int64
	if raw := ctx.Query("user_id"); raw != "" {
		val, err := controller.ParseUserID(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format in query"})
			return
		}
		userID = &val
	}

	attempts, err := c.testSubmissionService.GetUserAttemptsForTest(ctx.Request.Context(), testID, userID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve attempts for test", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetSpecificTestAttemptDetails godoc
// @Summary (User) Get details of a specific test attempt
// @Description Every submitted answer with its correct value and correctness, in question order.
// @Tags User - Tests & Attempts
// @Produce json
// @Param attempt_id path int true "Test Attempt ID"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Router /test-attempts/{attempt_id} [get]
func (c *UserTestController) GetSpecificTestAttemptDetails(ctx *gin.Context) {
	attemptID, ok := controller.ParseUintParam(ctx, "attempt_id", "Test Attempt ID")
	if !ok {
		return
	}
	attemptDetails, err := c.testSubmissionService.GetTestAttemptDetails(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve test attempt", err)
		return
	}
	ctx.JSON(http.StatusOK, attemptDetails)
}
