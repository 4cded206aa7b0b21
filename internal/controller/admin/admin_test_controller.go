package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testgrader/internal/controller"
	"github.com/lshigami/testgrader/internal/dto"
	"github.com/lshigami/testgrader/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// CreateTest godoc
// @Summary (Admin) Create a test with its answer key
// @Description Stores the test and every answer-key entry in one transaction. OPEN answers must be one of A-F.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test definition including the ordered answer key"
// @Success 201 {object} dto.TestResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data (e.g., unknown question type)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateTest: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	testResp, err := c.adminTestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Failed to create test", err)
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}

// GetTest godoc
// @Summary (Admin) Get a test with its answer key
// @Tags Admin - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [get]
func (c *AdminTestController) GetTest(ctx *gin.Context) {
	testID, ok := controller.ParseUintParam(ctx, "test_id", "Test ID")
	if !ok {
		return
	}
	testResp, err := c.adminTestService.GetTestWithKey(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, "Failed to retrieve test", err)
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// EndTest godoc
// @Summary (Admin) Mark a test as ended
// @Tags Admin - Tests
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id}/end [patch]
func (c *AdminTestController) EndTest(ctx *gin.Context) {
	testID, ok := controller.ParseUintParam(ctx, "test_id", "Test ID")
	if !ok {
		return
	}
	testResp, err := c.adminTestService.EndTest(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, "Failed to end test", err)
		return
	}
	ctx.JSON(http.StatusOK, testResp)
}

// DeleteTest godoc
// @Summary (Admin) Delete a test
// @Description Removes the test, its answer key, its attempts and their answers.
// @Tags Admin - Tests
// @Param test_id path int true "Test ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /admin/tests/{test_id} [delete]
func (c *AdminTestController) DeleteTest(ctx *gin.Context) {
	testID, ok := controller.ParseUintParam(ctx, "test_id", "Test ID")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteTest(ctx.Request.Context(), testID); err != nil {
		controller.RespondError(ctx, "Failed to delete test", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteUser godoc
// @Summary (Admin) Delete a user
// @Description Removes the user with all of their attempts and answers.
// @Tags Admin - Users
// @Param user_id path int true "External user ID"
// @Success 204
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /admin/users/{user_id} [delete]
func (c *AdminTestController) DeleteUser(ctx *gin.Context) {
	userID, err := controller.ParseUserID(ctx.Param("user_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid User ID format"})
		return
	}
	if err := c.adminTestService.DeleteUser(ctx.Request.Context(), userID); err != nil {
		controller.RespondError(ctx, "Failed to delete user", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// DeleteAttempt godoc
// @Summary (Admin) Delete a test attempt
// @Tags Admin - Attempts
// @Param attempt_id path int true "Test Attempt ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Router /admin/test-attempts/{attempt_id} [delete]
func (c *AdminTestController) DeleteAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParseUintParam(ctx, "attempt_id", "Test Attempt ID")
	if !ok {
		return
	}
	if err := c.adminTestService.DeleteAttempt(ctx.Request.Context(), attemptID); err != nil {
		controller.RespondError(ctx, "Failed to delete test attempt", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
