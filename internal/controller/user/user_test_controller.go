package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/ielts-mock/internal/controller"
	"github.com/lshigami/ielts-mock/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	userTestService service.UserTestService
	attemptService  service.AttemptService
}

func NewUserTestController(uts service.UserTestService, as service.AttemptService) *UserTestController {
	return &UserTestController{
		userTestService: uts,
		attemptService:  as,
	}
}

func (c *UserTestController) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/tests", c.GetAllTests)
	api.GET("/tests/:test_id", c.GetTestDetails)
	api.GET("/tests/:test_id/my-attempt", c.GetMyAttempt)
}

// GetAllTests godoc
// @Summary List available tests
// @Description Students see published tests only; teachers and admins see every test.
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	tests, err := c.userTestService.GetAllTests(ctx.Request.Context(), who)
	if err != nil {
		controller.RespondError(ctx, "User GetAllTests", err)
		return
	}
	log.Debug().Uint("userID", who.UserID).Int("count", len(tests)).Msg("User GetAllTests: Tests listed")
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary Get the full content of a test
// @Description Correct answers and explanations are only included for teachers and admins.
// @Tags Tests
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	details, err := c.userTestService.GetTestDetails(ctx.Request.Context(), who, testID)
	if err != nil {
		controller.RespondError(ctx, "User GetTestDetails", err)
		return
	}
	ctx.JSON(http.StatusOK, details)
}

// GetMyAttempt godoc
// @Summary Get the caller's attempt for a test
// @Tags Attempts
// @Produce json
// @Security BearerAuth
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.AttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "No attempt for this test"
// @Router /tests/{test_id}/my-attempt [get]
func (c *UserTestController) GetMyAttempt(ctx *gin.Context) {
	who, ok := controller.Caller(ctx)
	if !ok {
		return
	}
	testID, ok := controller.ParseIDParam(ctx, "test_id")
	if !ok {
		return
	}
	attempt, err := c.attemptService.GetMyAttempt(ctx.Request.Context(), who, testID)
	if err != nil {
		controller.RespondError(ctx, "User GetMyAttempt", err)
		return
	}
	ctx.JSON(http.StatusOK, attempt)
}
